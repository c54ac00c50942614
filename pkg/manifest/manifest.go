// Copyright 2026 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package manifest

import (
	"bytes"
	"strings"
	"text/template"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"render-border/pkg/job"
	"render-border/pkg/logging"
)

// APIVersion and Kind identify the manifest document.
const (
	APIVersion = "render-border/v1"
	Kind       = "RenderJob"
)

// JobTemplate is the Go template for a compiled job manifest.
// Every string value goes through quote so paths and frame lists stay scalars.
const JobTemplate = `apiVersion: {{ .APIVersion }}
kind: {{ .Kind }}
metadata:
  id: {{ quote .Job.ID }}
  name: {{ quote .Job.Name }}
  type: {{ quote .Job.Type }}
settings:
  frames: {{ quote .Job.Settings.Frames }}
  chunk_size: {{ .Job.Settings.ChunkSize }}
  render_output_root: {{ quote .Job.Settings.RenderOutputRoot }}
  render_name: {{ quote .Job.Settings.RenderName }}
  blendfile: {{ quote .Job.Settings.BlendFile }}
{{- if .Job.Settings.FPS }}
  fps: {{ .Job.Settings.FPS }}
{{- end }}
  format: {{ quote .Job.Settings.Format }}
  image_file_extension: {{ quote .Job.Settings.ImageFileExtension }}
  render_output_path: {{ quote .Job.Settings.RenderOutputPath }}
tasks:
{{- range .Job.Tasks }}
- name: {{ quote .Name }}
  type: {{ quote .Type }}
  commands:
  {{- range .Commands }}
  - name: {{ quote .Name }}
    exe: {{ quote .Exe }}
    exeArgs: {{ quote .ExeArgs }}
    argsBefore: {{ list .ArgsBefore }}
    blendfile: {{ quote .BlendFile }}
    args: {{ list .Args }}
  {{- end }}
{{- end }}
`

var funcs = template.FuncMap{
	"quote": quote,
	"list":  quoteList,
}

// quote renders s as a double-quoted YAML scalar. YAML strings are Unicode,
// so invalid UTF-8 is rejected rather than silently re-encoded.
func quote(s string) (string, error) {
	if !utf8.ValidString(s) {
		return "", errors.Errorf("value %q is not valid UTF-8", s)
	}
	out, err := yaml.Marshal(&yaml.Node{Kind: yaml.ScalarNode, Style: yaml.DoubleQuotedStyle, Value: s})
	if err != nil {
		return "", errors.Wrapf(err, "failed to quote %q", s)
	}
	return strings.TrimSuffix(string(out), "\n"), nil
}

func quoteList(items []string) (string, error) {
	quoted := make([]string, len(items))
	for i, s := range items {
		q, err := quote(s)
		if err != nil {
			return "", err
		}
		quoted[i] = q
	}
	return "[" + strings.Join(quoted, ", ") + "]", nil
}

// Generate renders the compiled job as a YAML manifest.
func Generate(j *job.Job) (string, error) {
	tmpl, err := template.New("renderJob").Funcs(funcs).Parse(JobTemplate)
	if err != nil {
		return "", errors.Wrap(err, "failed to parse render job template")
	}

	data := struct {
		APIVersion string
		Kind       string
		Job        *job.Job
	}{
		APIVersion: APIVersion,
		Kind:       Kind,
		Job:        j,
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", errors.Wrap(err, "failed to execute render job template")
	}
	return buf.String(), nil
}

// Write saves the manifest to path.
func Write(fs afero.Fs, path, content string) error {
	logging.Info("Saving render job manifest to %s", path)
	if err := afero.WriteFile(fs, path, []byte(content), 0644); err != nil {
		return errors.Wrapf(err, "failed to write render job manifest to file %s", path)
	}
	return nil
}
