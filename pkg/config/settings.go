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

// Package config loads job settings from YAML files and command-line flags.
package config

import (
	"sort"

	"github.com/agext/levenshtein"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"render-border/pkg/job"
)

// settingKeys are the keys accepted in a settings file.
var settingKeys = []string{
	"frames",
	"chunk_size",
	"render_output_root",
	"render_name",
	"blendfile",
	"fps",
	"format",
	"image_file_extension",
}

// computedKeys are written by the compiler and must not be supplied.
var computedKeys = map[string]bool{
	"render_output_path": true,
}

// LoadSettings reads a YAML settings file. chunk_size defaults to 1.
func LoadSettings(fs afero.Fs, path string) (job.Settings, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return job.Settings{}, errors.Wrapf(err, "failed to read settings file %s", path)
	}
	return ParseSettings(data, path)
}

// ParseSettings decodes YAML settings. source names the input in errors.
func ParseSettings(data []byte, source string) (job.Settings, error) {
	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return job.Settings{}, errors.Wrapf(err, "failed to parse settings %s", source)
	}
	if err := checkKeys(raw); err != nil {
		return job.Settings{}, errors.Wrapf(err, "settings %s", source)
	}

	settings := job.Settings{ChunkSize: job.DefaultChunkSize}
	if err := yaml.Unmarshal(data, &settings); err != nil {
		cfgErr := &job.ConfigurationError{Reason: err.Error()}
		return job.Settings{}, errors.Wrapf(cfgErr, "settings %s", source)
	}
	return settings, nil
}

func checkKeys(raw map[string]interface{}) error {
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if computedKeys[k] {
			return job.Configurationf(k, "is computed during compilation and cannot be set")
		}
		if !isSettingKey(k) {
			if hint := suggest(k); hint != "" {
				return job.Configurationf(k, "unknown setting, did you mean %q?", hint)
			}
			return job.Configurationf(k, "unknown setting")
		}
	}
	return nil
}

func isSettingKey(k string) bool {
	for _, s := range settingKeys {
		if s == k {
			return true
		}
	}
	return false
}

func suggest(k string) string {
	best, bestDist := "", 4
	for _, s := range settingKeys {
		if d := levenshtein.Distance(k, s, nil); d < bestDist {
			best, bestDist = s, d
		}
	}
	return best
}

// RegisterFlags adds one flag per setting to flags.
func RegisterFlags(flags *pflag.FlagSet) {
	flags.String("frames", "", "Frame range to render, e.g. '47', '1-30', '3, 5-10, 47-327'.")
	flags.Int("chunk-size", job.DefaultChunkSize, "Number of frames to render in one Blender render task.")
	flags.String("render-output-root", "", "Base directory of where render output is stored.")
	flags.String("render-name", "", "Name of the render output file without extension.")
	flags.String("blendfile", "", "Path of the Blend file to render.")
	flags.Float64("fps", 0, "Scene frame rate.")
	flags.String("format", "", "Blender image file format, e.g. PNG or OPEN_EXR.")
	flags.String("image-file-extension", "", "File extension used when rendering images, e.g. .png.")
}

// ApplyFlags overrides settings with every flag the user set explicitly.
func ApplyFlags(s *job.Settings, flags *pflag.FlagSet) error {
	strs := map[string]*string{
		"frames":               &s.Frames,
		"render-output-root":   &s.RenderOutputRoot,
		"render-name":          &s.RenderName,
		"blendfile":            &s.BlendFile,
		"format":               &s.Format,
		"image-file-extension": &s.ImageFileExtension,
	}
	for name, dst := range strs {
		if !flags.Changed(name) {
			continue
		}
		v, err := flags.GetString(name)
		if err != nil {
			return errors.Wrapf(err, "flag --%s", name)
		}
		*dst = v
	}

	if flags.Changed("chunk-size") {
		v, err := flags.GetInt("chunk-size")
		if err != nil {
			return errors.Wrap(err, "flag --chunk-size")
		}
		s.ChunkSize = v
	}
	if flags.Changed("fps") {
		v, err := flags.GetFloat64("fps")
		if err != nil {
			return errors.Wrap(err, "flag --fps")
		}
		s.FPS = v
	}
	return nil
}
