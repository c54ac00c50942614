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

// Package borderrender implements the Animated Render Border job type: it
// renders an image sequence in Blender, one task per chunk of frames.
package borderrender

import (
	"path"
	"strconv"

	"render-border/pkg/framerange"
	"render-border/pkg/job"
	"render-border/pkg/logging"
	"render-border/pkg/orchestrator"
)

// Name is the job type identifier.
const Name = "animated-render-border"

const (
	taskType       = "blender"
	commandName    = "blender-render"
	blenderExe     = "{blender}"
	blenderArgs    = "{blenderArgs}"
	framePattern   = ".####"
	borderRenderPy = "import bpy; bpy.ops.render.animated_render_border_render()"
)

// videoFormats would make Blender render to a video file, which this job
// type does not support.
var videoFormats = map[string]bool{
	"FFMPEG":   true,
	"AVI_RAW":  true,
	"AVI_JPEG": true,
}

// ffmpegIncompatibleFormats produce files FFmpeg cannot read as input.
// Both the old CLI-style names and the DNA values are listed.
var ffmpegIncompatibleFormats = map[string]bool{
	"EXR":                 true,
	"MULTILAYER":          true,
	"OPEN_EXR":            true,
	"OPEN_EXR_MULTILAYER": true,
}

// IsVideoFormat reports whether format renders to a video container.
func IsVideoFormat(format string) bool {
	return videoFormats[format]
}

// IsFFmpegIncompatible reports whether images in this format cannot be fed
// to FFmpeg. Compile does not enforce it; later stages that transcode can.
func IsFFmpegIncompatible(format string) bool {
	return ffmpegIncompatibleFormats[format]
}

// Compiler is the Animated Render Border job type.
type Compiler struct{}

// NewCompiler returns the job type.
func NewCompiler() *Compiler {
	return &Compiler{}
}

var _ orchestrator.JobType = (*Compiler)(nil)

func (c *Compiler) Name() string {
	return Name
}

// Compile validates the job settings, authors one render task per frame
// chunk and registers the tasks with the job.
func (c *Compiler) Compile(j *job.Job) error {
	logging.Info("Animated Render Border job submitted: %s", j.Name)
	settings := j.Settings

	if IsVideoFormat(settings.Format) {
		return &job.UnsupportedFormatError{Format: settings.Format}
	}

	renderOutput, err := ResolveOutputPath(settings.RenderOutputRoot, settings.RenderName, settings.ImageFileExtension)
	if err != nil {
		return err
	}
	if err := validate(settings); err != nil {
		return err
	}

	renderDir := path.Dir(renderOutput)
	tasks, err := AuthorTasks(settings, renderDir, renderOutput)
	if err != nil {
		return err
	}
	if len(tasks) == 0 {
		return job.Configurationf("frames", "expression %q yields no frames to render", settings.Frames)
	}

	// Shows the render output that was actually used when the job is
	// inspected later.
	j.Settings.RenderOutputPath = renderOutput
	for _, t := range tasks {
		j.AddTask(t)
	}
	logging.Info("Authored %d render tasks writing to %s", len(tasks), renderOutput)
	return nil
}

func validate(s job.Settings) error {
	if s.BlendFile == "" {
		return job.Configurationf("blendfile", "is required")
	}
	if s.Format == "" {
		return job.Configurationf("format", "is required")
	}
	if s.ChunkSize <= 0 {
		return job.Configurationf("chunk_size", "must be a positive integer, got %d", s.ChunkSize)
	}
	return nil
}

// ResolveOutputPath returns root/name.####ext. The #### is kept verbatim;
// Blender replaces it with the frame number.
func ResolveOutputPath(root, name, ext string) (string, error) {
	if root == "" || name == "" {
		return "", job.Configurationf("", "render_output_root and render_name settings are required")
	}
	return path.Join(root, name+framePattern+ext), nil
}

// AuthorTasks creates one Blender render task per chunk of settings.Frames.
func AuthorTasks(settings job.Settings, renderDir, renderOutput string) ([]job.Task, error) {
	logging.Debug("authorTasks(%s, %s)", renderDir, renderOutput)
	chunks, err := framerange.ChunkExpression(settings.Frames, settings.ChunkSize)
	if err != nil {
		return nil, err
	}

	tasks := make([]job.Task, 0, len(chunks))
	for _, chunk := range chunks {
		start, end, err := framerange.Bounds(chunk)
		if err != nil {
			return nil, err
		}
		logging.Debug("chunk %q renders frames %d..%d", chunk, start, end)

		task := job.Task{Name: "render-" + chunk, Type: taskType}
		task.AddCommand(job.Command{
			Name:       commandName,
			Exe:        blenderExe,
			ExeArgs:    blenderArgs,
			ArgsBefore: []string{},
			BlendFile:  settings.BlendFile,
			Args: []string{
				"--render-output", path.Join(renderDir, path.Base(renderOutput)),
				"--render-format", settings.Format,
				"--frame-start", strconv.Itoa(start),
				"--frame-end", strconv.Itoa(end),
				"--python-expr", borderRenderPy,
			},
		})
		tasks = append(tasks, task)
	}
	return tasks, nil
}
