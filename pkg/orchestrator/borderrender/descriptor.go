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

package borderrender

import (
	"strconv"

	"render-border/pkg/job"
	"render-border/pkg/orchestrator"
)

// Describe returns the settings the submitter is asked for. Eval expressions
// are run by the submitting add-on, not by this package.
func (c *Compiler) Describe() orchestrator.Descriptor {
	return orchestrator.Descriptor{
		Label:       "Animated Render Border v2",
		Description: "Render a sequence of frames using Animated Render Border",
		Settings: []orchestrator.SettingDefinition{
			{
				Key:         "frames",
				Type:        "string",
				Required:    true,
				Eval:        "f'{C.scene.frame_start}-{C.scene.frame_end}'",
				Description: "Frame range to render. Examples: '47', '1-30', '3, 5-10, 47-327'",
			},
			{
				Key:         "chunk_size",
				Type:        "int32",
				Default:     strconv.Itoa(job.DefaultChunkSize),
				Visible:     "submission",
				Description: "Number of frames to render in one Blender render task",
			},
			{
				Key:         "render_output_root",
				Type:        "string",
				Required:    true,
				Visible:     "submission",
				Description: "Base directory of where render output is stored",
			},
			{
				Key:         "render_name",
				Type:        "string",
				Required:    true,
				Visible:     "submission",
				Description: "Name of the render output file without extension",
			},
			{
				Key:         "blendfile",
				Type:        "string",
				Required:    true,
				Visible:     "web",
				Description: "Path of the Blend file to render",
			},
			{
				Key:     "fps",
				Type:    "float",
				Visible: "hidden",
				Eval:    "C.scene.render.fps / C.scene.render.fps_base",
			},
			{
				Key:      "format",
				Type:     "string",
				Required: true,
				Visible:  "web",
				Eval:     "C.scene.render.image_settings.file_format",
			},
			{
				Key:         "image_file_extension",
				Type:        "string",
				Required:    true,
				Visible:     "hidden",
				Eval:        "C.scene.render.file_extension",
				Description: "File extension used when rendering images",
			},
		},
	}
}
