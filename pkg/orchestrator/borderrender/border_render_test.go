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
	"errors"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"

	"render-border/pkg/job"
)

func baseSettings() job.Settings {
	return job.Settings{
		Frames:             "1-10",
		ChunkSize:          3,
		RenderOutputRoot:   "/render/shots",
		RenderName:         "shot01",
		BlendFile:          "/projects/shot01.blend",
		Format:             "PNG",
		ImageFileExtension: ".png",
	}
}

func TestResolveOutputPath(t *testing.T) {
	tests := []struct {
		root, name, ext string
		want            string
	}{
		{"/out", "shot01", ".png", "/out/shot01.####.png"},
		{"/out/", "shot01", ".exr", "/out/shot01.####.exr"},
		{"/out", "shot01", "", "/out/shot01.####"},
		{"render", "a/b", ".jpg", "render/a/b.####.jpg"},
	}
	for _, tt := range tests {
		got, err := ResolveOutputPath(tt.root, tt.name, tt.ext)
		if err != nil {
			t.Fatalf("ResolveOutputPath(%q, %q, %q) failed: %v", tt.root, tt.name, tt.ext, err)
		}
		if got != tt.want {
			t.Errorf("ResolveOutputPath(%q, %q, %q) = %q, want %q", tt.root, tt.name, tt.ext, got, tt.want)
		}
	}
}

func TestResolveOutputPathRequiresRootAndName(t *testing.T) {
	for _, args := range [][2]string{{"", "shot01"}, {"/out", ""}, {"", ""}} {
		_, err := ResolveOutputPath(args[0], args[1], ".png")
		var cfgErr *job.ConfigurationError
		if !errors.As(err, &cfgErr) {
			t.Errorf("ResolveOutputPath(%q, %q) error = %v, want ConfigurationError", args[0], args[1], err)
		}
	}
}

func TestAuthorTasks(t *testing.T) {
	settings := baseSettings()
	settings.Frames = "5,9,47"
	settings.ChunkSize = 10

	tasks, err := AuthorTasks(settings, "/render/shots", "/render/shots/shot01.####.png")
	if err != nil {
		t.Fatalf("AuthorTasks failed: %v", err)
	}

	want := []job.Task{{
		Name: "render-5,9,47",
		Type: "blender",
		Commands: []job.Command{{
			Name:       "blender-render",
			Exe:        "{blender}",
			ExeArgs:    "{blenderArgs}",
			ArgsBefore: []string{},
			BlendFile:  "/projects/shot01.blend",
			Args: []string{
				"--render-output", "/render/shots/shot01.####.png",
				"--render-format", "PNG",
				"--frame-start", "5",
				"--frame-end", "47",
				"--python-expr", "import bpy; bpy.ops.render.animated_render_border_render()",
			},
		}},
	}}
	if diff := cmp.Diff(want, tasks); diff != "" {
		t.Errorf("AuthorTasks mismatch (-want +got):\n%s", diff)
	}
}

func TestAuthorTasksNames(t *testing.T) {
	tasks, err := AuthorTasks(baseSettings(), "/render/shots", "/render/shots/shot01.####.png")
	if err != nil {
		t.Fatalf("AuthorTasks failed: %v", err)
	}
	var names []string
	for _, task := range tasks {
		names = append(names, task.Name)
	}
	want := []string{"render-1-3", "render-4-6", "render-7-9", "render-10"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("task names mismatch (-want +got):\n%s", diff)
	}
}

// Task start/end pairs in order must cover contiguous input without gaps.
func TestAuthorTasksCoverage(t *testing.T) {
	for _, size := range []int{1, 2, 3, 7, 10, 50} {
		settings := baseSettings()
		settings.Frames = "1-40"
		settings.ChunkSize = size

		tasks, err := AuthorTasks(settings, "/render/shots", "/render/shots/shot01.####.png")
		if err != nil {
			t.Fatalf("AuthorTasks(size %d) failed: %v", size, err)
		}

		next := 1
		for _, task := range tasks {
			args := task.Commands[0].Args
			start, _ := strconv.Atoi(args[5])
			end, _ := strconv.Atoi(args[7])
			if start != next {
				t.Errorf("size %d: task %s starts at %d, want %d", size, task.Name, start, next)
			}
			if end < start || end-start+1 > size {
				t.Errorf("size %d: task %s has bad bounds %d..%d", size, task.Name, start, end)
			}
			next = end + 1
		}
		if next != 41 {
			t.Errorf("size %d: coverage ends at %d, want 40", size, next-1)
		}
	}
}

func TestCompile(t *testing.T) {
	j := &job.Job{Name: "shot01", Type: Name, Settings: baseSettings()}

	if err := NewCompiler().Compile(j); err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	if got, want := j.Settings.RenderOutputPath, "/render/shots/shot01.####.png"; got != want {
		t.Errorf("RenderOutputPath = %q, want %q", got, want)
	}
	if len(j.Tasks) != 4 {
		t.Fatalf("got %d tasks, want 4", len(j.Tasks))
	}
	for _, task := range j.Tasks {
		if len(task.Commands) != 1 {
			t.Errorf("task %s has %d commands, want 1", task.Name, len(task.Commands))
		}
	}
}

func TestCompileFailuresLeaveJobUntouched(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*job.Settings)
		wantFormat  bool
		wantSetting string
	}{
		{
			name:       "ffmpeg",
			mutate:     func(s *job.Settings) { s.Format = "FFMPEG" },
			wantFormat: true,
		},
		{
			name:       "avi raw",
			mutate:     func(s *job.Settings) { s.Format = "AVI_RAW" },
			wantFormat: true,
		},
		{
			name:       "avi jpeg with missing root",
			mutate:     func(s *job.Settings) { s.Format = "AVI_JPEG"; s.RenderOutputRoot = "" },
			wantFormat: true,
		},
		{
			name:   "missing root",
			mutate: func(s *job.Settings) { s.RenderOutputRoot = "" },
		},
		{
			name:   "missing name",
			mutate: func(s *job.Settings) { s.RenderName = "" },
		},
		{
			name:        "missing blendfile",
			mutate:      func(s *job.Settings) { s.BlendFile = "" },
			wantSetting: "blendfile",
		},
		{
			name:        "missing format",
			mutate:      func(s *job.Settings) { s.Format = "" },
			wantSetting: "format",
		},
		{
			name:        "zero chunk size",
			mutate:      func(s *job.Settings) { s.ChunkSize = 0 },
			wantSetting: "chunk_size",
		},
		{
			name:        "negative chunk size",
			mutate:      func(s *job.Settings) { s.ChunkSize = -2 },
			wantSetting: "chunk_size",
		},
		{
			name:        "malformed frames",
			mutate:      func(s *job.Settings) { s.Frames = "1-10,x" },
			wantSetting: "frames",
		},
		{
			name:        "empty frames",
			mutate:      func(s *job.Settings) { s.Frames = " " },
			wantSetting: "frames",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := baseSettings()
			tt.mutate(&settings)
			j := &job.Job{Name: "shot01", Type: Name, Settings: settings}

			err := NewCompiler().Compile(j)
			if err == nil {
				t.Fatal("Compile succeeded, want error")
			}

			var formatErr *job.UnsupportedFormatError
			var cfgErr *job.ConfigurationError
			switch {
			case tt.wantFormat:
				if !errors.As(err, &formatErr) {
					t.Errorf("error = %v, want UnsupportedFormatError", err)
				}
			case !errors.As(err, &cfgErr):
				t.Errorf("error = %v, want ConfigurationError", err)
			case cfgErr.Setting != tt.wantSetting:
				t.Errorf("Setting = %q, want %q", cfgErr.Setting, tt.wantSetting)
			}

			if len(j.Tasks) != 0 {
				t.Errorf("registered %d tasks on failure", len(j.Tasks))
			}
			if diff := cmp.Diff(settings, j.Settings); diff != "" {
				t.Errorf("settings changed on failure (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFormatSets(t *testing.T) {
	for _, f := range []string{"FFMPEG", "AVI_RAW", "AVI_JPEG"} {
		if !IsVideoFormat(f) {
			t.Errorf("IsVideoFormat(%q) = false", f)
		}
	}
	for _, f := range []string{"EXR", "MULTILAYER", "OPEN_EXR", "OPEN_EXR_MULTILAYER"} {
		if !IsFFmpegIncompatible(f) {
			t.Errorf("IsFFmpegIncompatible(%q) = false", f)
		}
		if IsVideoFormat(f) {
			t.Errorf("IsVideoFormat(%q) = true", f)
		}
	}
	if IsFFmpegIncompatible("PNG") || IsVideoFormat("PNG") {
		t.Error("PNG misclassified")
	}
}

// EXR output is exposed as incompatible but still compiles.
func TestCompileAllowsFFmpegIncompatibleImages(t *testing.T) {
	settings := baseSettings()
	settings.Format = "OPEN_EXR_MULTILAYER"
	settings.ImageFileExtension = ".exr"
	j := &job.Job{Settings: settings}
	if err := NewCompiler().Compile(j); err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
}

func TestDescribe(t *testing.T) {
	d := NewCompiler().Describe()
	if d.Label != "Animated Render Border v2" {
		t.Errorf("Label = %q", d.Label)
	}
	var required []string
	for _, s := range d.Settings {
		if s.Required {
			required = append(required, s.Key)
		}
	}
	want := []string{"frames", "render_output_root", "render_name", "blendfile", "format", "image_file_extension"}
	if diff := cmp.Diff(want, required); diff != "" {
		t.Errorf("required settings mismatch (-want +got):\n%s", diff)
	}
}
