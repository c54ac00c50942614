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

package job

// Settings holds the submission settings of a render job.
// Expression-backed values (scene frame range, file format, extension) are
// already evaluated by the time a job reaches a compiler.
type Settings struct {
	Frames             string  `yaml:"frames"`
	ChunkSize          int     `yaml:"chunk_size"`
	RenderOutputRoot   string  `yaml:"render_output_root"`
	RenderName         string  `yaml:"render_name"`
	BlendFile          string  `yaml:"blendfile"`
	FPS                float64 `yaml:"fps,omitempty"`
	Format             string  `yaml:"format"`
	ImageFileExtension string  `yaml:"image_file_extension"`

	// RenderOutputPath is set by the compiler so the job shows the
	// output path that was actually used.
	RenderOutputPath string `yaml:"render_output_path,omitempty"`
}

// DefaultChunkSize is the number of frames per task when none is given.
const DefaultChunkSize = 1

// Command is a single executable invocation inside a task.
// Field order and names are consumed by the worker runtime.
type Command struct {
	Name       string   `yaml:"name"`
	Exe        string   `yaml:"exe"`
	ExeArgs    string   `yaml:"exeArgs"`
	ArgsBefore []string `yaml:"argsBefore"`
	BlendFile  string   `yaml:"blendfile"`
	Args       []string `yaml:"args"`
}

// Task is a unit of work handed to the scheduler.
type Task struct {
	Name     string    `yaml:"name"`
	Type     string    `yaml:"type"`
	Commands []Command `yaml:"commands"`
}

// AddCommand appends a command to the task.
func (t *Task) AddCommand(cmd Command) {
	t.Commands = append(t.Commands, cmd)
}

// Job is the host-side job a compiler registers its tasks with.
type Job struct {
	ID       string
	Name     string
	Type     string
	Settings Settings
	Tasks    []Task
}

// AddTask registers one task with the job.
func (j *Job) AddTask(t Task) {
	j.Tasks = append(j.Tasks, t)
}
