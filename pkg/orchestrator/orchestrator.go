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

package orchestrator

import (
	"fmt"
	"sort"

	"github.com/agext/levenshtein"

	"render-border/pkg/job"
)

// SettingDefinition describes one submission setting of a job type.
type SettingDefinition struct {
	Key         string `yaml:"key"`
	Type        string `yaml:"type"`
	Required    bool   `yaml:"required,omitempty"`
	Default     string `yaml:"default,omitempty"`
	Visible     string `yaml:"visible,omitempty"`
	Eval        string `yaml:"eval,omitempty"`
	Description string `yaml:"description,omitempty"`
}

// Descriptor is the user-facing description of a job type.
type Descriptor struct {
	Label       string              `yaml:"label"`
	Description string              `yaml:"description"`
	Settings    []SettingDefinition `yaml:"settings"`
}

// JobType compiles submitted jobs into tasks.
type JobType interface {
	// Name is the identifier the job type is registered under.
	Name() string
	Describe() Descriptor
	// Compile authors the job's tasks and registers them with the job.
	// On error the job is left untouched.
	Compile(j *job.Job) error
}

// Registry maps job type names to implementations.
type Registry struct {
	types map[string]JobType
}

// NewRegistry returns a registry holding the given job types.
func NewRegistry(types ...JobType) *Registry {
	r := &Registry{types: map[string]JobType{}}
	for _, t := range types {
		r.Register(t)
	}
	return r
}

// Register adds a job type, replacing any type of the same name.
func (r *Registry) Register(t JobType) {
	r.types[t.Name()] = t
}

// Lookup returns the job type registered under name.
func (r *Registry) Lookup(name string) (JobType, error) {
	if t, ok := r.types[name]; ok {
		return t, nil
	}
	if hint := closest(name, r.Names()); hint != "" {
		return nil, fmt.Errorf("unknown job type %q, did you mean %q?", name, hint)
	}
	return nil, fmt.Errorf("unknown job type %q", name)
}

// Names returns the registered job type names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.types))
	for n := range r.types {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// closest returns the candidate nearest to s, or "" when none is close enough.
func closest(s string, candidates []string) string {
	best, bestDist := "", 4
	for _, c := range candidates {
		if d := levenshtein.Distance(s, c, nil); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}
