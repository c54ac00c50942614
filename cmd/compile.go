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

package cmd

import (
	"fmt"

	"render-border/pkg/config"
	"render-border/pkg/job"
	"render-border/pkg/logging"
	"render-border/pkg/manifest"
	"render-border/pkg/orchestrator/borderrender"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

type compileOptions struct {
	settingsFile   string
	jobType        string
	jobName        string
	jobID          string
	outputManifest string
}

func newCompileCmd(a *app) *cobra.Command {
	opts := &compileOptions{}
	compileCmd := &cobra.Command{
		Use:   "compile",
		Short: "Compiles job settings into render tasks and prints the task manifest.",
		Long: `The 'compile' command reads job settings from a YAML file (--settings) and/or
flags, splits the frame range into chunks of --chunk-size frames and authors
one Blender render task per chunk.

Flags override values from the settings file. The resulting manifest is written
to --output-manifest, or to stdout when no path is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompileCmd(cmd, a, opts)
		},
	}

	compileCmd.Flags().StringVarP(&opts.settingsFile, "settings", "s", "", "Path to a YAML file with the job settings.")
	compileCmd.Flags().StringVarP(&opts.jobType, "job-type", "t", borderrender.Name, "Job type to compile the settings with.")
	compileCmd.Flags().StringVar(&opts.jobName, "job-name", "", "Name of the job. Defaults to the render name.")
	compileCmd.Flags().StringVar(&opts.jobID, "job-id", "", "Identifier of the job. A random UUID is used when empty.")
	compileCmd.Flags().StringVarP(&opts.outputManifest, "output-manifest", "o", "", "Path to write the task manifest to instead of stdout.")
	config.RegisterFlags(compileCmd.Flags())

	return compileCmd
}

func runCompileCmd(cmd *cobra.Command, a *app, opts *compileOptions) error {
	logging.Info("Executing compile command...")

	jobType, err := a.registry.Lookup(opts.jobType)
	if err != nil {
		return err
	}

	settings := job.Settings{ChunkSize: job.DefaultChunkSize}
	if opts.settingsFile != "" {
		if settings, err = config.LoadSettings(a.fs, opts.settingsFile); err != nil {
			return err
		}
	}
	if err := config.ApplyFlags(&settings, cmd.Flags()); err != nil {
		return err
	}

	j := &job.Job{
		ID:       opts.jobID,
		Name:     opts.jobName,
		Type:     jobType.Name(),
		Settings: settings,
	}
	if j.ID == "" {
		j.ID = uuid.NewString()
	}
	if j.Name == "" {
		j.Name = settings.RenderName
	}

	if err := jobType.Compile(j); err != nil {
		return fmt.Errorf("compiling job %q failed: %w", j.Name, err)
	}
	if borderrender.IsFFmpegIncompatible(j.Settings.Format) {
		logging.Warn("Format %s cannot be read by FFmpeg; the frames cannot be turned into a preview video.", j.Settings.Format)
	}

	content, err := manifest.Generate(j)
	if err != nil {
		return err
	}
	if opts.outputManifest != "" {
		return manifest.Write(a.fs, opts.outputManifest, content)
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), content)
	return err
}
