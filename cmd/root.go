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

// Package cmd defines the render-border command line.
package cmd

import (
	"render-border/pkg/logging"
	"render-border/pkg/orchestrator"
	"render-border/pkg/orchestrator/borderrender"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// app carries what the commands share. Tests swap the filesystem.
type app struct {
	fs       afero.Fs
	registry *orchestrator.Registry
}

func defaultApp() *app {
	return &app{
		fs:       afero.NewOsFs(),
		registry: orchestrator.NewRegistry(borderrender.NewCompiler()),
	}
}

func newRootCmd(a *app) *cobra.Command {
	var verbose bool
	rootCmd := &cobra.Command{
		Use:   "render-border",
		Short: "Compiles render farm job settings into Blender render tasks.",
		Long: `render-border turns the settings of a render job (frame range, chunk size,
output location and image format) into the list of Blender render tasks a
render farm scheduler executes.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetVerbose(verbose)
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every authored chunk.")

	rootCmd.AddCommand(newCompileCmd(a), newDescribeCmd(a), newJobTypesCmd(a))
	return rootCmd
}

// Execute runs the root command with os.Args.
func Execute() error {
	return newRootCmd(defaultApp()).Execute()
}
