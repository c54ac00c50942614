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

	"render-border/pkg/orchestrator/borderrender"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newDescribeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "describe [job-type]",
		Short: "Prints the settings a job type accepts.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := borderrender.Name
			if len(args) == 1 {
				name = args[0]
			}
			jobType, err := a.registry.Lookup(name)
			if err != nil {
				return err
			}
			out, err := yaml.Marshal(jobType.Describe())
			if err != nil {
				return fmt.Errorf("failed to marshal job type description: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}

func newJobTypesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "job-types",
		Short: "Lists the registered job types.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range a.registry.Names() {
				jobType, err := a.registry.Lookup(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", name, jobType.Describe().Label)
			}
			return nil
		},
	}
}
