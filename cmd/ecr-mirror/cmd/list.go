/*
Copyright 2024 The ecr-mirror Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/onfido/ecr-mirror/mirror"
)

// listCmd prints every repository a sync pass would act on, without
// copying anything.
var listCmd = &cobra.Command{
	Use:           "list",
	Short:         "List all repositories that will be synced",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := runOptions(cmd)
		if err != nil {
			return err
		}
		ctx, stop := interruptibleContext()
		defer stop()
		return mirror.New().ListRepositories(ctx, opts)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
