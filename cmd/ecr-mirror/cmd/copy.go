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

// copyCmd mirrors a single source pattern into one explicit
// destination repository, bypassing the catalog.
var copyCmd = &cobra.Command{
	Use:           "copy <source:tag-glob> <destination-repository>",
	Short:         "Copy all tags matching a glob into one ECR repository",
	Args:          cobra.ExactArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := runOptions(cmd)
		if err != nil {
			return err
		}
		ctx, stop := interruptibleContext()
		defer stop()
		return mirror.New().CopyImage(ctx, opts, args[0], args[1])
	},
}

func init() {
	rootCmd.AddCommand(copyCmd)
}
