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
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"sigs.k8s.io/release-utils/version"
)

var versionJSON bool

// versionCmd is the command when calling `ecr-mirror version`.
var versionCmd = &cobra.Command{
	Use:           "version",
	Short:         "output version information",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		v := version.GetVersionInfo()
		res := v.String()

		if versionJSON {
			j, err := v.JSONString()
			if err != nil {
				return errors.Wrap(err, "unable to generate JSON from version info")
			}
			res = j
		}

		fmt.Println(res)
		return nil
	},
}

func init() {
	versionCmd.PersistentFlags().BoolVarP(
		&versionJSON,
		"json",
		"j",
		false,
		"print JSON instead of text",
	)

	rootCmd.AddCommand(versionCmd)
}
