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

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"sigs.k8s.io/release-utils/log"

	"github.com/onfido/ecr-mirror/mirror/options"
)

// rootCmd represents the base command when called without any
// subcommands.
var rootCmd = &cobra.Command{
	Use:   "ecr-mirror",
	Short: "Mirror public container images into ECR",
	Long: `ecr-mirror - mirror public container images into private ECR repositories

Repositories opt in through ECR resource tags: upstream-image names the
public image to track and upstream-tags lists the tag globs to keep in
sync (separated by "/", with "+" standing in for "*").
`,
	PersistentPreRunE: initLogging,
}

var (
	rootOpts   = options.Default()
	configPath string
	logLevel   string
)

// Execute adds all child commands to the root command and sets flags.
// This is called by main.main(). It only needs to happen once.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Fatal(err)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(
		&rootOpts.RegistryID,
		"registry-id",
		"",
		"the registry ID, usually your AWS account ID",
	)
	pf.StringVar(
		&rootOpts.RoleARN,
		"role-arn",
		"",
		"assume a specific role to push to AWS",
	)
	pf.StringVar(
		&rootOpts.OverrideOS,
		"override-os",
		rootOpts.OverrideOS,
		"specify the OS of the images to mirror",
	)
	pf.StringVar(
		&rootOpts.OverrideArch,
		"override-arch",
		rootOpts.OverrideArch,
		"specify the architecture of the images to mirror; \"all\" syncs every architecture",
	)
	pf.IntVar(
		&rootOpts.MaxConcurrentRepositories,
		"max-repositories",
		rootOpts.MaxConcurrentRepositories,
		"how many repositories to resolve and diff concurrently",
	)
	pf.IntVar(
		&rootOpts.MaxConcurrentCopies,
		"max-copies",
		rootOpts.MaxConcurrentCopies,
		"how many image copies to run concurrently, across all repositories",
	)
	pf.Float64Var(
		&rootOpts.RequestsPerSecond,
		"requests-per-second",
		rootOpts.RequestsPerSecond,
		"cap on copy tool invocations started per second",
	)
	pf.StringVar(
		&configPath,
		"config",
		"",
		"path to a YAML file with configuration options; flags override it",
	)
	pf.StringVar(
		&logLevel,
		"log-level",
		"info",
		fmt.Sprintf("the logging verbosity, either %s", log.LevelNames()),
	)
}

func initLogging(*cobra.Command, []string) error {
	return log.SetupGlobalLogger(logLevel)
}

// runOptions resolves the effective options: defaults, then the
// optional config file, then any explicitly set flags on top.
func runOptions(cmd *cobra.Command) (*options.Options, error) {
	if configPath == "" {
		return rootOpts, nil
	}

	opts, err := options.FromFile(configPath)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("registry-id") {
		opts.RegistryID = rootOpts.RegistryID
	}
	if flags.Changed("role-arn") {
		opts.RoleARN = rootOpts.RoleARN
	}
	if flags.Changed("override-os") {
		opts.OverrideOS = rootOpts.OverrideOS
	}
	if flags.Changed("override-arch") {
		opts.OverrideArch = rootOpts.OverrideArch
	}
	if flags.Changed("max-repositories") {
		opts.MaxConcurrentRepositories = rootOpts.MaxConcurrentRepositories
	}
	if flags.Changed("max-copies") {
		opts.MaxConcurrentCopies = rootOpts.MaxConcurrentCopies
	}
	if flags.Changed("requests-per-second") {
		opts.RequestsPerSecond = rootOpts.RequestsPerSecond
	}
	return opts, nil
}
