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
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/onfido/ecr-mirror/mirror"
)

// syncCmd runs one full sync pass over every annotated repository.
var syncCmd = &cobra.Command{
	Use:           "sync",
	Short:         "Copy public images into ECR using ECR resource tags",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := runOptions(cmd)
		if err != nil {
			return err
		}
		ctx, stop := interruptibleContext()
		defer stop()
		return mirror.New().RunSync(ctx, opts)
	},
}

// interruptibleContext is cancelled on SIGINT/SIGTERM. Cancellation
// stops new copy tasks from being admitted; copies already in flight
// finish on their own.
func interruptibleContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(
		context.Background(), os.Interrupt, syscall.SIGTERM,
	)
}

func init() {
	rootCmd.AddCommand(syncCmd)
}
