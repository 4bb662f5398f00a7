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

// Package skopeo drives the skopeo binary to list upstream tags and to
// copy single image tags between registries. It is the only place in
// the module that shells out.
package skopeo

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
	"sigs.k8s.io/release-utils/command"

	"github.com/onfido/ecr-mirror/internal/syncer"
)

const binary = "skopeo"

// DefaultMaxAttempts is how often a transient failure is attempted
// before it is reported as the task's failure.
const DefaultMaxAttempts = 3

// Runner abstracts the skopeo subprocess invocation so tests can
// script outcomes. The returned strings are captured stdout and
// stderr.
type Runner interface {
	Run(ctx context.Context, args ...string) (stdout, stderr string, err error)
}

type commandRunner struct{}

func (commandRunner) Run(_ context.Context, args ...string) (string, string, error) {
	status, err := command.New(binary, args...).RunSilent()
	if err != nil {
		return "", "", errors.Wrapf(err, "running %s", binary)
	}
	if !status.Success() {
		return status.Output(), status.Error(), fmt.Errorf(
			"%s %s failed: %s", binary, args[0], lastLine(status.Error()),
		)
	}
	return status.Output(), status.Error(), nil
}

// Client lists tags and copies images through skopeo. It implements
// syncer.TagLister and syncer.Copier.
type Client struct {
	// OverrideOS and OverrideArch are passed straight through to
	// skopeo. An OverrideArch of "all" copies every architecture
	// (--multi-arch=all) instead.
	OverrideOS   string
	OverrideArch string

	// DestCreds is the user:password pair for the destination
	// registry. Applied to copy invocations only.
	DestCreds string

	runner      Runner
	limiter     *rate.Limiter
	maxAttempts uint64
	interval    time.Duration
}

// New returns a Client that invokes the real skopeo binary, gated at
// requestsPerSecond invocation starts per second across listing and
// copying.
func New(overrideOS, overrideArch, destCreds string, requestsPerSecond float64) *Client {
	return &Client{
		OverrideOS:   overrideOS,
		OverrideArch: overrideArch,
		DestCreds:    destCreds,
		runner:       commandRunner{},
		limiter:      rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
		maxAttempts:  DefaultMaxAttempts,
		interval:     time.Second,
	}
}

// ListTags fetches the full tag listing for an image, e.g. "nginx" or
// "quay.io/prometheus/node-exporter".
func (c *Client) ListTags(ctx context.Context, image string) ([]string, error) {
	args := []string{"list-tags", "docker://" + image}
	args = append(args, c.platformArgs(false)...)

	stdout, err := c.runRetrying(ctx, args)
	if err != nil {
		return nil, err
	}

	var listing struct {
		Tags []string `json:"Tags"`
	}
	if err := json.Unmarshal([]byte(stdout), &listing); err != nil {
		return nil, errors.Wrapf(err, "decoding tag listing for %s", image)
	}
	return listing.Tags, nil
}

// Copy transfers one tag from the task source to the task destination.
func (c *Client) Copy(ctx context.Context, task syncer.CopyTask) error {
	logrus.Infof("copying %s to %s", task.Source, task.Destination)

	args := []string{
		"copy",
		"docker://" + task.Source.String(),
		"docker://" + task.Destination.String(),
	}
	args = append(args, c.platformArgs(true)...)
	if c.DestCreds != "" {
		args = append(args, "--dest-creds="+c.DestCreds)
	}

	_, err := c.runRetrying(ctx, args)
	return err
}

// platformArgs renders the --override-os/--override-arch flags. Copy
// invocations honor the special arch value "all" via --multi-arch.
func (c *Client) platformArgs(multiArch bool) []string {
	args := []string{}
	if c.OverrideOS != "" {
		args = append(args, "--override-os="+c.OverrideOS)
	}
	switch {
	case c.OverrideArch == "all" && multiArch:
		args = append(args, "--multi-arch=all")
	case c.OverrideArch != "" && c.OverrideArch != "all":
		args = append(args, "--override-arch="+c.OverrideArch)
	}
	return args
}

// runRetrying executes one skopeo invocation, retrying transient
// failures with exponential backoff up to the attempt budget.
// Permanent failures (authentication, missing image) surface
// immediately.
func (c *Client) runRetrying(ctx context.Context, args []string) (string, error) {
	var stdout string

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = c.interval
	attempt := 0

	run := func() error {
		if err := c.limiter.Wait(ctx); err != nil {
			return backoff.Permanent(err)
		}
		attempt++

		out, stderr, err := c.runner.Run(ctx, args...)
		if err == nil {
			stdout = out
			return nil
		}

		diag := stderr
		if diag == "" {
			diag = err.Error()
		}
		switch classify(diag) {
		case failureNotFound:
			return backoff.Permanent(
				fmt.Errorf("%w: %v", syncer.ErrImageNotFound, err),
			)
		case failurePermanent:
			return backoff.Permanent(err)
		default:
			logrus.Warnf(
				"transient failure (attempt %d/%d) for skopeo %s: %s",
				attempt, c.maxAttempts, args[0], lastLine(diag),
			)
			return err
		}
	}

	err := backoff.Retry(
		run,
		backoff.WithContext(
			backoff.WithMaxRetries(bo, c.maxAttempts-1), ctx,
		),
	)
	return stdout, err
}

type failureKind int

const (
	failureTransient failureKind = iota
	failurePermanent
	failureNotFound
)

var notFoundMarkers = []string{
	"manifest unknown",
	"name unknown",
	"repository not found",
	"was deleted or has expired",
}

var permanentMarkers = []string{
	"unauthorized",
	"authentication required",
	"invalid username/password",
	"denied",
	"forbidden",
}

// classify buckets a failure by its diagnostic output. Anything not
// recognizably permanent is treated as transient and retried: network
// timeouts, rate limits and 5xx responses all fall through here.
func classify(diag string) failureKind {
	lower := strings.ToLower(diag)
	for _, marker := range notFoundMarkers {
		if strings.Contains(lower, marker) {
			return failureNotFound
		}
	}
	for _, marker := range permanentMarkers {
		if strings.Contains(lower, marker) {
			return failurePermanent
		}
	}
	return failureTransient
}

func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	return lines[len(lines)-1]
}
