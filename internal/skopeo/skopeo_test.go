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

package skopeo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/onfido/ecr-mirror/internal/syncer"
)

type scriptedCall struct {
	stdout string
	stderr string
	err    error
}

type scriptedRunner struct {
	script []scriptedCall
	calls  [][]string
}

func (r *scriptedRunner) Run(
	_ context.Context, args ...string,
) (string, string, error) {
	r.calls = append(r.calls, args)
	step := r.script[len(r.calls)-1]
	return step.stdout, step.stderr, step.err
}

func testClient(runner Runner) *Client {
	return &Client{
		OverrideOS:   "linux",
		OverrideArch: "amd64",
		DestCreds:    "AWS:secret",
		runner:       runner,
		limiter:      rate.NewLimiter(rate.Inf, 1),
		maxAttempts:  3,
		interval:     time.Millisecond,
	}
}

func testTask() syncer.CopyTask {
	return syncer.CopyTask{
		Source:      syncer.ImageReference{Repository: "nginx", Tag: "1.17"},
		Destination: syncer.ImageReference{
			Registry:   "123456789.dkr.ecr.eu-west-1.amazonaws.com",
			Repository: "nginx",
			Tag:        "1.17",
		},
	}
}

func TestListTags(t *testing.T) {
	runner := &scriptedRunner{script: []scriptedCall{
		{stdout: `{"Repository": "docker.io/library/nginx", "Tags": ["1.16", "1.17"]}`},
	}}

	tags, err := testClient(runner).ListTags(context.Background(), "nginx")
	require.NoError(t, err)
	require.Equal(t, []string{"1.16", "1.17"}, tags)

	require.Len(t, runner.calls, 1)
	require.Equal(t, []string{
		"list-tags", "docker://nginx",
		"--override-os=linux", "--override-arch=amd64",
	}, runner.calls[0])
}

func TestListTagsNotFound(t *testing.T) {
	runner := &scriptedRunner{script: []scriptedCall{
		{stderr: "reading manifest: name unknown", err: errors.New("exit status 1")},
	}}

	_, err := testClient(runner).ListTags(context.Background(), "no/such-image")
	require.ErrorIs(t, err, syncer.ErrImageNotFound)
	// Not-found failures are permanent, no retry.
	require.Len(t, runner.calls, 1)
}

func TestCopyArgs(t *testing.T) {
	runner := &scriptedRunner{script: []scriptedCall{{}}}

	require.NoError(t, testClient(runner).Copy(context.Background(), testTask()))
	require.Equal(t, []string{
		"copy",
		"docker://nginx:1.17",
		"docker://123456789.dkr.ecr.eu-west-1.amazonaws.com/nginx:1.17",
		"--override-os=linux",
		"--override-arch=amd64",
		"--dest-creds=AWS:secret",
	}, runner.calls[0])
}

func TestCopyMultiArch(t *testing.T) {
	runner := &scriptedRunner{script: []scriptedCall{{}}}
	c := testClient(runner)
	c.OverrideArch = "all"

	require.NoError(t, c.Copy(context.Background(), testTask()))
	require.Contains(t, runner.calls[0], "--multi-arch=all")
	require.NotContains(t, runner.calls[0], "--override-arch=all")
}

func TestCopyRetriesTransientThenSucceeds(t *testing.T) {
	timeoutErr := errors.New("exit status 1")
	runner := &scriptedRunner{script: []scriptedCall{
		{stderr: "dial tcp: i/o timeout", err: timeoutErr},
		{stderr: "received 429 too many requests", err: timeoutErr},
		{},
	}}

	require.NoError(t, testClient(runner).Copy(context.Background(), testTask()))
	require.Len(t, runner.calls, 3)
}

func TestCopyExhaustsRetries(t *testing.T) {
	runner := &scriptedRunner{script: []scriptedCall{
		{stderr: "connection reset by peer", err: errors.New("exit status 1")},
		{stderr: "connection reset by peer", err: errors.New("exit status 1")},
		{stderr: "final: connection reset by peer", err: errors.New("last failure")},
	}}

	err := testClient(runner).Copy(context.Background(), testTask())
	require.Error(t, err)
	// The last captured reason is what gets reported.
	require.Contains(t, err.Error(), "last failure")
	require.Len(t, runner.calls, 3)
}

func TestCopyDoesNotRetryAuthFailures(t *testing.T) {
	runner := &scriptedRunner{script: []scriptedCall{
		{stderr: "unauthorized: authentication required", err: errors.New("exit status 1")},
	}}

	err := testClient(runner).Copy(context.Background(), testTask())
	require.Error(t, err)
	require.Len(t, runner.calls, 1)
}

func TestClassify(t *testing.T) {
	for _, tc := range []struct {
		diag string
		kind failureKind
	}{
		{"dial tcp 1.2.3.4: i/o timeout", failureTransient},
		{"toomanyrequests: rate limit exceeded", failureTransient},
		{"received unexpected HTTP status: 503", failureTransient},
		{"unauthorized: authentication required", failurePermanent},
		{"requested access to the resource is denied", failurePermanent},
		{"manifest unknown: manifest tagged by 1.99 not found", failureNotFound},
	} {
		require.Equal(t, tc.kind, classify(tc.diag), tc.diag)
	}
}
