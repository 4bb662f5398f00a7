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

package syncer_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/onfido/ecr-mirror/internal/container"
	"github.com/onfido/ecr-mirror/internal/syncer"
)

type fakeUpstream struct {
	tags map[string][]string
	errs map[string]error
}

func (f *fakeUpstream) ListTags(_ context.Context, image string) ([]string, error) {
	if err := f.errs[image]; err != nil {
		return nil, err
	}
	return f.tags[image], nil
}

type fakeDestination struct {
	tags map[string]container.Set[string]
	errs map[string]error
}

func (f *fakeDestination) ListImageTags(
	_ context.Context, repositoryName string,
) (container.Set[string], error) {
	if err := f.errs[repositoryName]; err != nil {
		return nil, err
	}
	tags, ok := f.tags[repositoryName]
	if !ok {
		return container.NewSet[string](), nil
	}
	return tags, nil
}

type fakeCopier struct {
	mu          sync.Mutex
	copied      []string
	failFor     map[string]error
	inFlight    int
	maxInFlight int
	delay       time.Duration
}

func (f *fakeCopier) Copy(_ context.Context, task syncer.CopyTask) error {
	f.mu.Lock()
	f.inFlight++
	if f.inFlight > f.maxInFlight {
		f.maxInFlight = f.inFlight
	}
	f.mu.Unlock()

	if f.delay > 0 {
		time.Sleep(f.delay)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.inFlight--
	if err := f.failFor[task.Destination.String()]; err != nil {
		return err
	}
	f.copied = append(f.copied, task.Destination.String())
	return nil
}

func nginxSpec() syncer.MirrorSpec {
	return syncer.MirrorSpec{
		RepositoryName: "nginx",
		RepositoryURI:  "123456789.dkr.ecr.eu-west-1.amazonaws.com/nginx",
		UpstreamImage:  "nginx",
		TagGlobs: []syncer.TagGlob{
			syncer.MustCompileGlob("1.16+"),
			syncer.MustCompileGlob("1.17+"),
		},
	}
}

func TestRunCopiesMissingTags(t *testing.T) {
	upstream := &fakeUpstream{tags: map[string][]string{
		"nginx": {"1.16", "1.16.1", "1.17", "1.17.2", "1.18"},
	}}
	destination := &fakeDestination{tags: map[string]container.Set[string]{
		"nginx": container.NewSet("1.16"),
	}}
	copier := &fakeCopier{}

	s := syncer.New(upstream, destination, copier, syncer.Options{})
	report := s.Run(context.Background(), []syncer.MirrorSpec{nginxSpec()})

	require.False(t, report.Failed())
	require.Equal(t, 3, report.Copied())
	require.Equal(t, 1, report.AlreadyPresent())
	require.ElementsMatch(t, []string{
		"123456789.dkr.ecr.eu-west-1.amazonaws.com/nginx:1.16.1",
		"123456789.dkr.ecr.eu-west-1.amazonaws.com/nginx:1.17",
		"123456789.dkr.ecr.eu-west-1.amazonaws.com/nginx:1.17.2",
	}, copier.copied)
}

func TestRunSkipsPresentTags(t *testing.T) {
	upstream := &fakeUpstream{tags: map[string][]string{
		"nginx": {"1.16", "1.17"},
	}}
	destination := &fakeDestination{tags: map[string]container.Set[string]{
		"nginx": container.NewSet("1.16", "1.17"),
	}}
	copier := &fakeCopier{}

	s := syncer.New(upstream, destination, copier, syncer.Options{})
	report := s.Run(context.Background(), []syncer.MirrorSpec{nginxSpec()})

	require.False(t, report.Failed())
	require.Empty(t, copier.copied)
	require.Equal(t, 2, report.AlreadyPresent())
}

func redisSpec() syncer.MirrorSpec {
	return syncer.MirrorSpec{
		RepositoryName: "redis",
		RepositoryURI:  "123456789.dkr.ecr.eu-west-1.amazonaws.com/redis",
		UpstreamImage:  "redis",
		TagGlobs:       []syncer.TagGlob{syncer.MustCompileGlob("7.2")},
	}
}

func failedResult(t *testing.T, report *syncer.Report) syncer.Result {
	t.Helper()
	var failed syncer.Result
	for _, res := range report.Results {
		if res.Outcome == syncer.OutcomeFailed {
			failed = res
		}
	}
	return failed
}

func TestRunIsolatesRepositoryFailures(t *testing.T) {
	upstream := &fakeUpstream{
		tags: map[string][]string{"redis": {"7.2"}},
		errs: map[string]error{"nginx": errors.New("rate limited")},
	}
	destination := &fakeDestination{}
	copier := &fakeCopier{}

	s := syncer.New(upstream, destination, copier, syncer.Options{})
	report := s.Run(
		context.Background(),
		[]syncer.MirrorSpec{nginxSpec(), redisSpec()},
	)

	require.True(t, report.Failed())
	require.Equal(t, 1, report.FailedCount())
	require.Equal(t, 1, report.Copied())

	failed := failedResult(t, report)
	require.Equal(t, "nginx", failed.Repository)
	require.Empty(t, failed.Tag)
	require.Contains(t, failed.Reason, "upstream tag listing unavailable")
}

func TestRunIsolatesDestinationFailures(t *testing.T) {
	upstream := &fakeUpstream{tags: map[string][]string{
		"nginx": {"1.16", "1.17"},
		"redis": {"7.2"},
	}}
	destination := &fakeDestination{
		errs: map[string]error{"nginx": errors.New("access denied")},
	}
	copier := &fakeCopier{}

	s := syncer.New(upstream, destination, copier, syncer.Options{})
	report := s.Run(
		context.Background(),
		[]syncer.MirrorSpec{nginxSpec(), redisSpec()},
	)

	// One repository-scoped failure, no copies attempted for it, and
	// the sibling repository still syncs.
	require.True(t, report.Failed())
	require.Equal(t, 1, report.FailedCount())
	require.Equal(t, 1, report.Copied())
	require.Equal(t, []string{
		"123456789.dkr.ecr.eu-west-1.amazonaws.com/redis:7.2",
	}, copier.copied)

	failed := failedResult(t, report)
	require.Equal(t, "nginx", failed.Repository)
	require.Empty(t, failed.Tag)
	require.Contains(t, failed.Reason, "destination tag listing unavailable")
}

func TestRunDeduplicatesDestinations(t *testing.T) {
	upstream := &fakeUpstream{tags: map[string][]string{
		"nginx": {"1.17"},
	}}
	destination := &fakeDestination{}
	copier := &fakeCopier{}

	// Two specs pointing at the same destination produce one task.
	s := syncer.New(upstream, destination, copier, syncer.Options{})
	report := s.Run(
		context.Background(),
		[]syncer.MirrorSpec{nginxSpec(), nginxSpec()},
	)

	require.False(t, report.Failed())
	require.Len(t, copier.copied, 1)
	require.Equal(t, 1, report.Copied())
}

func TestRunBoundsCopyConcurrency(t *testing.T) {
	upstream := &fakeUpstream{tags: map[string][]string{
		"nginx": {"1.16", "1.16.1", "1.17", "1.17.2", "1.18"},
	}}
	destination := &fakeDestination{}
	copier := &fakeCopier{delay: 5 * time.Millisecond}

	s := syncer.New(upstream, destination, copier, syncer.Options{
		MaxConcurrentCopies: 2,
	})
	spec := nginxSpec()
	spec.TagGlobs = []syncer.TagGlob{syncer.MustCompileGlob("+")}
	report := s.Run(context.Background(), []syncer.MirrorSpec{spec})

	require.Equal(t, 5, report.Copied())
	require.LessOrEqual(t, copier.maxInFlight, 2)
}

func TestRunCancelledContext(t *testing.T) {
	upstream := &fakeUpstream{tags: map[string][]string{
		"nginx": {"1.16", "1.17"},
	}}
	destination := &fakeDestination{}
	copier := &fakeCopier{}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := syncer.New(upstream, destination, copier, syncer.Options{})
	report := s.Run(ctx, []syncer.MirrorSpec{nginxSpec()})

	// No new work is admitted once the run is cancelled; every pending
	// tag surfaces as a scoped failure rather than hanging the pass.
	require.True(t, report.Failed())
	require.Empty(t, copier.copied)
}
