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

package syncer

import (
	"context"
	"sort"
	"sync"

	"github.com/nozzle/throttler"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Options bound the fan-out of a sync pass.
type Options struct {
	// MaxConcurrentRepositories bounds how many repositories are
	// resolved and diffed at the same time.
	MaxConcurrentRepositories int

	// MaxConcurrentCopies bounds the copy invocations in flight at any
	// moment, globally across all repositories.
	MaxConcurrentCopies int64
}

const (
	DefaultMaxConcurrentRepositories = 8
	DefaultMaxConcurrentCopies       = 4
)

// Syncer drives one sync pass: for every mirror spec it resolves the
// upstream tags, diffs them against the destination and fans out the
// missing copies. All failures are scoped: a bad repository or a bad
// tag never stops the rest of the pass.
type Syncer struct {
	upstream    TagLister
	destination DestinationLister
	copier      Copier
	opts        Options

	// copySem is the global admission bound shared by every copy
	// goroutine regardless of which repository spawned it.
	copySem *semaphore.Weighted

	mu      sync.Mutex
	results []Result
	claimed map[string]struct{}
}

// New builds a Syncer over its three collaborators.
func New(upstream TagLister, destination DestinationLister, copier Copier, opts Options) *Syncer {
	if opts.MaxConcurrentRepositories <= 0 {
		opts.MaxConcurrentRepositories = DefaultMaxConcurrentRepositories
	}
	if opts.MaxConcurrentCopies <= 0 {
		opts.MaxConcurrentCopies = DefaultMaxConcurrentCopies
	}
	return &Syncer{
		upstream:    upstream,
		destination: destination,
		copier:      copier,
		opts:        opts,
		copySem:     semaphore.NewWeighted(opts.MaxConcurrentCopies),
		claimed:     map[string]struct{}{},
	}
}

// Run executes one full sync pass over the given mirror specs and
// returns the aggregated report. Cancelling the context stops new copy
// tasks from being admitted; tasks already running finish on their
// own.
func (s *Syncer) Run(ctx context.Context, specs []MirrorSpec) *Report {
	s.mu.Lock()
	s.results = nil
	s.claimed = map[string]struct{}{}
	s.mu.Unlock()

	t := throttler.New(s.opts.MaxConcurrentRepositories, len(specs))
	for _, spec := range specs {
		go func(spec MirrorSpec) {
			t.Done(s.syncRepository(ctx, spec))
		}(spec)
		t.Throttle()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return &Report{Results: s.results}
}

// syncRepository walks one repository through the
// resolve → diff → copy pipeline. The returned error mirrors what was
// already recorded in the report; callers use it only for logging.
func (s *Syncer) syncRepository(ctx context.Context, spec MirrorSpec) error {
	log := logrus.WithField("repository", spec.RepositoryName)

	srcRef, err := ParseImageReference(spec.UpstreamImage)
	if err != nil {
		s.recordFailure(spec.RepositoryName, "", err)
		return err
	}
	dstRef, err := ParseImageReference(spec.RepositoryURI)
	if err != nil {
		s.recordFailure(spec.RepositoryName, "", err)
		return err
	}

	log.Debugf("resolving tags for upstream image %s", spec.UpstreamImage)
	allTags, err := s.upstream.ListTags(ctx, spec.UpstreamImage)
	if err != nil {
		err = wrapScoped(ErrUpstreamUnavailable, err)
		s.recordFailure(spec.RepositoryName, "", err)
		return err
	}
	resolved := ResolveTags(allTags, spec.TagGlobs, spec.IgnoreGlobs)

	// The destination listing happens right before the diff to keep
	// the race window against concurrent pushes as small as possible.
	destTags, err := s.destination.ListImageTags(ctx, spec.RepositoryName)
	if err != nil {
		err = wrapScoped(ErrDestinationUnavailable, err)
		s.recordFailure(spec.RepositoryName, "", err)
		return err
	}

	present := resolved.Minus(resolved.Minus(destTags)).Items()
	sort.Strings(present)
	for _, tag := range present {
		s.record(Result{
			Repository: spec.RepositoryName,
			Tag:        tag,
			Outcome:    OutcomeAlreadyPresent,
		})
	}

	missing := Diff(resolved, destTags)
	if len(missing) == 0 {
		log.Debugf("nothing to copy (%d tags resolved, %d present)",
			resolved.Len(), len(present))
		return nil
	}
	log.Infof("copying %d of %d resolved tags", len(missing), resolved.Len())

	var wg errgroup.Group
	for _, tag := range missing {
		task := CopyTask{
			Source:      srcRef.WithTag(tag),
			Destination: dstRef.WithTag(tag),
		}
		if !s.claim(task) {
			continue
		}
		tag := tag
		wg.Go(func() error {
			if err := s.copySem.Acquire(ctx, 1); err != nil {
				s.recordFailure(spec.RepositoryName, tag, err)
				return nil
			}
			defer s.copySem.Release(1)

			if err := s.copier.Copy(ctx, task); err != nil {
				log.Errorf("copy of tag %s failed: %v", tag, err)
				s.recordFailure(spec.RepositoryName, tag, err)
				return nil
			}
			s.record(Result{
				Repository: spec.RepositoryName,
				Tag:        tag,
				Outcome:    OutcomeCopied,
			})
			return nil
		})
	}
	return wg.Wait()
}

// claim marks a copy destination as scheduled within this pass and
// reports whether the caller won the claim. Two specs pointing at the
// same destination tag produce a single CopyTask.
func (s *Syncer) claim(task CopyTask) bool {
	key := task.Destination.String()
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, dup := s.claimed[key]; dup {
		return false
	}
	s.claimed[key] = struct{}{}
	return true
}

func (s *Syncer) record(res Result) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results = append(s.results, res)
}

func (s *Syncer) recordFailure(repository, tag string, err error) {
	s.record(Result{
		Repository: repository,
		Tag:        tag,
		Outcome:    OutcomeFailed,
		Reason:     err.Error(),
	})
}
