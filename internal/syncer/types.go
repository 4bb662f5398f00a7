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
	"errors"
	"fmt"
	"strings"

	"github.com/onfido/ecr-mirror/internal/container"
)

// Sentinel errors for repository-scoped failures. Individual copy
// failures carry their own reasons in the Result that reports them.
var (
	// ErrUpstreamUnavailable marks a failure to list the upstream tags
	// for a repository after retries were exhausted.
	ErrUpstreamUnavailable = errors.New("upstream tag listing unavailable")

	// ErrDestinationUnavailable marks a failure to list the tags already
	// present in the destination repository.
	ErrDestinationUnavailable = errors.New("destination tag listing unavailable")

	// ErrImageNotFound marks an upstream image that does not exist.
	ErrImageNotFound = errors.New("upstream image not found")
)

// wrapScoped attaches a cause to one of the sentinel errors while
// keeping the sentinel matchable with errors.Is.
func wrapScoped(sentinel, cause error) error {
	return fmt.Errorf("%w: %v", sentinel, cause)
}

// ImageReference identifies an image in some registry, optionally
// pinned to a tag. The zero registry means the default (Docker Hub)
// resolution rules of the copy tool apply.
type ImageReference struct {
	Registry   string
	Repository string
	Tag        string
}

// String renders the canonical [registry/]repository[:tag] form.
func (r ImageReference) String() string {
	s := r.Repository
	if r.Registry != "" {
		s = r.Registry + "/" + r.Repository
	}
	if r.Tag != "" {
		s += ":" + r.Tag
	}
	return s
}

// WithTag returns a copy of the reference pinned to the given tag.
func (r ImageReference) WithTag(tag string) ImageReference {
	r.Tag = tag
	return r
}

// ParseImageReference splits an image string into an ImageReference.
// Only the final colon after the last path separator is treated as the
// tag delimiter, so registries with ports parse correctly.
func ParseImageReference(s string) (ImageReference, error) {
	if s == "" {
		return ImageReference{}, errors.New("empty image reference")
	}
	ref := ImageReference{Repository: s}
	if i := strings.LastIndex(s, ":"); i > strings.LastIndex(s, "/") {
		ref.Repository, ref.Tag = s[:i], s[i+1:]
		if ref.Tag == "" {
			return ImageReference{}, fmt.Errorf("empty tag in reference %q", s)
		}
	}
	if i := strings.Index(ref.Repository, "/"); i >= 0 {
		// A first path element containing a dot or colon is a registry
		// host, the same heuristic the docker reference grammar uses.
		if first := ref.Repository[:i]; strings.ContainsAny(first, ".:") || first == "localhost" {
			ref.Registry, ref.Repository = first, ref.Repository[i+1:]
		}
	}
	if ref.Repository == "" {
		return ImageReference{}, fmt.Errorf("no repository in reference %q", s)
	}
	return ref, nil
}

// MirrorSpec is the parsed mirroring directive of one destination
// repository: which upstream image to track and which of its tags.
type MirrorSpec struct {
	// RepositoryName is the destination repository name, e.g. "nginx".
	RepositoryName string

	// RepositoryURI is the full destination URI including the registry
	// host, e.g. "123456789.dkr.ecr.eu-west-1.amazonaws.com/nginx".
	RepositoryURI string

	// UpstreamImage is the public image to mirror from.
	UpstreamImage string

	// TagGlobs select the upstream tags to mirror.
	TagGlobs []TagGlob

	// IgnoreGlobs remove tags from the selection after TagGlobs applied.
	IgnoreGlobs []TagGlob
}

// CopyTask is one unit of copy work: a single tag moved from the
// upstream image to the destination repository.
type CopyTask struct {
	Source      ImageReference
	Destination ImageReference
}

func (t CopyTask) String() string {
	return fmt.Sprintf("%s -> %s", t.Source, t.Destination)
}

// Outcome classifies the result of one tag within a sync pass.
type Outcome string

const (
	OutcomeCopied         Outcome = "copied"
	OutcomeAlreadyPresent Outcome = "already-present"
	OutcomeFailed         Outcome = "failed"
)

// Result records the outcome for one (repository, tag) pair, or for a
// whole repository when the failure happened before any copy attempt
// (in which case Tag is empty).
type Result struct {
	Repository string
	Tag        string
	Outcome    Outcome
	Reason     string
}

// Report aggregates every Result of one sync pass.
type Report struct {
	Results []Result
}

// Copied returns the number of tags copied during the pass.
func (r *Report) Copied() int { return r.count(OutcomeCopied) }

// AlreadyPresent returns the number of tags that needed no copy.
func (r *Report) AlreadyPresent() int { return r.count(OutcomeAlreadyPresent) }

// FailedCount returns the number of scoped failures during the pass.
func (r *Report) FailedCount() int { return r.count(OutcomeFailed) }

// Failed returns true if any scoped failure occurred.
func (r *Report) Failed() bool { return r.FailedCount() > 0 }

func (r *Report) count(o Outcome) int {
	n := 0
	for _, res := range r.Results {
		if res.Outcome == o {
			n++
		}
	}
	return n
}

// TagLister lists the tags available for an upstream image.
type TagLister interface {
	ListTags(ctx context.Context, image string) ([]string, error)
}

// DestinationLister lists the tags already present in a destination
// repository. The returned set is the sole source of truth for what is
// already mirrored.
type DestinationLister interface {
	ListImageTags(ctx context.Context, repositoryName string) (container.Set[string], error)
}

// Copier transfers a single tag between two registries.
type Copier interface {
	Copy(ctx context.Context, task CopyTask) error
}
