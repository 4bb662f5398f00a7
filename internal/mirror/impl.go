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

package mirror

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/onfido/ecr-mirror/internal/ecr"
	"github.com/onfido/ecr-mirror/internal/skopeo"
	"github.com/onfido/ecr-mirror/internal/syncer"
	"github.com/onfido/ecr-mirror/mirror/options"
)

// DefaultMirrorImplementation is the production wiring behind the
// mirror facade.
type DefaultMirrorImplementation struct{}

// ValidateOptions checks an options set.
func (di *DefaultMirrorImplementation) ValidateOptions(opts *options.Options) error {
	return opts.Validate()
}

// CreateRegistryClient builds the ECR client, assuming the configured
// role when one is set.
func (di *DefaultMirrorImplementation) CreateRegistryClient(
	ctx context.Context, opts *options.Options,
) (*ecr.Client, error) {
	return ecr.NewClient(
		ctx, opts.RegistryID, opts.RoleARN, opts.MaxConcurrentRepositories,
	)
}

// GetMirrorSpecs discovers the repositories annotated for mirroring.
func (di *DefaultMirrorImplementation) GetMirrorSpecs(
	ctx context.Context, client *ecr.Client,
) ([]syncer.MirrorSpec, error) {
	specs, err := client.ListMirrorSpecs(ctx)
	if err != nil {
		return nil, err
	}
	logrus.Infof("found %d repositories configured for mirroring", len(specs))
	return specs, nil
}

// MakeAdHocSpec builds the single mirror spec behind the `copy`
// command. The source is an image name with a tag glob
// ("nginx:1.16+"), the destination a full repository URI.
func (di *DefaultMirrorImplementation) MakeAdHocSpec(
	source, destination string,
) (syncer.MirrorSpec, error) {
	srcRef, err := syncer.ParseImageReference(source)
	if err != nil {
		return syncer.MirrorSpec{}, err
	}
	if srcRef.Tag == "" {
		return syncer.MirrorSpec{}, errors.Errorf(
			"source %q needs a tag or tag glob", source,
		)
	}
	glob, err := syncer.CompileGlob(srcRef.Tag)
	if err != nil {
		return syncer.MirrorSpec{}, err
	}

	dstRef, err := syncer.ParseImageReference(destination)
	if err != nil {
		return syncer.MirrorSpec{}, errors.Wrap(err, "parsing destination repository")
	}

	return syncer.MirrorSpec{
		// The destination repository name is the URI path, which is
		// what the ECR tag listing wants.
		RepositoryName: dstRef.Repository,
		RepositoryURI:  destination,
		UpstreamImage:  srcRef.WithTag("").String(),
		TagGlobs:       []syncer.TagGlob{glob},
	}, nil
}

// MakeSyncer assembles the sync engine: skopeo for upstream listing
// and copying (authenticated against the destination), ECR for the
// destination tag listing.
func (di *DefaultMirrorImplementation) MakeSyncer(
	ctx context.Context, opts *options.Options, client *ecr.Client,
) (*syncer.Syncer, error) {
	creds, err := client.AuthorizationToken(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "logging in to the destination registry")
	}

	sk := skopeo.New(opts.OverrideOS, opts.OverrideArch, creds, opts.RequestsPerSecond)
	return syncer.New(sk, client, sk, syncer.Options{
		MaxConcurrentRepositories: opts.MaxConcurrentRepositories,
		MaxConcurrentCopies:       int64(opts.MaxConcurrentCopies),
	}), nil
}

// RunSync executes the pass.
func (di *DefaultMirrorImplementation) RunSync(
	ctx context.Context, s *syncer.Syncer, specs []syncer.MirrorSpec,
) *syncer.Report {
	return s.Run(ctx, specs)
}

// PrintSpecs logs the repositories a sync pass would act on.
func (di *DefaultMirrorImplementation) PrintSpecs(specs []syncer.MirrorSpec) {
	logrus.Infof("repositories to mirror: %d", len(specs))
	for _, spec := range specs {
		globs := make([]string, len(spec.TagGlobs))
		for i, g := range spec.TagGlobs {
			globs[i] = g.String()
		}
		logrus.Infof("- upstream: %s", spec.UpstreamImage)
		logrus.Infof("  mirror: %s", spec.RepositoryURI)
		logrus.Infof("  tags: %s", strings.Join(globs, ", "))
		if len(spec.IgnoreGlobs) > 0 {
			ignored := make([]string, len(spec.IgnoreGlobs))
			for i, g := range spec.IgnoreGlobs {
				ignored[i] = g.String()
			}
			logrus.Infof("  ignoring: %s", strings.Join(ignored, ", "))
		}
	}
}

// PrintReport logs the aggregated outcome of a pass.
func (di *DefaultMirrorImplementation) PrintReport(report *syncer.Report) {
	for _, res := range report.Results {
		if res.Outcome != syncer.OutcomeFailed {
			continue
		}
		if res.Tag == "" {
			logrus.Errorf("repository %s failed: %s", res.Repository, res.Reason)
			continue
		}
		logrus.Errorf("tag %s:%s failed: %s", res.Repository, res.Tag, res.Reason)
	}
	logrus.Infof(
		"sync pass complete: %d copied, %d already present, %d failed",
		report.Copied(), report.AlreadyPresent(), report.FailedCount(),
	)
}
