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

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"github.com/onfido/ecr-mirror/internal/ecr"
	impl "github.com/onfido/ecr-mirror/internal/mirror"
	"github.com/onfido/ecr-mirror/internal/syncer"
	"github.com/onfido/ecr-mirror/mirror/options"
)

// Mirror is the entry point for the three modes of operation: full
// sync, listing the mirror configuration, and ad-hoc single-image
// copies.
type Mirror struct {
	impl mirrorImplementation
}

func New() *Mirror {
	return &Mirror{
		impl: &impl.DefaultMirrorImplementation{},
	}
}

// SetImplementation swaps the implementation, used by tests.
func (m *Mirror) SetImplementation(mi mirrorImplementation) {
	m.impl = mi
}

//counterfeiter:generate . mirrorImplementation

// mirrorImplementation handles all the functionality behind the
// mirror's modes of operation.
type mirrorImplementation interface {
	ValidateOptions(*options.Options) error
	CreateRegistryClient(context.Context, *options.Options) (*ecr.Client, error)
	GetMirrorSpecs(context.Context, *ecr.Client) ([]syncer.MirrorSpec, error)
	MakeAdHocSpec(source, destination string) (syncer.MirrorSpec, error)
	MakeSyncer(context.Context, *options.Options, *ecr.Client) (*syncer.Syncer, error)
	RunSync(context.Context, *syncer.Syncer, []syncer.MirrorSpec) *syncer.Report
	PrintSpecs([]syncer.MirrorSpec)
	PrintReport(*syncer.Report)
}

// RunSync executes one full sync pass: discover the annotated
// repositories, diff them against upstream and copy what is missing.
func (m *Mirror) RunSync(ctx context.Context, opts *options.Options) error {
	if err := m.impl.ValidateOptions(opts); err != nil {
		return errors.Wrap(err, "validating options")
	}

	client, err := m.impl.CreateRegistryClient(ctx, opts)
	if err != nil {
		return errors.Wrap(err, "creating registry client")
	}

	specs, err := m.impl.GetMirrorSpecs(ctx, client)
	if err != nil {
		return errors.Wrap(err, "discovering mirrored repositories")
	}

	s, err := m.impl.MakeSyncer(ctx, opts, client)
	if err != nil {
		return errors.Wrap(err, "creating syncer")
	}

	report := m.impl.RunSync(ctx, s, specs)
	m.impl.PrintReport(report)
	if report.Failed() {
		return fmt.Errorf("sync pass finished with %d failures", report.FailedCount())
	}
	return nil
}

// ListRepositories prints the mirror specs that a sync pass would act
// on, without copying anything.
func (m *Mirror) ListRepositories(ctx context.Context, opts *options.Options) error {
	if err := m.impl.ValidateOptions(opts); err != nil {
		return errors.Wrap(err, "validating options")
	}

	client, err := m.impl.CreateRegistryClient(ctx, opts)
	if err != nil {
		return errors.Wrap(err, "creating registry client")
	}

	specs, err := m.impl.GetMirrorSpecs(ctx, client)
	if err != nil {
		return errors.Wrap(err, "discovering mirrored repositories")
	}

	m.impl.PrintSpecs(specs)
	return nil
}

// CopyImage diffs and copies a single source pattern (image:tag-glob)
// into one explicit destination repository, bypassing the catalog.
func (m *Mirror) CopyImage(
	ctx context.Context, opts *options.Options, source, destination string,
) error {
	if err := m.impl.ValidateOptions(opts); err != nil {
		return errors.Wrap(err, "validating options")
	}

	client, err := m.impl.CreateRegistryClient(ctx, opts)
	if err != nil {
		return errors.Wrap(err, "creating registry client")
	}

	spec, err := m.impl.MakeAdHocSpec(source, destination)
	if err != nil {
		return errors.Wrap(err, "parsing copy source")
	}

	s, err := m.impl.MakeSyncer(ctx, opts, client)
	if err != nil {
		return errors.Wrap(err, "creating syncer")
	}

	report := m.impl.RunSync(ctx, s, []syncer.MirrorSpec{spec})
	m.impl.PrintReport(report)
	if report.Failed() {
		return fmt.Errorf("copy finished with %d failures", report.FailedCount())
	}
	return nil
}
