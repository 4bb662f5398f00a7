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

package mirror_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/onfido/ecr-mirror/internal/syncer"
	"github.com/onfido/ecr-mirror/mirror"
	"github.com/onfido/ecr-mirror/mirror/mirrorfakes"
	"github.com/onfido/ecr-mirror/mirror/options"
)

func newFake() *mirrorfakes.FakeMirrorImplementation {
	fake := &mirrorfakes.FakeMirrorImplementation{}
	fake.RunSyncReturns(&syncer.Report{})
	return fake
}

func TestRunSync(t *testing.T) {
	sut := mirror.New()
	testErr := errors.New("synthetic error")
	for _, tc := range []struct {
		msg       string
		shouldErr bool
		prepare   func(*mirrorfakes.FakeMirrorImplementation)
	}{
		{
			msg:     "no errors",
			prepare: func(_ *mirrorfakes.FakeMirrorImplementation) {},
		},
		{
			msg:       "ValidateOptions fails",
			shouldErr: true,
			prepare: func(f *mirrorfakes.FakeMirrorImplementation) {
				f.ValidateOptionsReturns(testErr)
			},
		},
		{
			msg:       "CreateRegistryClient fails",
			shouldErr: true,
			prepare: func(f *mirrorfakes.FakeMirrorImplementation) {
				f.CreateRegistryClientReturns(nil, testErr)
			},
		},
		{
			msg:       "GetMirrorSpecs fails",
			shouldErr: true,
			prepare: func(f *mirrorfakes.FakeMirrorImplementation) {
				f.GetMirrorSpecsReturns(nil, testErr)
			},
		},
		{
			msg:       "MakeSyncer fails",
			shouldErr: true,
			prepare: func(f *mirrorfakes.FakeMirrorImplementation) {
				f.MakeSyncerReturns(nil, testErr)
			},
		},
		{
			msg:       "report carries failures",
			shouldErr: true,
			prepare: func(f *mirrorfakes.FakeMirrorImplementation) {
				f.RunSyncReturns(&syncer.Report{Results: []syncer.Result{
					{Repository: "nginx", Outcome: syncer.OutcomeFailed, Reason: "boom"},
				}})
			},
		},
	} {
		fake := newFake()
		tc.prepare(fake)
		sut.SetImplementation(fake)

		err := sut.RunSync(context.Background(), options.Default())
		if tc.shouldErr {
			require.Error(t, err, tc.msg)
		} else {
			require.NoError(t, err, tc.msg)
			require.Equal(t, 1, fake.PrintReportCallCount(), tc.msg)
		}
	}
}

func TestListRepositories(t *testing.T) {
	sut := mirror.New()
	fake := newFake()
	fake.GetMirrorSpecsReturns([]syncer.MirrorSpec{{RepositoryName: "nginx"}}, nil)
	sut.SetImplementation(fake)

	require.NoError(t, sut.ListRepositories(context.Background(), options.Default()))
	require.Equal(t, 1, fake.PrintSpecsCallCount())
	// Listing never runs the engine.
	require.Equal(t, 0, fake.RunSyncCallCount())
}

func TestCopyImage(t *testing.T) {
	sut := mirror.New()
	testErr := errors.New("synthetic error")

	fake := newFake()
	fake.MakeAdHocSpecReturns(syncer.MirrorSpec{}, testErr)
	sut.SetImplementation(fake)
	require.Error(t, sut.CopyImage(
		context.Background(), options.Default(), "nginx", "dest/nginx",
	))

	fake = newFake()
	sut.SetImplementation(fake)
	require.NoError(t, sut.CopyImage(
		context.Background(), options.Default(), "nginx:1.16+", "dest/nginx",
	))
	source, destination := fake.MakeAdHocSpecArgsForCall(0)
	require.Equal(t, "nginx:1.16+", source)
	require.Equal(t, "dest/nginx", destination)
	require.Equal(t, 1, fake.RunSyncCallCount())
}
