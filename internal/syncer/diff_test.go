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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/onfido/ecr-mirror/internal/container"
	"github.com/onfido/ecr-mirror/internal/syncer"
)

func TestResolveTags(t *testing.T) {
	upstream := []string{"1.16", "1.16.1", "1.17", "1.17.2", "1.18", "latest"}
	globs := []syncer.TagGlob{
		syncer.MustCompileGlob("1.16+"),
		syncer.MustCompileGlob("1.17+"),
	}

	resolved := syncer.ResolveTags(upstream, globs, nil)
	require.Equal(
		t,
		container.NewSet("1.16", "1.16.1", "1.17", "1.17.2"),
		resolved,
	)
}

func TestResolveTagsIgnoreOnly(t *testing.T) {
	upstream := []string{"1.16", "1.17-rc1", "latest"}
	ignore := []syncer.TagGlob{syncer.MustCompileGlob("+-rc+")}

	// Only ignore globs configured: keep everything not ignored.
	resolved := syncer.ResolveTags(upstream, nil, ignore)
	require.Equal(t, container.NewSet("1.16", "latest"), resolved)

	// Ignore globs always win over tag globs.
	resolved = syncer.ResolveTags(
		upstream,
		[]syncer.TagGlob{syncer.MustCompileGlob("1.17+")},
		ignore,
	)
	require.Equal(t, 0, resolved.Len())
}

func TestDiff(t *testing.T) {
	resolved := container.NewSet("1.16", "1.16.1", "1.17", "1.17.2")
	destination := container.NewSet("1.16", "0.9-unmanaged")

	missing := syncer.Diff(resolved, destination)
	require.Equal(t, []string{"1.16.1", "1.17", "1.17.2"}, missing)

	// Idempotent with identical inputs.
	require.Equal(t, missing, syncer.Diff(resolved, destination))

	// After a successful sync the destination covers everything.
	require.Empty(t, syncer.Diff(resolved, resolved.Union(destination)))

	// Additive only: destination-extra tags are never proposed.
	for _, tag := range missing {
		require.NotEqual(t, "0.9-unmanaged", tag)
	}
}
