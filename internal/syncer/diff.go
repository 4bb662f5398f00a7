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
	"sort"

	"github.com/onfido/ecr-mirror/internal/container"
)

// Diff returns the tags that must be copied to bring the destination
// in sync: every resolved upstream tag not already present at the
// destination, sorted for stable scheduling and logging. Mirroring is
// additive only; tags present only at the destination are never
// touched.
func Diff(resolved, destination container.Set[string]) []string {
	missing := resolved.Minus(destination).Items()
	sort.Strings(missing)
	return missing
}
