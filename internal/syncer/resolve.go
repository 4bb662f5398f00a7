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
	"github.com/onfido/ecr-mirror/internal/container"
)

// ResolveTags filters the full upstream tag listing down to the tags a
// mirror spec selects. A tag is selected when at least one of the tag
// globs matches it and no ignore glob matches it. When a spec carries
// only ignore globs, every tag that is not ignored is selected.
func ResolveTags(allTags []string, globs, ignoreGlobs []TagGlob) container.Set[string] {
	selected := container.NewSet[string]()
	for _, tag := range allTags {
		if matchesAny(ignoreGlobs, tag) {
			continue
		}
		if matchesAny(globs, tag) || (len(globs) == 0 && len(ignoreGlobs) > 0) {
			selected.Insert(tag)
		}
	}
	return selected
}

func matchesAny(globs []TagGlob, tag string) bool {
	for _, g := range globs {
		if g.Matches(tag) {
			return true
		}
	}
	return false
}
