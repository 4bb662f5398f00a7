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
	"fmt"
	"path"
	"strings"
)

// TagGlob is the compiled form of one tag glob pattern. Matching is
// whole-string, case-sensitive shell glob: `*` matches any run of
// characters, `?` exactly one, `[...]` one character from a class.
//
// ECR resource tag values cannot contain `*`, so stored patterns use
// `+` in its place. CompileGlob translates every `+` back to `*`
// before compiling. The translation is total: a tag containing a
// literal `+` cannot be matched except through a wildcard.
type TagGlob struct {
	pattern string
}

// CompileGlob translates and validates a raw tag glob taken from
// repository metadata. An unterminated bracket class or trailing
// escape yields an error wrapping path.ErrBadPattern.
func CompileGlob(raw string) (TagGlob, error) {
	if raw == "" {
		return TagGlob{}, fmt.Errorf("empty tag glob")
	}
	pattern := strings.ReplaceAll(raw, "+", "*")
	if err := validateGlob(pattern); err != nil {
		return TagGlob{}, fmt.Errorf("compiling tag glob %q: %w", raw, err)
	}
	return TagGlob{pattern: pattern}, nil
}

// MustCompileGlob is CompileGlob for patterns known to be valid.
func MustCompileGlob(raw string) TagGlob {
	g, err := CompileGlob(raw)
	if err != nil {
		panic(err)
	}
	return g
}

// Matches reports whether the whole candidate tag matches the glob.
func (g TagGlob) Matches(tag string) bool {
	ok, err := path.Match(g.pattern, tag)
	return err == nil && ok
}

func (g TagGlob) String() string {
	return g.pattern
}

// validateGlob rejects up front the patterns path.Match would reject
// lazily at match time, so that a malformed glob fails the spec it
// belongs to instead of silently matching nothing.
func validateGlob(pattern string) error {
	for i := 0; i < len(pattern); i++ {
		switch pattern[i] {
		case '\\':
			i++
			if i >= len(pattern) {
				return path.ErrBadPattern
			}
		case '[':
			i++
			if i < len(pattern) && pattern[i] == '^' {
				i++
			}
			// Walk the character ranges the way path.Match does: a
			// class must contain at least one range, and neither end
			// of a range may be a bare ']' or '-'.
			nrange := 0
			closed := false
			for i < len(pattern) {
				if pattern[i] == ']' && nrange > 0 {
					closed = true
					break
				}
				var err error
				if i, err = classChar(pattern, i); err != nil {
					return err
				}
				if i < len(pattern) && pattern[i] == '-' {
					i++
					if i, err = classChar(pattern, i); err != nil {
						return err
					}
				}
				nrange++
			}
			if !closed {
				return path.ErrBadPattern
			}
		}
	}
	return nil
}

// classChar consumes one (possibly escaped) character range endpoint
// starting at i and returns the next index.
func classChar(pattern string, i int) (int, error) {
	if i >= len(pattern) || pattern[i] == ']' || pattern[i] == '-' {
		return i, path.ErrBadPattern
	}
	if pattern[i] == '\\' {
		i++
		if i >= len(pattern) {
			return i, path.ErrBadPattern
		}
	}
	return i + 1, nil
}
