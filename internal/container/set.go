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

package container

// Set is a basic set-like data structure.
type Set[K comparable] map[K]struct{}

// NewSet constructs a Set with the specified items.
func NewSet[K comparable](items ...K) Set[K] {
	s := make(Set[K], len(items))
	for _, item := range items {
		s[item] = struct{}{}
	}
	return s
}

// Insert inserts an item into the set.
func (s Set[K]) Insert(item K) {
	s[item] = struct{}{}
}

// Has returns true if the item is a member of the set.
func (s Set[K]) Has(item K) bool {
	_, ok := s[item]
	return ok
}

// Len returns the number of members.
func (s Set[K]) Len() int {
	return len(s)
}

// Minus returns a new set, by subtracting everything in b from a.
func (a Set[K]) Minus(b Set[K]) Set[K] {
	c := make(Set[K], len(a))
	for k := range a {
		if _, ok := b[k]; !ok {
			c[k] = struct{}{}
		}
	}
	return c
}

// Union takes two sets and returns their union in a new set.
func (a Set[K]) Union(b Set[K]) Set[K] {
	c := make(Set[K], len(a)+len(b))
	for k := range a {
		c[k] = struct{}{}
	}
	for k := range b {
		c[k] = struct{}{}
	}
	return c
}

// Items returns the members of the set in unspecified order.
func (s Set[K]) Items() []K {
	items := make([]K, 0, len(s))
	for k := range s {
		items = append(items, k)
	}
	return items
}
