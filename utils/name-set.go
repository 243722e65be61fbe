// refprep: reference genome preparation for single-cell pipelines.
// Copyright (c) 2026 the refprep authors.

// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version, and Additional Terms
// (see below).

// This program is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Affero General Public License for more details.

// You should have received a copy of the GNU Affero General Public
// License and Additional Terms along with this program. If not, see
// <https://github.com/ExaScience/elprep/blob/master/LICENSE.txt>.

package utils

import (
	"sort"
	"strings"
)

// A NameSet is a set of sequence names.
type NameSet map[string]struct{}

// Add adds a name to the set. The name is copied on first insertion,
// so it may be a substring of a much longer line.
func (set NameSet) Add(name string) {
	if _, ok := set[name]; !ok {
		set[strings.Clone(name)] = struct{}{}
	}
}

// Contains reports whether a name is in the set.
func (set NameSet) Contains(name string) bool {
	_, ok := set[name]
	return ok
}

// Sorted returns the names in the set in lexicographic order.
func (set NameSet) Sorted() []string {
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
