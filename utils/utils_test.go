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
	"strings"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func TestNameSet(t *testing.T) {
	set := make(NameSet)
	set.Add("chr2")
	set.Add("chr1")
	set.Add("chr2")
	assert.True(t, set.Contains("chr1"))
	assert.False(t, set.Contains("chrUn"))
	assert.Equal(t, []string{"chr1", "chr2"}, set.Sorted())
	assert.Empty(t, make(NameSet).Sorted())
}

func TestNameSetCopiesNames(t *testing.T) {
	line := strings.Repeat("chr1\tensembl\tgene\t", 2)
	set := make(NameSet)
	set.Add(line[:4])
	set.Add(line[18:22])
	assert.Equal(t, []string{"chr1"}, set.Sorted())
	for name := range set {
		assert.NotEqual(t, unsafe.StringData(line), unsafe.StringData(name))
	}
}
