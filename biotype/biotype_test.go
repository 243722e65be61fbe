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

package biotype

import (
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	table := NewTable()

	policy, err := table.Lookup("Danio rerio")
	require.NoError(t, err)
	assert.Equal(t, "Danio rerio", policy.Organism())
	assert.Equal(t, "fish", policy.Group())
	assert.True(t, policy.Allows("protein_coding"))
	assert.True(t, policy.Allows("PROTEIN_CODING"))
	assert.True(t, policy.Allows("IG_gene"))
	assert.False(t, policy.Allows("TEC"))
	assert.False(t, policy.Allows(""))

	policy, err = table.Lookup("Saccharomyces cerevisiae")
	require.NoError(t, err)
	assert.Equal(t, []string{"protein_coding", "ncRNA"}, policy.Labels())
	assert.True(t, policy.Allows("ncrna"))
	assert.False(t, policy.Allows("lncRNA"))
}

func TestLookupUnknown(t *testing.T) {
	table := NewTable()
	for _, organism := range []string{"", "danio rerio", "Homo sapiens", "Danio rerio "} {
		_, err := table.Lookup(organism)
		assert.True(t, errors.Is(err, ErrUnknownOrganism), organism)
	}
}

func TestOrganisms(t *testing.T) {
	organisms := NewTable().Organisms()
	assert.Len(t, organisms, 24)
	assert.True(t, sort.StringsAreSorted(organisms))
	assert.Contains(t, organisms, "Canis lupus familiaris")
	assert.Contains(t, organisms, "Zea mays")
}

func TestPoliciesAreImmutable(t *testing.T) {
	table := NewTable()
	policy, err := table.Lookup("Gallus gallus")
	require.NoError(t, err)
	labels := policy.Labels()
	labels[0] = "TEC"
	assert.False(t, policy.Allows("TEC"))
	assert.Equal(t, "protein_coding", policy.Labels()[0])

	organisms := table.Organisms()
	organisms[0] = "Homo sapiens"
	_, err = table.Lookup("Homo sapiens")
	assert.Error(t, err)
}
