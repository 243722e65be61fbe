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

package gtf

import (
	"github.com/screcounter/refprep/biotype"
)

// BiotypeKeys are the attribute keys that carry a biotype label, in
// the order in which they are checked.
var BiotypeKeys = []string{"gene_biotype", "gene_type", "transcript_type", "transcript_biotype"}

// TagKey is the attribute key checked against the excluded tags.
const TagKey = "tag"

// DefaultExcludeTags are the tags excluded when none are specified.
var DefaultExcludeTags = []string{"readthrough_transcript", "PAR"}

// A Verdict is the decision of a Filter for one record.
type Verdict int

const (
	// Kept records are written to the output.
	Kept Verdict = iota
	// DroppedByBiotype records carry a biotype label that is not allowed.
	DroppedByBiotype
	// DroppedByTag records carry an excluded tag.
	DroppedByTag
)

func (v Verdict) String() string {
	switch v {
	case Kept:
		return "kept"
	case DroppedByBiotype:
		return "biotype"
	case DroppedByTag:
		return "tag"
	default:
		return "unknown"
	}
}

// An Outcome records the verdict for one record together with the
// biotype labels that were looked at.
//
// KeptLabels lists every allowed label seen before the verdict was
// reached, so it can be non-empty for dropped records as well.
// FilteredLabel is only set for DroppedByBiotype.
type Outcome struct {
	Verdict       Verdict
	KeptLabels    []string
	FilteredLabel string
}

// A Filter decides which GTF records to keep for one organism.
type Filter struct {
	policy      *biotype.Policy
	excludeTags []string
}

// NewFilter returns a Filter for the given biotype policy and list of
// excluded tags.
func NewFilter(policy *biotype.Policy, excludeTags []string) *Filter {
	return &Filter{
		policy:      policy,
		excludeTags: append([]string(nil), excludeTags...),
	}
}

func (f *Filter) excluded(tag string) bool {
	for _, t := range f.excludeTags {
		if t == tag {
			return true
		}
	}
	return false
}

/*
Evaluate decides whether a record with the given attributes is kept.

The biotype keys are checked first, in the order of BiotypeKeys.
Missing or empty keys are skipped. The first label that the policy
does not allow drops the record. Allowed labels are collected and the
remaining keys are still checked. Only records that pass all biotype
checks are tested against the excluded tags.
*/
func (f *Filter) Evaluate(attrs AttributeMap) (outcome Outcome) {
	for _, key := range BiotypeKeys {
		label, ok := attrs.Get(key)
		if !ok || label == "" {
			continue
		}
		if !f.policy.Allows(label) {
			outcome.Verdict = DroppedByBiotype
			outcome.FilteredLabel = label
			return outcome
		}
		outcome.KeptLabels = append(outcome.KeptLabels, label)
	}
	if tag, ok := attrs.Get(TagKey); ok && tag != "" && f.excluded(tag) {
		outcome.Verdict = DroppedByTag
	}
	return outcome
}
