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
	"log"
	"sort"
)

// Statistics summarizes the outcomes of filtering a GTF file.
type Statistics struct {
	Total   int
	Kept    int
	Biotype int
	Tag     int

	KeptBiotypes     map[string]int
	FilteredBiotypes map[string]int
}

// NewStatistics returns empty statistics.
func NewStatistics() *Statistics {
	return &Statistics{
		KeptBiotypes:     make(map[string]int),
		FilteredBiotypes: make(map[string]int),
	}
}

// Add folds the outcome for one record into the statistics.
func (s *Statistics) Add(outcome Outcome) {
	s.Total++
	for _, label := range outcome.KeptLabels {
		s.KeptBiotypes[label]++
	}
	switch outcome.Verdict {
	case Kept:
		s.Kept++
	case DroppedByBiotype:
		s.Biotype++
		s.FilteredBiotypes[outcome.FilteredLabel]++
	case DroppedByTag:
		s.Tag++
	}
}

// A LabelCount is one entry of a biotype frequency table.
type LabelCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// SortedCounts returns the entries of a frequency table by descending
// count. Equal counts are ordered by label.
func SortedCounts(table map[string]int) []LabelCount {
	counts := make([]LabelCount, 0, len(table))
	for label, count := range table {
		counts = append(counts, LabelCount{label, count})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Label < counts[j].Label
	})
	return counts
}

// Log writes the statistics to the standard logger.
func (s *Statistics) Log() {
	log.Printf("Total records in GTF: %v", s.Total)
	log.Printf("Filtered %v records by biotype", s.Biotype)
	log.Printf("Filtered %v records by tag", s.Tag)
	log.Println("-- Count of biotypes filtered --")
	for _, c := range SortedCounts(s.FilteredBiotypes) {
		log.Printf("%v: %v", c.Label, c.Count)
	}
	log.Println("-- Count of biotypes kept --")
	for _, c := range SortedCounts(s.KeptBiotypes) {
		log.Printf("%v: %v", c.Label, c.Count)
	}
	log.Println("----------------------------")
}
