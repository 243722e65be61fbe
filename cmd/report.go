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

package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/screcounter/refprep/fasta"
	"github.com/screcounter/refprep/gtf"
	"github.com/screcounter/refprep/internal"
	"github.com/screcounter/refprep/utils"
)

type (
	annotationReport struct {
		Input            string           `json:"input"`
		Output           string           `json:"output"`
		Total            int              `json:"total"`
		Kept             int              `json:"kept"`
		Biotype          int              `json:"filtered_by_biotype"`
		Tag              int              `json:"filtered_by_tag"`
		KeptBiotypes     []gtf.LabelCount `json:"kept_biotypes"`
		FilteredBiotypes []gtf.LabelCount `json:"filtered_biotypes"`
		SeqNames         []string         `json:"sequence_names"`
	}

	sequenceReport struct {
		Input   string   `json:"input"`
		Output  string   `json:"output"`
		Lines   int      `json:"lines"`
		Kept    []string `json:"kept"`
		Dropped []string `json:"dropped"`
	}

	// runReport is written by format --stats.
	runReport struct {
		RunID      uuid.UUID        `json:"run_id"`
		Program    string           `json:"program"`
		Version    string           `json:"version"`
		Organism   string           `json:"organism"`
		Group      string           `json:"biotype_group"`
		Annotation annotationReport `json:"annotation"`
		Sequence   *sequenceReport  `json:"sequence,omitempty"`
	}
)

func newRunReport(runID uuid.UUID, organism, group string) *runReport {
	return &runReport{
		RunID:    runID,
		Program:  utils.ProgramName,
		Version:  utils.ProgramVersion,
		Organism: organism,
		Group:    group,
	}
}

func (r *runReport) setAnnotation(input, output string, result *gtf.Result) {
	r.Annotation = annotationReport{
		Input:            input,
		Output:           output,
		Total:            result.Stats.Total,
		Kept:             result.Stats.Kept,
		Biotype:          result.Stats.Biotype,
		Tag:              result.Stats.Tag,
		KeptBiotypes:     gtf.SortedCounts(result.Stats.KeptBiotypes),
		FilteredBiotypes: gtf.SortedCounts(result.Stats.FilteredBiotypes),
		SeqNames:         result.SeqNames.Sorted(),
	}
}

func (r *runReport) setSequence(input, output string, result *fasta.Result) {
	r.Sequence = &sequenceReport{
		Input:   input,
		Output:  output,
		Lines:   result.Lines,
		Kept:    result.Kept,
		Dropped: result.Dropped,
	}
}

func (r *runReport) write(filename string) (err error) {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("%w: %v", internal.ErrWrite, err)
	}
	defer func() {
		if nerr := f.Close(); err == nil && nerr != nil {
			err = fmt.Errorf("%w: %v", internal.ErrWrite, nerr)
		}
	}()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("%w: %v", internal.ErrWrite, err)
	}
	return nil
}
