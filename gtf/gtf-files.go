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
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/exascience/pargo/pipeline"

	"github.com/screcounter/refprep/internal"
	"github.com/screcounter/refprep/utils"
)

// A Result is the outcome of rewriting a GTF file.
type Result struct {
	// SeqNames holds the names of all sequences referenced by at
	// least one kept record.
	SeqNames utils.NameSet
	Stats    *Statistics
}

/*
Rewrite filters the GTF records read from input and writes the kept
records to output.

Comment lines are copied unchanged. Blank lines are skipped. All
other lines are parsed, their gene_id normalized, and then evaluated
by the filter. Kept records are written with their attributes in
canonical form.

The input is processed as a single forward scan in a pargo pipeline.
If verbose is true, progress is logged every
internal.ProgressInterval lines.
*/
func Rewrite(input io.Reader, output io.Writer, filter *Filter, verbose bool) (*Result, error) {
	result := &Result{
		SeqNames: make(utils.NameSet),
		Stats:    NewStatistics(),
	}
	var p pipeline.Pipeline
	p.Source(internal.NewLineSource(input))
	lineNo := 0
	p.Add(pipeline.Ord(pipeline.Receive(func(_ int, data interface{}) interface{} {
		lines := data.([]string)
		kept := make([]string, 0, len(lines))
		before := lineNo
		var buf []byte
		for _, line := range lines {
			lineNo++
			if IsComment(line) {
				kept = append(kept, line)
				continue
			}
			text := internal.TrimLineTerminator(line)
			if strings.TrimSpace(text) == "" {
				continue
			}
			record, err := ParseRecord(text)
			if err != nil {
				p.SetErr(fmt.Errorf("%w in line %v", err, lineNo))
				return kept
			}
			record.Attributes.NormalizeGeneID()
			outcome := filter.Evaluate(record.Attributes)
			result.Stats.Add(outcome)
			if outcome.Verdict != Kept {
				continue
			}
			result.SeqNames.Add(record.SeqName())
			buf = append(record.Append(buf[:0]), '\n')
			kept = append(kept, string(buf))
		}
		if verbose && internal.CrossedInterval(before, lineNo) {
			log.Printf("  Processed %v lines...", lineNo-lineNo%internal.ProgressInterval)
		}
		return kept
	})))
	p.Add(pipeline.StrictOrd(pipeline.Receive(func(_ int, data interface{}) interface{} {
		for _, line := range data.([]string) {
			if _, err := io.WriteString(output, line); err != nil {
				p.SetErr(fmt.Errorf("%w: %v", internal.ErrWrite, err))
				return nil
			}
		}
		return nil
	})))
	if err := internal.RunPipeline(&p); err != nil {
		return nil, err
	}
	return result, nil
}

// RewriteFile is like Rewrite, but reads from and writes to the named
// files. Input files with a .gz suffix are decompressed. The output
// is always plain text.
//
// On error, the output file is incomplete and must be discarded.
func RewriteFile(inputName, outputName string, filter *Filter, verbose bool) (result *Result, err error) {
	input, err := internal.Open(inputName)
	if err != nil {
		return nil, err
	}
	defer func() {
		if nerr := input.Close(); err == nil {
			err = nerr
		}
	}()
	output, err := internal.Create(outputName, false)
	if err != nil {
		return nil, err
	}
	defer func() {
		if nerr := output.Close(); err == nil {
			err = nerr
		}
	}()
	return Rewrite(input, output, filter, verbose)
}
