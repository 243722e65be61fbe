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

// Package fasta filters FASTA files by sequence name.
//
// Sequences are never decoded: header and sequence lines are copied
// verbatim, so files of any size can be filtered in a single forward
// scan.
package fasta

import (
	"fmt"
	"io"
	"log"
	"strings"
	"unicode"

	"github.com/exascience/pargo/pipeline"

	"github.com/screcounter/refprep/internal"
)

// A NameSet is a set of sequence names to retain.
type NameSet interface {
	Contains(name string) bool
}

// A Result summarizes a run of Filter.
type Result struct {
	Lines   int
	Kept    []string
	Dropped []string
}

// IsHeader reports whether a line starts a new FASTA record.
func IsHeader(line string) bool {
	return len(line) > 0 && line[0] == '>'
}

// SeqNameFromHeader returns the first whitespace-delimited token of a
// header line, without the leading '>'.
func SeqNameFromHeader(line string) string {
	name := strings.TrimLeftFunc(strings.TrimPrefix(line, ">"), unicode.IsSpace)
	if i := strings.IndexFunc(name, unicode.IsSpace); i >= 0 {
		name = name[:i]
	}
	return name
}

/*
Filter copies the FASTA records read from input whose sequence name
is in names to output, and skips all other records.

A record consists of a header line and all lines up to the next
header line. Lines before the first header are skipped. Each skipped
record is reported on the standard logger. If verbose is true,
progress is logged every internal.ProgressInterval lines.
*/
func Filter(input io.Reader, output io.Writer, names NameSet, verbose bool) (*Result, error) {
	result := new(Result)
	write := false
	var p pipeline.Pipeline
	p.Source(internal.NewLineSource(input))
	p.Add(pipeline.Ord(pipeline.Receive(func(_ int, data interface{}) interface{} {
		lines := data.([]string)
		kept := make([]string, 0, len(lines))
		before := result.Lines
		for _, line := range lines {
			result.Lines++
			if IsHeader(line) {
				name := SeqNameFromHeader(line)
				if write = names.Contains(name); write {
					result.Kept = append(result.Kept, name)
				} else {
					result.Dropped = append(result.Dropped, name)
					log.Printf("Sequence not in GTF: %v", strings.TrimSpace(line))
				}
			}
			if write {
				kept = append(kept, line)
			}
		}
		if verbose && internal.CrossedInterval(before, result.Lines) {
			log.Printf("  Processed %v lines...", result.Lines-result.Lines%internal.ProgressInterval)
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

// FilterFile is like Filter, but reads from and writes to the named
// files. Input files with a .gz suffix are decompressed. The output
// is always gzip-compressed.
//
// On error, the output file is incomplete and must be discarded.
func FilterFile(inputName, outputName string, names NameSet, verbose bool) (result *Result, err error) {
	input, err := internal.Open(inputName)
	if err != nil {
		return nil, err
	}
	defer func() {
		if nerr := input.Close(); err == nil {
			err = nerr
		}
	}()
	output, err := internal.Create(outputName, true)
	if err != nil {
		return nil, err
	}
	defer func() {
		if nerr := output.Close(); err == nil {
			err = nerr
		}
	}()
	return Filter(input, output, names, verbose)
}
