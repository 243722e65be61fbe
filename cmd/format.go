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
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/screcounter/refprep/biotype"
	"github.com/screcounter/refprep/fasta"
	"github.com/screcounter/refprep/gtf"
	"github.com/screcounter/refprep/internal"
)

// FormatHelp is the help string for this command.
const FormatHelp = "format parameters:\n" +
	"refprep format gtf-file --organism name\n" +
	"[--fasta fasta-file]\n" +
	"[--output-dir path]\n" +
	"[--exclude-tags tag1,tag2,...]\n" +
	"[--stats file]\n" +
	"[--verbose]\n" +
	"[--timed]\n" +
	"[--log-path path]\n"

type formatOptions struct {
	gtfFile     string
	fastaFile   string
	outputDir   string
	organism    string
	excludeTags []string
	statsFile   string
	verbose     bool
	timed       bool
}

// outputBase returns the output directory for the organism and the
// file name prefix of all output files.
func (opts *formatOptions) outputBase() (dir, prefix string) {
	name := strings.ReplaceAll(opts.organism, " ", "_")
	dir = filepath.Join(opts.outputDir, name)
	return dir, filepath.Join(dir, name)
}

// Format implements the refprep format command.
func Format() error {
	var (
		opts                 formatOptions
		excludeTags, logPath string
	)

	flags := flag.NewFlagSet("format", flag.ContinueOnError)
	flags.StringVar(&opts.organism, "organism", "", "organism name, see refprep biotypes")
	flags.StringVar(&opts.fastaFile, "fasta", "", "genome FASTA file to filter")
	flags.StringVar(&opts.outputDir, "output-dir", "star_ref", "output base directory")
	flags.StringVar(&excludeTags, "exclude-tags", strings.Join(gtf.DefaultExcludeTags, ","), "comma-separated list of tags to filter")
	flags.StringVar(&opts.statsFile, "stats", "", "write a JSON report of the run to this file")
	flags.BoolVar(&opts.verbose, "verbose", false, "report progress")
	flags.BoolVar(&opts.timed, "timed", false, "measure the runtime")
	flags.StringVar(&logPath, "log-path", "", "write log files to the specified directory")
	parseFlags(flags, 3, FormatHelp)

	opts.gtfFile = getFilename(os.Args[2], FormatHelp)
	opts.excludeTags = splitList(excludeTags)

	policy, err := biotype.NewTable().Lookup(opts.organism)
	if err != nil {
		log.Println("Error: Invalid or missing --organism. See refprep biotypes for the list of organisms.")
		fmt.Fprint(os.Stderr, FormatHelp)
		return err
	}
	if err := setLogOutput(logPath); err != nil {
		return err
	}
	return runFormat(&opts, policy)
}

// runFormat performs both passes. The policy must have been looked up
// for opts.organism before any file is touched.
func runFormat(opts *formatOptions, policy *biotype.Policy) error {
	if err := checkExist("", opts.gtfFile); err != nil {
		return err
	}
	if opts.fastaFile != "" {
		if err := checkExist("--fasta", opts.fastaFile); err != nil {
			return err
		}
	}

	dir, prefix := opts.outputBase()
	if err := internal.MkdirAll(dir, 0755); err != nil {
		return err
	}
	outputGtf := prefix + ".gtf"
	outputFasta := prefix + ".fna.gz"
	if err := checkCreate("", outputGtf); err != nil {
		return err
	}
	if opts.fastaFile != "" {
		if err := checkCreate("", outputFasta); err != nil {
			return err
		}
	}
	if opts.statsFile != "" {
		if err := checkCreate("--stats", opts.statsFile); err != nil {
			return err
		}
	}

	runID := uuid.New()
	log.Println("Run ID:", runID)
	log.Printf("Organism: %v (%v biotypes)", policy.Organism(), policy.Group())
	log.Println("Excluded tags:", opts.excludeTags)
	report := newRunReport(runID, policy.Organism(), policy.Group())

	filter := gtf.NewFilter(policy, opts.excludeTags)
	var result *gtf.Result
	if err := timedRun(opts.timed, "Filtering GTF.", func() (err error) {
		log.Println("Processing GTF:", filepath.Base(opts.gtfFile))
		log.Println("Output GTF:", outputGtf)
		result, err = gtf.RewriteFile(opts.gtfFile, outputGtf, filter, opts.verbose)
		return err
	}); err != nil {
		return fmt.Errorf("%w while processing %v", err, opts.gtfFile)
	}
	result.Stats.Log()
	report.setAnnotation(opts.gtfFile, outputGtf, result)

	if opts.fastaFile != "" {
		if err := timedRun(opts.timed, "Filtering FASTA.", func() error {
			log.Println("Processing fasta:", filepath.Base(opts.fastaFile))
			log.Println("Output fasta:", outputFasta)
			seqs, err := fasta.FilterFile(opts.fastaFile, outputFasta, result.SeqNames, opts.verbose)
			if err != nil {
				return err
			}
			log.Printf("Kept %v sequences, dropped %v sequences", len(seqs.Kept), len(seqs.Dropped))
			report.setSequence(opts.fastaFile, outputFasta, seqs)
			return nil
		}); err != nil {
			return fmt.Errorf("%w while processing %v", err, opts.fastaFile)
		}
	}

	if opts.statsFile != "" {
		return report.write(opts.statsFile)
	}
	return nil
}
