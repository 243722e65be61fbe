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

// refprep prepares reference genomes for single-cell RNA-seq
// pipelines.
//
// It filters a GTF annotation by organism-specific biotypes and by
// excluded tags, normalizes the attributes of the remaining records,
// and reduces the matching genome FASTA file to the sequences that
// the filtered annotation still refers to.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/screcounter/refprep/cmd"
)

func printHelp() {
	fmt.Fprintln(os.Stderr, "Available commands: format, biotypes")
	fmt.Fprint(os.Stderr, "\n", cmd.FormatHelp)
	fmt.Fprint(os.Stderr, "\n", cmd.BiotypesHelp)
}

func main() {
	fmt.Fprintln(os.Stderr, cmd.ProgramMessage)
	if len(os.Args) < 2 {
		log.Println("Incorrect number of parameters.")
		fmt.Fprint(os.Stderr, cmd.HelpMessage)
		printHelp()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "format":
		err = cmd.Format()
	case "biotypes":
		err = cmd.Biotypes()
	case "help", "-help", "--help", "-h", "--h":
		printHelp()
	default:
		log.Println("Unknown command", os.Args[1])
		printHelp()
		os.Exit(1)
	}
	if err != nil {
		log.Fatal(err)
	}
}
