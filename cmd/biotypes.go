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
	"io"
	"os"
	"strings"

	"github.com/screcounter/refprep/biotype"
)

// BiotypesHelp is the help string for this command.
const BiotypesHelp = "biotypes parameters:\n" +
	"refprep biotypes\n" +
	"[--organism name]\n"

// Biotypes implements the refprep biotypes command.
func Biotypes() error {
	var organism string
	flags := flag.NewFlagSet("biotypes", flag.ContinueOnError)
	flags.StringVar(&organism, "organism", "", "list the biotypes retained for this organism")
	parseFlags(flags, 2, BiotypesHelp)
	return listBiotypes(os.Stdout, biotype.NewTable(), organism)
}

// listBiotypes prints all organisms with their biotype group, or the
// biotypes retained for a single organism.
func listBiotypes(w io.Writer, table *biotype.Table, organism string) error {
	if organism == "" {
		for _, name := range table.Organisms() {
			policy, err := table.Lookup(name)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w, "%v\t%v\n", name, policy.Group()); err != nil {
				return err
			}
		}
		return nil
	}
	policy, err := table.Lookup(organism)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, strings.Join(policy.Labels(), "\n"))
	return err
}
