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

// Package biotype maps organisms to the biotype labels that are
// retained when preparing a reference annotation for that organism.
package biotype

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownOrganism is returned for organisms without a biotype policy.
var ErrUnknownOrganism = errors.New("unknown organism")

var mammalBiotypes = []string{
	"protein_coding",
	"protein_coding_LoF",
	"lncRNA",
	"antisense",
	"IG_C_gene",
	"IG_D_gene",
	"IG_J_gene",
	"IG_LV_gene",
	"IG_V_gene",
	"IG_V_pseudogene",
	"IG_J_pseudogene",
	"IG_C_pseudogene",
	"TR_C_gene",
	"TR_D_gene",
	"TR_J_gene",
	"TR_V_gene",
	"TR_V_pseudogene",
	"TR_J_pseudogene",
}

var birdBiotypes = []string{
	"protein_coding",
	"protein_coding_LoF",
	"lncRNA",
	"IG_V_gene",
	"IG_J_gene",
	"IG_V_pseudogene",
	"IG_J_pseudogene",
	"IG_C_gene",
	"IG_C_pseudogene",
	"TR_V_gene",
	"TR_J_gene",
	"TR_V_pseudogene",
	"TR_J_pseudogene",
	"TR_C_gene",
	"TR_D_gene",
	"TR_C_pseudogene",
}

var amphibianBiotypes = []string{
	"protein_coding",
	"lncRNA",
	"IG_C_gene",
	"IG_D_gene",
	"IG_J_gene",
	"IG_V_gene",
	"IG_V_pseudogene",
	"IG_J_pseudogene",
	"IG_C_pseudogene",
	"TR_C_gene",
	"TR_D_gene",
	"TR_J_gene",
	"TR_V_gene",
	"TR_V_pseudogene",
	"TR_J_pseudogene",
}

var fishBiotypes = []string{
	"protein_coding",
	"lncRNA",
	"IG_C_gene",
	"IG_D_gene",
	"IG_J_gene",
	"IG_V_gene",
	"IG_V_pseudogene",
	"IG_J_pseudogene",
	"IG_C_pseudogene",
	"TR_C_gene",
	"TR_D_gene",
	"TR_J_gene",
	"TR_V_gene",
	"TR_V_pseudogene",
	"TR_J_pseudogene",
	"IG_gene",
	"TR_gene",
}

var invertebrateBiotypes = []string{
	"protein_coding",
	"lncRNA",
}

var plantBiotypes = []string{
	"protein_coding",
	"lncRNA",
	"lincRNA",
}

var fungiBiotypes = []string{
	"protein_coding",
	"ncRNA",
}

type group struct {
	name      string
	biotypes  []string
	organisms []string
}

var groups = []group{
	{"mammal", mammalBiotypes, []string{
		"Rattus norvegicus",
		"Macaca mulatta",
		"Callithrix jacchus",
		"Pan troglodytes",
		"Gorilla gorilla",
		"Equus caballus",
		"Canis lupus familiaris",
		"Bos taurus",
		"Ovis aries",
		"Sus scrofa",
		"Heterocephalus glaber",
		"Oryctolagus cuniculus",
	}},
	{"bird", birdBiotypes, []string{"Gallus gallus"}},
	{"amphibian", amphibianBiotypes, []string{"Xenopus tropicalis"}},
	{"fish", fishBiotypes, []string{"Danio rerio"}},
	{"invertebrate", invertebrateBiotypes, []string{
		"Drosophila melanogaster",
		"Caenorhabditis elegans",
		"Schistosoma mansoni",
		"Anopheles gambiae",
	}},
	{"plant", plantBiotypes, []string{
		"Arabidopsis thaliana",
		"Oryza sativa",
		"Solanum lycopersicum",
		"Zea mays",
	}},
	{"fungus", fungiBiotypes, []string{"Saccharomyces cerevisiae"}},
}

// A Policy is the set of biotype labels allowed for one organism.
// Policies are immutable.
type Policy struct {
	organism string
	group    string
	labels   []string
	allowed  map[string]struct{}
}

func newPolicy(organism, group string, labels []string) *Policy {
	p := &Policy{
		organism: organism,
		group:    group,
		labels:   labels,
		allowed:  make(map[string]struct{}, len(labels)),
	}
	for _, label := range labels {
		p.allowed[strings.ToLower(label)] = struct{}{}
	}
	return p
}

// Organism returns the organism the policy applies to.
func (p *Policy) Organism() string {
	return p.organism
}

// Group returns the taxonomic group whose biotypes the policy uses,
// such as "mammal" or "fish".
func (p *Policy) Group() string {
	return p.group
}

// Allows reports whether a biotype label is allowed. The comparison
// is case-insensitive.
func (p *Policy) Allows(label string) bool {
	_, ok := p.allowed[strings.ToLower(label)]
	return ok
}

// Labels returns the allowed labels in their conventional spelling.
func (p *Policy) Labels() []string {
	return append([]string(nil), p.labels...)
}

// A Table maps organism names to biotype policies.
type Table struct {
	policies  map[string]*Policy
	organisms []string
}

// NewTable builds the table of all registered organisms.
func NewTable() *Table {
	t := &Table{policies: make(map[string]*Policy)}
	for _, g := range groups {
		for _, organism := range g.organisms {
			t.policies[organism] = newPolicy(organism, g.name, g.biotypes)
			t.organisms = append(t.organisms, organism)
		}
	}
	sort.Strings(t.organisms)
	return t
}

// Lookup returns the policy for an organism. Organism names are
// matched exactly.
func (t *Table) Lookup(organism string) (*Policy, error) {
	if p, ok := t.policies[organism]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownOrganism, organism)
}

// Organisms returns the sorted names of all registered organisms.
func (t *Table) Organisms() []string {
	return append([]string(nil), t.organisms...)
}
