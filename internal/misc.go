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

package internal

import (
	"github.com/exascience/pargo/pipeline"
)

// RunPipeline runs a pargo pipeline and returns its error, if any.
func RunPipeline(p *pipeline.Pipeline) error {
	p.Run()
	return p.Err()
}

// ProgressInterval is the number of lines between two progress reports.
const ProgressInterval = 100000

// CrossedInterval reports whether advancing a line counter from
// before to after passes a multiple of ProgressInterval.
func CrossedInterval(before, after int) bool {
	return before/ProgressInterval != after/ProgressInterval
}
