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
	"bufio"
	"context"
	"io"
)

const defaultBatchSize = 1024

// LineSource is a pargo pipeline source that produces batches of raw
// lines. Each line keeps its line terminator, if any, so that lines
// can be copied to an output file unchanged.
type LineSource struct {
	reader *bufio.Reader
	data   []string
	err    error
}

// NewLineSource returns a LineSource for the given reader. There is no
// upper limit on line length.
func NewLineSource(r io.Reader) *LineSource {
	return &LineSource{reader: bufio.NewReaderSize(r, 1<<16)}
}

// Err implements the method of the pipeline.Source interface.
func (src *LineSource) Err() error {
	if src.err == io.EOF {
		return nil
	}
	return src.err
}

// Prepare implements the method of the pipeline.Source interface.
func (src *LineSource) Prepare(_ context.Context) (size int) {
	return -1
}

// Fetch implements the method of the pipeline.Source interface.
func (src *LineSource) Fetch(size int) (fetched int) {
	if src.err != nil {
		src.data = nil
		return 0
	}
	if size <= 0 {
		size = defaultBatchSize
	}
	data := make([]string, 0, size)
	for fetched < size {
		line, err := src.reader.ReadString('\n')
		if len(line) > 0 {
			data = append(data, line)
			fetched++
		}
		if err != nil {
			src.err = err
			break
		}
	}
	src.data = data
	return fetched
}

// Data implements the method of the pipeline.Source interface.
func (src *LineSource) Data() interface{} {
	return src.data
}

// TrimLineTerminator removes a trailing "\n" or "\r\n".
func TrimLineTerminator(line string) string {
	if n := len(line); n > 0 && line[n-1] == '\n' {
		line = line[:n-1]
		if n := len(line); n > 0 && line[n-1] == '\r' {
			line = line[:n-1]
		}
	}
	return line
}
