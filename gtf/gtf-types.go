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
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedRecord is returned for record lines with fewer than
// nine tab-separated columns.
var ErrMalformedRecord = errors.New("malformed GTF record")

// Column indices of the fixed GTF fields.
const (
	FieldSeqName = iota
	FieldSource
	FieldFeature
	FieldStart
	FieldEnd
	FieldScore
	FieldStrand
	FieldFrame
	nofFixedFields
)

// A Record is a parsed GTF line. The fixed fields are kept verbatim.
type Record struct {
	Fields     [nofFixedFields]string
	Attributes AttributeMap
}

// IsComment reports whether a line is a GTF comment or header line.
func IsComment(line string) bool {
	return len(line) > 0 && line[0] == '#'
}

// ParseRecord parses a GTF line without its line terminator. Columns
// beyond the ninth are ignored.
func ParseRecord(line string) (*Record, error) {
	record := new(Record)
	for i := 0; i < nofFixedFields; i++ {
		j := strings.IndexByte(line, '\t')
		if j < 0 {
			return nil, fmt.Errorf("%w: expected 9 columns, found %v", ErrMalformedRecord, i+1)
		}
		record.Fields[i], line = line[:j], line[j+1:]
	}
	if j := strings.IndexByte(line, '\t'); j >= 0 {
		line = line[:j]
	}
	record.Attributes = ParseAttributes(line)
	return record, nil
}

// SeqName returns the name of the sequence the record refers to.
func (record *Record) SeqName() string {
	return record.Fields[FieldSeqName]
}

// Append appends the tab-separated textual form of the record to buf,
// without a line terminator.
func (record *Record) Append(buf []byte) []byte {
	for _, field := range record.Fields {
		buf = append(buf, field...)
		buf = append(buf, '\t')
	}
	return record.Attributes.Append(buf)
}
