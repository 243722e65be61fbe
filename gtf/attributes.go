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
	"strings"
	"unicode"
)

// An Attribute is one key/value pair of the attribute column.
type Attribute struct {
	Key   string
	Value string
}

// An AttributeMap holds the attributes of a GTF record in the order
// in which they were first seen. Keys are unique.
type AttributeMap []Attribute

func unquote(value string) string {
	if n := len(value); n >= 2 && value[0] == '"' && value[n-1] == '"' {
		return value[1 : n-1]
	}
	return value
}

/*
ParseAttributes parses the attribute column of a GTF record.

The column is a ';'-separated list of tokens of the form
key "value". Tokens are trimmed, and empty tokens are ignored. The
key ends at the first whitespace of a token, so values may contain
spaces. Tokens without whitespace are skipped. One layer of enclosing
double quotes is removed from each value.

When a key occurs more than once, the last value wins, but the key
keeps the position of its first occurrence.
*/
func ParseAttributes(column string) (attrs AttributeMap) {
	for len(column) > 0 {
		var token string
		if i := strings.IndexByte(column, ';'); i >= 0 {
			token, column = column[:i], column[i+1:]
		} else {
			token, column = column, ""
		}
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		i := strings.IndexFunc(token, unicode.IsSpace)
		if i < 0 {
			continue
		}
		attrs.Set(token[:i], unquote(strings.TrimLeftFunc(token[i:], unicode.IsSpace)))
	}
	return attrs
}

// Get returns the value for the given key.
func (attrs AttributeMap) Get(key string) (string, bool) {
	for _, attr := range attrs {
		if attr.Key == key {
			return attr.Value, true
		}
	}
	return "", false
}

// Set replaces the value of an existing key in place, or appends a
// new entry at the end.
func (attrs *AttributeMap) Set(key, value string) {
	for index := range *attrs {
		if (*attrs)[index].Key == key {
			(*attrs)[index].Value = value
			return
		}
	}
	*attrs = append(*attrs, Attribute{key, value})
}

// Append appends the textual form of the attributes to buf: entries
// of the form key "value", separated by "; ".
func (attrs AttributeMap) Append(buf []byte) []byte {
	for index, attr := range attrs {
		if index > 0 {
			buf = append(buf, ';', ' ')
		}
		buf = append(buf, attr.Key...)
		buf = append(buf, ' ', '"')
		buf = append(buf, attr.Value...)
		buf = append(buf, '"')
	}
	return buf
}

func (attrs AttributeMap) String() string {
	return string(attrs.Append(nil))
}

/*
NormalizeGeneID splits a versioned gene_id such as "ENSG00000139618.15"
into gene_id "ENSG00000139618" and gene_version "15".

This only happens when there is no non-empty gene_version yet, and
when the gene_id contains exactly one '.'. Otherwise the attributes
are left unchanged. The return value reports whether a split took place.
*/
func (attrs *AttributeMap) NormalizeGeneID() bool {
	id, ok := attrs.Get("gene_id")
	if !ok || id == "" {
		return false
	}
	if version, ok := attrs.Get("gene_version"); ok && version != "" {
		return false
	}
	base, version, found := strings.Cut(id, ".")
	if !found || strings.IndexByte(version, '.') >= 0 {
		return false
	}
	attrs.Set("gene_id", base)
	attrs.Set("gene_version", version)
	return true
}
