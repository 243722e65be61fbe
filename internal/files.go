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
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
)

var (
	// ErrInputNotFound is returned when an input file does not exist.
	ErrInputNotFound = errors.New("input not found")

	// ErrWrite is returned when an output file cannot be created or written.
	ErrWrite = errors.New("write error")
)

// IsGzipFilename reports whether a filename denotes gzip-compressed content.
func IsGzipFilename(filename string) bool {
	return strings.HasSuffix(filename, ".gz")
}

type inputFile struct {
	io.Reader
	closers []io.Closer
}

func (f *inputFile) Close() (err error) {
	for _, c := range f.closers {
		if nerr := c.Close(); err == nil {
			err = nerr
		}
	}
	return err
}

// Open opens a text file for reading. Files with a .gz suffix are
// decompressed transparently.
func Open(filename string) (io.ReadCloser, error) {
	file, err := os.Open(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %v", ErrInputNotFound, filename)
		}
		return nil, err
	}
	if !IsGzipFilename(filename) {
		return file, nil
	}
	gz, err := gzip.NewReader(bufio.NewReader(file))
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("%v in file %v", err, filename)
	}
	return &inputFile{Reader: gz, closers: []io.Closer{gz, file}}, nil
}

// OutputFile is a buffered, optionally gzip-compressed, text output
// file. Write errors are reported as ErrWrite.
type OutputFile struct {
	filename string
	file     *os.File
	gz       *gzip.Writer
	*bufio.Writer
}

// Create creates a text file for writing. If compress is true, the
// contents are gzip-compressed, independent of the filename.
func Create(filename string, compress bool) (*OutputFile, error) {
	file, err := os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWrite, err)
	}
	f := &OutputFile{filename: filename, file: file}
	if compress {
		f.gz = gzip.NewWriter(file)
		f.Writer = bufio.NewWriterSize(f.gz, 1<<16)
	} else {
		f.Writer = bufio.NewWriterSize(file, 1<<16)
	}
	return f, nil
}

// Close flushes all buffered data and closes the underlying file.
func (f *OutputFile) Close() (err error) {
	err = f.Flush()
	if f.gz != nil {
		if nerr := f.gz.Close(); err == nil {
			err = nerr
		}
	}
	if nerr := f.file.Close(); err == nil {
		err = nerr
	}
	if err != nil {
		return fmt.Errorf("%w: %v in file %v", ErrWrite, err, f.filename)
	}
	return nil
}

// MkdirAll creates a directory and all missing parents.
func MkdirAll(path string, mode os.FileMode) error {
	if err := os.MkdirAll(path, mode); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return nil
}
