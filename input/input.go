// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package input reads numeric samples from uploaded files and from
// free-form text such as a language model's reply.
package input // import "github.com/statteach/statlab/input"

import (
	"io"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// MaxFileSize is the largest input ParseFile and ParseText accept.
const MaxFileSize = 10 << 20

var (
	// ErrNoNumbers is returned when the input holds no numeric
	// values.
	ErrNoNumbers = errors.New("no numeric values found")

	// ErrTooLarge is returned when the input exceeds MaxFileSize.
	ErrTooLarge = errors.New("input exceeds 10 MiB")

	// ErrUnsupportedFormat is returned by ParseFile for file types
	// it cannot read.
	ErrUnsupportedFormat = errors.New("unsupported file format")
)

// ParseFile reads a sample from r, choosing the parser by the
// extension of name: .xlsx and .xlsm files are read as Excel
// workbooks, legacy .xls workbooks are rejected, and anything else is
// parsed as delimited text.
func ParseFile(name string, r io.Reader) ([]float64, error) {
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".xlsx", ".xlsm":
		return ParseExcel(r)
	case ".xls":
		return nil, errors.Wrapf(ErrUnsupportedFormat, "%s (save the workbook as .xlsx)", ext)
	}
	return ParseText(r)
}

// readLimited reads all of r, failing with ErrTooLarge if it holds
// more than MaxFileSize bytes.
func readLimited(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxFileSize+1))
	if err != nil {
		return nil, errors.Wrap(err, "reading input")
	}
	if len(data) > MaxFileSize {
		return nil, ErrTooLarge
	}
	return data, nil
}

// separators are tried in order on each line of text input.
var separators = []string{",", ";", "\t", " "}

// ParseText reads a sample from delimited text.
//
// Blank lines are ignored and the first remaining line is treated as
// a header and skipped. Each other line is split on the first
// separator (comma, semicolon, tab, space) that yields more than one
// field, or taken whole if none does. Fields that are not numbers
// are dropped.
func ParseText(r io.Reader) ([]float64, error) {
	data, err := readLimited(r)
	if err != nil {
		return nil, err
	}

	var lines []string
	for _, l := range strings.Split(string(data), "\n") {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	if len(lines) > 0 {
		lines = lines[1:]
	}

	var xs []float64
	for _, l := range lines {
		for _, f := range splitLine(l) {
			if x, ok := parseNumber(f); ok {
				xs = append(xs, x)
			}
		}
	}
	if len(xs) == 0 {
		return nil, ErrNoNumbers
	}
	return xs, nil
}

func splitLine(l string) []string {
	for _, sep := range separators {
		var fields []string
		for _, f := range strings.Split(l, sep) {
			if f = strings.TrimSpace(f); f != "" {
				fields = append(fields, f)
			}
		}
		if len(fields) > 1 {
			return fields
		}
	}
	return []string{l}
}

// parseNumber parses s as a finite float.
func parseNumber(s string) (float64, bool) {
	x, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, false
	}
	return x, true
}
