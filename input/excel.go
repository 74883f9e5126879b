// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package input

import (
	"bytes"
	"io"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

// ParseExcel reads a sample from the first worksheet of an Excel
// workbook. The first row is treated as a header. Every other cell
// that holds a number is collected, row by row.
func ParseExcel(r io.Reader) ([]float64, error) {
	data, err := readLimited(r)
	if err != nil {
		return nil, err
	}
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "opening workbook")
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoNumbers
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.Wrapf(err, "reading sheet %q", sheets[0])
	}

	var xs []float64
	for i, row := range rows {
		if i == 0 {
			continue
		}
		for _, cell := range row {
			if x, ok := parseNumber(cell); ok {
				xs = append(xs, x)
			}
		}
	}
	if len(xs) == 0 {
		return nil, ErrNoNumbers
	}
	return xs, nil
}
