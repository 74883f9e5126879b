// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package input

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestParseText(t *testing.T) {
	for _, tc := range []struct {
		name, in string
		want     []float64
	}{
		{"column", "value\n1\n2\n3\n", []float64{1, 2, 3}},
		{"separators", "a,b\n1,2\n3;4\n5\t6\n7 8\n\n9\n", []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}},
		{"numeric header", "1\n2\n", []float64{2}},
		{"crlf", "x\r\n1.5\r\n-2\r\n", []float64{1.5, -2}},
		{"junk fields", "h\n1, n/a, 3\nNaN\n", []float64{1, 3}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			xs, err := ParseText(strings.NewReader(tc.in))
			require.NoError(t, err)
			assert.Equal(t, tc.want, xs)
		})
	}
}

func TestParseTextErrors(t *testing.T) {
	_, err := ParseText(strings.NewReader("header\nfoo\n"))
	assert.ErrorIs(t, err, ErrNoNumbers)

	_, err = ParseText(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrNoNumbers)

	_, err = ParseText(strings.NewReader(strings.Repeat("1\n", MaxFileSize/2+1)))
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestParseExcel(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	const sheet = "Sheet1"
	require.NoError(t, f.SetCellValue(sheet, "A1", "value"))
	require.NoError(t, f.SetCellValue(sheet, "B1", 100))
	require.NoError(t, f.SetCellValue(sheet, "A2", 1.5))
	require.NoError(t, f.SetCellValue(sheet, "B2", "note"))
	require.NoError(t, f.SetCellValue(sheet, "A3", 2))
	require.NoError(t, f.SetCellValue(sheet, "B3", 3))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	xs, err := ParseFile("upload.xlsx", buf)
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, 2, 3}, xs)
}

func TestParseFile(t *testing.T) {
	_, err := ParseFile("legacy.XLS", strings.NewReader(""))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	xs, err := ParseFile("data.csv", strings.NewReader("v\n4\n5\n"))
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 5}, xs)

	_, err = ParseFile("broken.xlsx", strings.NewReader("not a zip"))
	assert.Error(t, err)
}

func TestExtractNumbers(t *testing.T) {
	for _, tc := range []struct {
		name, in string
		want     []float64
	}{
		{"list", "Here you go: [1.2, 3.4, 5.6] done", []float64{1.2, 3.4, 5.6}},
		{"first list wins", "[1 2] and [3]", []float64{1, 2}},
		{"data object", `{"data": ["1.5", "2"]}`, []float64{1.5, 2}},
		{"loose numbers", "values are 3, -4.5 and 6.", []float64{3, -4.5, 6}},
		{"non-numeric list", "[a, b] then 7", []float64{7}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			xs, err := ExtractNumbers(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, xs)
		})
	}

	_, err := ExtractNumbers("no numbers here")
	assert.ErrorIs(t, err, ErrNoNumbers)
}
