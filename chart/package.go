// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chart reduces a sample into the data behind each chart:
// histogram bins, a boxplot summary, a kernel density curve, pie
// categories, a radar profile and index/value series.
//
// Every function here recomputes its result from the sample it is
// given and keeps no state between calls.
package chart // import "github.com/statteach/statlab/chart"

import "errors"

var (
	// ErrBinCount is returned when a bin or category count is less
	// than 1.
	ErrBinCount = errors.New("bin count must be at least 1")

	// ErrZeroBandwidth is returned by Density when the sample has
	// zero range or the smoothing factor is not positive, so the
	// kernel bandwidth would be zero.
	ErrZeroBandwidth = errors.New("kernel bandwidth is zero")
)
