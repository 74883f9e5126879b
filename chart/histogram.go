// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"math"

	"github.com/statteach/statlab/stats"
)

// A Bin is one bar of a histogram covering [Lo, Hi).
//
// The last bin of a histogram also includes its upper edge.
type Bin struct {
	Lo float64 `json:"lo"`
	Hi float64 `json:"hi"`

	// Mid is the midpoint of the bin, Lo + width/2.
	Mid float64 `json:"mid"`

	Count int `json:"count"`
}

// Histogram divides [min, max] of s into k bins of equal width and
// counts the values in each.
//
// A value x lands in bin floor((x-min)/width). The sample maximum
// always lands in the last bin, so the counts sum to the sample size.
// If every value is identical the width is 0 and all values are
// counted in the last bin.
func Histogram(s stats.Sample, k int) ([]Bin, error) {
	if k < 1 {
		return nil, ErrBinCount
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	min, max := s.Bounds()
	width := (max - min) / float64(k)
	bins := make([]Bin, k)
	for i := range bins {
		lo := min + float64(i)*width
		bins[i] = Bin{Lo: lo, Hi: lo + width, Mid: lo + width/2}
	}
	for _, x := range s.Xs {
		bins[binIndex(x, min, max, width, k)].Count++
	}
	return bins, nil
}

// binIndex returns the index of the equal-width bin holding x.
func binIndex(x, min, max, width float64, k int) int {
	if x == max || width == 0 {
		return k - 1
	}
	i := int(math.Floor((x - min) / width))
	// Rounding can push values just below max past the last edge.
	if i >= k {
		i = k - 1
	} else if i < 0 {
		i = 0
	}
	return i
}
