// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"

	"github.com/statteach/statlab/stats"
)

// DefaultPieCategories is the number of pie categories used when the
// caller does not choose one.
const DefaultPieCategories = 5

// A PieSlice is one non-empty value category of a pie chart.
type PieSlice struct {
	// Label is the category interval formatted as "lo-hi" with one
	// decimal place.
	Label string `json:"label"`

	Lo    float64 `json:"lo"`
	Hi    float64 `json:"hi"`
	Count int     `json:"count"`

	// Percent is Count as a percentage of the sample size.
	Percent float64 `json:"percent"`
}

// Pie divides [min, max] of s into k equal-width categories, like
// Histogram, and returns the categories that hold at least one value.
func Pie(s stats.Sample, k int) ([]PieSlice, error) {
	bins, err := Histogram(s, k)
	if err != nil {
		return nil, err
	}
	n := float64(len(s.Xs))
	var slices []PieSlice
	for _, b := range bins {
		if b.Count == 0 {
			continue
		}
		slices = append(slices, PieSlice{
			Label:   fmt.Sprintf("%.1f-%.1f", b.Lo, b.Hi),
			Lo:      b.Lo,
			Hi:      b.Hi,
			Count:   b.Count,
			Percent: float64(b.Count) / n * 100,
		})
	}
	return slices, nil
}
