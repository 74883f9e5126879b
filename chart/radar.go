// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"math"

	"github.com/statteach/statlab/stats"
)

// A RadarAxis is one spoke of a radar profile.
type RadarAxis struct {
	// Name is one of "min", "q1", "median", "mean", "q3" and "max".
	Name string `json:"name"`

	// Value is the statistic itself.
	Value float64 `json:"value"`

	// Ratio is |Value| divided by the larger of |min| and |max|,
	// so every ratio lies in [0, 1].
	Ratio float64 `json:"ratio"`
}

// Radar returns the six-axis profile of s: its extremes, interpolated
// quartiles and mean, each normalized by the largest absolute
// extreme. If both extremes are 0 every ratio is 0.
func Radar(s stats.Sample) ([]RadarAxis, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	sorted := s.Copy().Sort()
	min, max := sorted.Bounds()

	axes := []RadarAxis{
		{Name: "min", Value: min},
		{Name: "q1", Value: sorted.InterpolatedQuantile(0.25)},
		{Name: "median", Value: sorted.InterpolatedQuantile(0.5)},
		{Name: "mean", Value: s.Mean()},
		{Name: "q3", Value: sorted.InterpolatedQuantile(0.75)},
		{Name: "max", Value: max},
	}
	scale := math.Max(math.Abs(min), math.Abs(max))
	if scale == 0 {
		return axes, nil
	}
	for i := range axes {
		axes[i].Ratio = math.Abs(axes[i].Value) / scale
	}
	return axes, nil
}
