// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import "github.com/statteach/statlab/stats"

// A Box is the five-number summary of a sample with Tukey fences.
type Box struct {
	// Q1, Median and Q3 are interpolated quantiles (see
	// stats.Sample.InterpolatedQuantile).
	Q1     float64 `json:"q1"`
	Median float64 `json:"median"`
	Q3     float64 `json:"q3"`

	// IQR is Q3 - Q1.
	IQR float64 `json:"iqr"`

	// LowerFence is Q1 - 1.5*IQR and UpperFence is Q3 + 1.5*IQR.
	LowerFence float64 `json:"lowerFence"`
	UpperFence float64 `json:"upperFence"`

	// Min and Max are the extremes of the values within the
	// fences, that is, the whisker ends.
	Min float64 `json:"min"`
	Max float64 `json:"max"`

	// Outliers lists the values outside the fences in ascending
	// order.
	Outliers []float64 `json:"outliers"`
}

// BoxPlot computes the boxplot summary of s.
//
// The quartiles use linear interpolation, which differs from the
// order-statistic quartiles reported by stats.Describe.
func BoxPlot(s stats.Sample) (*Box, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	sorted := s.Copy().Sort()

	b := &Box{
		Q1:     sorted.InterpolatedQuantile(0.25),
		Median: sorted.InterpolatedQuantile(0.5),
		Q3:     sorted.InterpolatedQuantile(0.75),
	}
	b.IQR = b.Q3 - b.Q1
	b.LowerFence = b.Q1 - 1.5*b.IQR
	b.UpperFence = b.Q3 + 1.5*b.IQR

	first := true
	for _, x := range sorted.Xs {
		if x < b.LowerFence || x > b.UpperFence {
			b.Outliers = append(b.Outliers, x)
			continue
		}
		if first {
			b.Min, first = x, false
		}
		b.Max = x
	}
	return b, nil
}
