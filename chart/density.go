// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"gonum.org/v1/gonum/floats"

	"github.com/statteach/statlab/stats"
)

// DensityPoints is the number of points at which Density evaluates
// the kernel density estimate: 100 intervals across the sample range.
const DensityPoints = 101

// A DensityPoint is one point of a density curve.
type DensityPoint struct {
	X       float64 `json:"x"`
	Density float64 `json:"density"`
}

// Density evaluates a Gaussian kernel density estimate of s at
// DensityPoints evenly spaced points spanning [min, max].
//
// The bandwidth is range/20 scaled by smoothing, where a smoothing of
// 1 is the default. It returns ErrZeroBandwidth if that bandwidth is
// not positive.
func Density(s stats.Sample, smoothing float64) ([]DensityPoint, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	min, max := s.Bounds()
	h := Bandwidth(max-min, smoothing)
	if !(h > 0) {
		return nil, ErrZeroBandwidth
	}

	xs := floats.Span(make([]float64, DensityPoints), min, max)
	ys := stats.KDE{Bandwidth: h}.From(s).PDFEach(xs)
	pts := make([]DensityPoint, len(xs))
	for i := range xs {
		pts[i] = DensityPoint{xs[i], ys[i]}
	}
	return pts, nil
}

// Bandwidth returns the kernel bandwidth Density uses for a sample
// with the given range.
func Bandwidth(sampleRange, smoothing float64) float64 {
	return sampleRange / 20 * smoothing
}
