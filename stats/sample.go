// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"sort"
)

// Sample is a one-dimensional sample of observations.
//
// A Sample is treated as immutable for the duration of an analysis.
// Operations that need order statistics work on a sorted copy unless
// Sorted is set, so the caller's ordering of Xs is preserved.
type Sample struct {
	// Xs is the slice of sample values.
	Xs []float64

	// Sorted indicates that Xs is sorted in ascending order.
	Sorted bool
}

// Validate returns ErrEmptySample if s has no values and ErrNonFinite
// if any value is NaN or infinite.
func (s Sample) Validate() error {
	if len(s.Xs) == 0 {
		return ErrEmptySample
	}
	for _, x := range s.Xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return ErrNonFinite
		}
	}
	return nil
}

// Bounds returns the minimum and maximum values of the Sample.
//
// If the Sample is empty, Bounds returns NaN, NaN.
func (s Sample) Bounds() (min float64, max float64) {
	if len(s.Xs) == 0 {
		return nan, nan
	}
	if s.Sorted {
		return s.Xs[0], s.Xs[len(s.Xs)-1]
	}

	min, max = s.Xs[0], s.Xs[0]
	for _, x := range s.Xs {
		if x < min {
			min = x
		}
		if x > max {
			max = x
		}
	}
	return
}

// Sum returns the sum of the Sample.
func (s Sample) Sum() float64 {
	sum := 0.0
	for _, x := range s.Xs {
		sum += x
	}
	return sum
}

// Mean returns the arithmetic mean of the Sample.
//
// If the Sample is empty, Mean returns NaN.
func (s Sample) Mean() float64 {
	if len(s.Xs) == 0 {
		return nan
	}
	return s.Sum() / float64(len(s.Xs))
}

// Variance returns the population variance of the Sample, that is,
// the mean squared deviation from the mean (divided by n, not n-1).
//
// A Sample whose values are all identical has a variance of exactly
// 0, regardless of rounding in the computed mean.
func (s Sample) Variance() float64 {
	if len(s.Xs) == 0 {
		return nan
	}
	if lo, hi := s.Bounds(); lo == hi {
		return 0
	}

	mean := s.Mean()
	sum := 0.0
	for _, x := range s.Xs {
		d := x - mean
		sum += d * d
	}
	return sum / float64(len(s.Xs))
}

// StdDev returns the population standard deviation of the Sample.
func (s Sample) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// OrderStatisticQuantile returns the value at index floor(n*q) of the
// sorted Sample. This is plain order-statistic indexing with no
// interpolation; an index past the end of the Sample selects the
// largest value.
//
// This is the quartile definition used by Describe. It intentionally
// differs from InterpolatedQuantile, which the boxplot uses.
//
// If the Sample is empty, it returns NaN.
func (s Sample) OrderStatisticQuantile(q float64) float64 {
	if len(s.Xs) == 0 {
		return nan
	}
	if !s.Sorted {
		s = *s.Copy().Sort()
	}

	i := int(math.Floor(float64(len(s.Xs)) * q))
	if i < 0 {
		i = 0
	} else if i >= len(s.Xs) {
		i = len(s.Xs) - 1
	}
	return s.Xs[i]
}

// InterpolatedQuantile returns the q'th quantile of the Sample,
// linearly interpolating between the sorted values at floor(q*(n-1))
// and ceil(q*(n-1)) by the fractional part of q*(n-1). q is clamped
// to [0, 1].
//
// If the Sample is empty, it returns NaN.
func (s Sample) InterpolatedQuantile(q float64) float64 {
	if len(s.Xs) == 0 {
		return nan
	}
	if !s.Sorted {
		s = *s.Copy().Sort()
	}

	if q <= 0 {
		return s.Xs[0]
	} else if q >= 1 {
		return s.Xs[len(s.Xs)-1]
	}

	idx := q * float64(len(s.Xs)-1)
	lo, hi := math.Floor(idx), math.Ceil(idx)
	w := idx - lo
	return s.Xs[int(lo)]*(1-w) + s.Xs[int(hi)]*w
}

// Copy returns a copy of the Sample.
//
// The returned Sample shares no data with the original, so they can
// be modified (for example, sorted) independently.
func (s Sample) Copy() *Sample {
	xs := make([]float64, len(s.Xs))
	copy(xs, s.Xs)
	return &Sample{Xs: xs, Sorted: s.Sorted}
}

// Sort sorts the samples in place in s and returns s.
//
// A sorted sample improves the performance of some algorithms.
func (s *Sample) Sort() *Sample {
	if s.Sorted || sort.Float64sAreSorted(s.Xs) {
		// All set
	} else {
		sort.Float64s(s.Xs)
	}
	s.Sorted = true
	return s
}
