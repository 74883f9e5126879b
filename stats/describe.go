// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// Description is the set of descriptive statistics of a Sample.
type Description struct {
	// N is the sample size.
	N int

	Sum, Mean, Median float64

	// Mode lists every value that occurs with the maximum
	// frequency, in order of first appearance. It has length 1
	// when the mode is unique.
	Mode []float64

	Min, Max, Range float64

	// Q1 and Q3 are order-statistic quartiles (see
	// Sample.OrderStatisticQuantile). IQR is Q3 - Q1.
	Q1, Q3, IQR float64

	// Variance and StdDev are population (divide by n) values.
	Variance, StdDev float64

	// Skewness is the third standardized moment and Kurtosis the
	// fourth standardized moment minus 3 (excess kurtosis). Neither
	// applies a small-sample bias correction.
	Skewness, Kurtosis float64

	// CoefficientOfVariation is StdDev / |Mean|.
	CoefficientOfVariation float64

	// Degenerate is set when StdDev is 0. In that case Skewness,
	// Kurtosis and CoefficientOfVariation are reported as 0
	// rather than NaN or an infinity.
	Degenerate bool
}

// UniqueMode returns the mode and true if exactly one value has the
// maximum frequency.
func (d *Description) UniqueMode() (float64, bool) {
	if len(d.Mode) != 1 {
		return 0, false
	}
	return d.Mode[0], true
}

// Describe computes the descriptive statistics of s.
//
// It returns ErrEmptySample if s has no values and ErrNonFinite if
// any value is NaN or infinite. s is not modified.
//
// When the sample has zero dispersion (every value identical), the
// standardized moments and the coefficient of variation are
// undefined; Describe reports them as 0 and sets Degenerate. A
// coefficient of variation with a zero mean but non-zero dispersion is
// +Inf.
func Describe(s Sample) (*Description, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	sorted := s.Copy().Sort()
	xs := sorted.Xs
	n := len(xs)

	d := &Description{N: n}
	d.Sum = s.Sum()
	d.Mean = d.Sum / float64(n)
	if n%2 == 0 {
		d.Median = (xs[n/2-1] + xs[n/2]) / 2
	} else {
		d.Median = xs[n/2]
	}
	d.Mode = modes(s.Xs)

	d.Min, d.Max = xs[0], xs[n-1]
	d.Range = d.Max - d.Min
	d.Q1 = sorted.OrderStatisticQuantile(0.25)
	d.Q3 = sorted.OrderStatisticQuantile(0.75)
	d.IQR = d.Q3 - d.Q1

	d.Variance = sorted.Variance()
	d.StdDev = math.Sqrt(d.Variance)

	if d.StdDev == 0 {
		d.Degenerate = true
		return d, nil
	}

	var m3, m4 float64
	for _, x := range s.Xs {
		z := (x - d.Mean) / d.StdDev
		z2 := z * z
		m3 += z2 * z
		m4 += z2 * z2
	}
	d.Skewness = m3 / float64(n)
	d.Kurtosis = m4/float64(n) - 3
	d.CoefficientOfVariation = d.StdDev / math.Abs(d.Mean)
	return d, nil
}

// modes returns the values of xs with the highest frequency in the
// order they first appear. Values are keyed by numeric equality, so
// 0 and -0 count as the same value.
func modes(xs []float64) []float64 {
	freq := make(map[float64]int, len(xs))
	var order []float64
	max := 0
	for _, x := range xs {
		if x == 0 {
			x = 0 // Fold -0 into +0.
		}
		if freq[x] == 0 {
			order = append(order, x)
		}
		freq[x]++
		if freq[x] > max {
			max = freq[x]
		}
	}

	var out []float64
	for _, x := range order {
		if freq[x] == max {
			out = append(out, x)
		}
	}
	return out
}
