// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"gonum.org/v1/gonum/stat/distuv"
)

// KDE represents options for constructing a Gaussian kernel density
// estimate.
//
// Kernel density estimation constructs an estimate ƒ̂(x) of an
// unknown distribution ƒ(x) given a sample from that distribution.
// It is similar to a histogram, except that it is smooth and does not
// discretize the data into bins. The result depends heavily on the
// bandwidth.
//
// The estimate at x is the mean over the sample of the Gaussian
// kernel evaluated at (x - xᵢ)/h, normalized by 1/(h√(2π)).
type KDE struct {
	// Bandwidth is the standard deviation h of the Gaussian kernel.
	// It must be positive.
	Bandwidth float64
}

// From returns the kernel density estimate for the sample s.
//
// From panics if k.Bandwidth is not positive.
func (k KDE) From(s Sample) *KDEDist {
	if !(k.Bandwidth > 0) {
		panic("KDE bandwidth must be positive")
	}
	return &KDEDist{
		kernel: distuv.Normal{Mu: 0, Sigma: k.Bandwidth},
		xs:     s.Xs,
	}
}

// KDEDist is a Gaussian kernel density estimate.
type KDEDist struct {
	kernel distuv.Normal
	xs     []float64
}

// PDF returns the density estimate at x.
func (kde *KDEDist) PDF(x float64) float64 {
	if len(kde.xs) == 0 {
		return nan
	}
	// Shift the kernel to each of kde.xs and evaluate at x.
	sum := 0.0
	for _, xi := range kde.xs {
		sum += kde.kernel.Prob(x - xi)
	}
	return sum / float64(len(kde.xs))
}

// PDFEach returns PDF(xs[i]) for each i.
func (kde *KDEDist) PDFEach(xs []float64) []float64 {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = kde.PDF(x)
	}
	return ys
}

// CDF returns the integral of the density estimate from -∞ to x.
func (kde *KDEDist) CDF(x float64) float64 {
	if len(kde.xs) == 0 {
		return nan
	}
	sum := 0.0
	for _, xi := range kde.xs {
		sum += kde.kernel.CDF(x - xi)
	}
	return sum / float64(len(kde.xs))
}

// Mean returns the mean of the estimate, which is the sample mean.
func (kde *KDEDist) Mean() float64 {
	return Sample{Xs: kde.xs}.Mean()
}

// Variance returns the variance of the estimate: the population
// variance of the sample plus the kernel variance h².
func (kde *KDEDist) Variance() float64 {
	return Sample{Xs: kde.xs}.Variance() + kde.kernel.Variance()
}

// Bandwidth returns the kernel bandwidth h.
func (kde *KDEDist) Bandwidth() float64 {
	return kde.kernel.Sigma
}
