// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"math"

	"github.com/statteach/statlab/stats"
)

// An ExpectedBin is a histogram bin together with the count a fitted
// distribution predicts for it.
type ExpectedBin struct {
	Bin

	// Expected is n times the probability that a value falls in the
	// bin under the fitted distribution. Bins are [Lo, Hi) except
	// the last, which is [Lo, Hi], matching the observed counts.
	Expected float64 `json:"expected"`
}

// Overlay computes the k-bin histogram of s and, for each bin, the
// number of values dist expects in it. It is used to draw a fitted
// distribution over the observed histogram.
//
// Bin edges are evaluated as left limits of the CDF, so a discrete
// distribution's mass at an edge lands in the bin that counts it.
func Overlay(s stats.Sample, k int, dist stats.Dist) ([]ExpectedBin, error) {
	bins, err := Histogram(s, k)
	if err != nil {
		return nil, err
	}
	n := float64(len(s.Xs))
	out := make([]ExpectedBin, len(bins))
	for i, b := range bins {
		hi := dist.CDF(b.Hi)
		if i < len(bins)-1 {
			hi = cdfBelow(dist, b.Hi)
		}
		out[i] = ExpectedBin{b, n * (hi - cdfBelow(dist, b.Lo))}
	}
	return out, nil
}

// edgeStep is the relative offset used to evaluate the CDF just left
// of a bin edge. A single ulp is not enough: CDFs that compute
// floor(x+1) round x+1 back up to the edge.
const edgeStep = 1e-9

// cdfBelow approximates Pr[X < x], the left limit of the CDF at x.
func cdfBelow(dist stats.Dist, x float64) float64 {
	return dist.CDF(x - edgeStep*math.Max(1, math.Abs(x)))
}
