// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"testing"
)

func TestKDE(t *testing.T) {
	// A single point gives the kernel itself.
	kde := KDE{Bandwidth: 2}.From(Sample{Xs: []float64{1}})
	peak := 1 / (2 * math.Sqrt(2*math.Pi))
	testFunc(t, "PDF", kde.PDF, map[float64]float64{
		1: peak,
		3: peak * math.Exp(-0.5),
		-1: peak * math.Exp(-0.5),
	})
	testFunc(t, "CDF", kde.CDF, map[float64]float64{
		1:    0.5,
		-inf: 0,
		inf:  1,
	})

	// Symmetric samples have a symmetric estimate.
	kde = KDE{Bandwidth: 0.5}.From(Sample{Xs: []float64{-2, -1, 1, 2}})
	for _, x := range []float64{0.3, 1, 2.5} {
		if a, b := kde.PDF(x), kde.PDF(-x); !aeq(a, b) {
			t.Errorf("PDF(%v) = %v, PDF(%v) = %v", x, a, -x, b)
		}
	}
	if !aeq(0.5, kde.CDF(0)) {
		t.Errorf("CDF(0) = %v; want 0.5", kde.CDF(0))
	}
	if !aeq(0, kde.Mean()) || !aeq(2.5+0.25, kde.Variance()) {
		t.Errorf("Mean, Variance = %v, %v; want 0, 2.75", kde.Mean(), kde.Variance())
	}
	if kde.Bandwidth() != 0.5 {
		t.Errorf("Bandwidth = %v; want 0.5", kde.Bandwidth())
	}

	ys := kde.PDFEach([]float64{-1, 1})
	if len(ys) != 2 || !aeq(ys[0], ys[1]) {
		t.Errorf("PDFEach = %v", ys)
	}
}

func TestKDEBandwidthPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("KDE with zero bandwidth did not panic")
		}
	}()
	KDE{}.From(Sample{Xs: []float64{1}})
}
