// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"sort"
	"testing"
)

func aeq(expect, got float64) bool {
	return math.Abs(expect-got) < 0.00001
}

// testFunc checks f against each input/output pair in vals.
func testFunc(t *testing.T, name string, f func(float64) float64, vals map[float64]float64) {
	t.Helper()
	xs := make([]float64, 0, len(vals))
	for x := range vals {
		xs = append(xs, x)
	}
	sort.Float64s(xs)

	for _, x := range xs {
		want, got := vals[x], f(x)
		if math.IsNaN(want) && math.IsNaN(got) || aeq(want, got) {
			continue
		}
		t.Errorf("%s(%v) = %v; want %v", name, x, got, want)
	}
}

// testDiscreteCDF checks that the CDF of a discrete distribution is
// the running sum of its PMF, including between integer points.
func testDiscreteCDF(t *testing.T, name string, dist interface {
	PMF(float64) float64
	CDF(float64) float64
	Bounds() (float64, float64)
}) {
	t.Helper()
	lo, hi := dist.Bounds()
	sum := 0.0
	for k := lo - 1; k <= hi+1; k++ {
		sum += dist.PMF(k)
		for _, off := range []float64{0, 0.5} {
			x := k + off
			if got := dist.CDF(x); !aeq(sum, got) {
				t.Errorf("%s(%v) = %v; want %v", name, x, got, sum)
			}
		}
	}
	if got := dist.CDF(hi + 10); got != 1 {
		t.Errorf("%s(%v) = %v; want 1", name, hi+10, got)
	}
}
