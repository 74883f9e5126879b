// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package generate

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Mock returns n values that look like noisy real-world measurements:
// 80% are drawn from N(50, 15²) and the rest are outliers, split
// evenly between U(100, 200) and U(0, 50).
//
// If src is nil, a randomly seeded source is used.
func Mock(n int, src rand.Source) []float64 {
	if src == nil {
		src = newSource()
	}
	r := rand.New(src)
	body := distuv.Normal{Mu: 50, Sigma: 15, Src: src}
	high := distuv.Uniform{Min: 100, Max: 200, Src: src}
	low := distuv.Uniform{Min: 0, Max: 50, Src: src}

	xs := make([]float64, n)
	for i := range xs {
		switch {
		case r.Float64() < 0.8:
			xs[i] = body.Rand()
		case r.Float64() > 0.5:
			xs[i] = high.Rand()
		default:
			xs[i] = low.Rand()
		}
	}
	return xs
}
