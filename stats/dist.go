// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/stat/distuv"
)

// A Dist is a parameterized statistical distribution.
type Dist interface {
	// CDF returns the value of the cumulative distribution
	// function for this distribution at x.
	CDF(x float64) float64

	// Mean returns the mean of the distribution.
	Mean() float64

	// Variance returns the variance of the distribution.
	Variance() float64
}

// Family is one of the distribution families supported by Estimate.
type Family int

const (
	Normal Family = iota
	Uniform
	Exponential
	Poisson
	Binomial
	Gamma
	Beta
)

var familyNames = [...]string{
	Normal:      "normal",
	Uniform:     "uniform",
	Exponential: "exponential",
	Poisson:     "poisson",
	Binomial:    "binomial",
	Gamma:       "gamma",
	Beta:        "beta",
}

// Families returns every supported family in display order.
func Families() []Family {
	return []Family{Normal, Uniform, Exponential, Poisson, Binomial, Gamma, Beta}
}

func (f Family) String() string {
	if f < 0 || int(f) >= len(familyNames) {
		return fmt.Sprintf("Family(%d)", int(f))
	}
	return familyNames[f]
}

// ParseFamily returns the Family with the given name. Matching is
// case-insensitive.
func ParseFamily(name string) (Family, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for f, n := range familyNames {
		if n == name {
			return Family(f), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFamily, name)
}

// Params returns the names of the parameters Estimate reports for f,
// in order.
func (f Family) Params() []string {
	return append([]string(nil), estimators[f].params...)
}

// Fit returns the distribution of e's family using its MLE column.
//
// For the uniform family the fitted support is [a, b]; for beta, the
// distribution is mapped back onto the sample's original [min, max]
// interval.
func Fit(e *Estimation) (Dist, error) {
	mle := func(name string) float64 {
		p, _ := e.Param(name)
		return p.MLE
	}
	switch e.Family {
	case Normal:
		if mle("std") <= 0 {
			return nil, ErrDegenerate
		}
		return distuv.Normal{Mu: mle("mean"), Sigma: mle("std")}, nil
	case Uniform:
		if mle("b") <= mle("a") {
			return nil, ErrDegenerate
		}
		return distuv.Uniform{Min: mle("a"), Max: mle("b")}, nil
	case Exponential:
		if mle("lambda") <= 0 {
			return nil, ErrDegenerate
		}
		return distuv.Exponential{Rate: mle("lambda")}, nil
	case Poisson:
		if mle("lambda") <= 0 {
			return nil, ErrDegenerate
		}
		return distuv.Poisson{Lambda: mle("lambda")}, nil
	case Binomial:
		return BinomialDist{N: int(math.Round(mle("n"))), P: mle("p")}, nil
	case Gamma:
		return distuv.Gamma{Alpha: mle("shape"), Beta: mle("rate")}, nil
	case Beta:
		lo, hi := mle("min"), mle("max")
		if hi <= lo {
			return nil, ErrDegenerate
		}
		return scaledDist{distuv.Beta{Alpha: mle("alpha"), Beta: mle("beta")}, lo, hi - lo}, nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownFamily, e.Family)
}

// scaledDist is the distribution of loc + scale*X for X ~ d.
type scaledDist struct {
	d          Dist
	loc, scale float64
}

func (s scaledDist) CDF(x float64) float64 {
	return s.d.CDF((x - s.loc) / s.scale)
}

func (s scaledDist) Mean() float64 {
	return s.loc + s.scale*s.d.Mean()
}

func (s scaledDist) Variance() float64 {
	return s.scale * s.scale * s.d.Variance()
}
