// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"
)

// Estimation is the result of estimating a family's parameters from
// a sample by both maximum likelihood (MLE) and the method of moments
// (MoM).
type Estimation struct {
	Family Family

	// Params holds one entry per parameter, in the order given by
	// Family.Params.
	Params []ParamEstimate
}

// ParamEstimate compares the MLE and MoM estimates of one parameter.
type ParamEstimate struct {
	Name string
	MLE  float64
	MoM  float64

	// Difference is |MLE - MoM|.
	Difference float64

	// RelativeDifferencePercent is Difference as a percentage of
	// max(|MLE|, |MoM|), or 0 if both estimates are 0.
	RelativeDifferencePercent float64
}

// Param returns the estimate of the named parameter.
func (e *Estimation) Param(name string) (ParamEstimate, bool) {
	for _, p := range e.Params {
		if p.Name == name {
			return p, true
		}
	}
	return ParamEstimate{}, false
}

type estimator struct {
	params []string
	mle    func(Sample) ([]float64, error)
	mom    func(Sample) ([]float64, error)
}

// estimators maps each Family to its parameter names and estimators.
//
// For the binomial, gamma and beta families, the "MLE" column is not
// a likelihood maximization: it is the same closed-form moment match
// used for MoM. A true binomial MLE needs a known trial count, and
// the gamma and beta MLEs need iterative optimization; neither is
// performed here. Both columns are reported so the families present
// uniformly, but for these three they are always equal.
var estimators = [...]estimator{
	Normal:      {[]string{"mean", "variance", "std"}, estimateNormal, estimateNormal},
	Uniform:     {[]string{"a", "b", "mean"}, estimateUniformMLE, estimateUniformMoM},
	Exponential: {[]string{"lambda", "mean", "variance"}, estimateExponential, estimateExponential},
	Poisson:     {[]string{"lambda", "mean", "variance"}, estimatePoisson, estimatePoisson},
	Binomial:    {[]string{"n", "p"}, estimateBinomialHeuristic, estimateBinomialHeuristic},
	Gamma:       {[]string{"shape", "rate", "scale"}, estimateGammaByMomentMatching, estimateGammaByMomentMatching},
	Beta:        {[]string{"alpha", "beta", "min", "max"}, estimateBetaByMomentMatching, estimateBetaByMomentMatching},
}

// Estimate estimates the parameters of family f from s.
//
// The result is deterministic in s and f. It returns ErrEmptySample
// or ErrNonFinite for invalid samples, ErrUnknownFamily for an
// unsupported family, and ErrDegenerate if the family's estimate is
// not finite for s (an exponential rate or gamma scale from a sample
// whose mean is zero or too close to zero to invert).
func Estimate(s Sample, f Family) (*Estimation, error) {
	if f < 0 || int(f) >= len(estimators) {
		return nil, fmt.Errorf("%w: %v", ErrUnknownFamily, f)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	est := estimators[f]
	mle, err := est.mle(s)
	if err != nil {
		return nil, err
	}
	mom, err := est.mom(s)
	if err != nil {
		return nil, err
	}

	e := &Estimation{Family: f, Params: make([]ParamEstimate, len(est.params))}
	for i, name := range est.params {
		e.Params[i] = compareEstimates(name, mle[i], mom[i])
	}
	return e, nil
}

func compareEstimates(name string, mle, mom float64) ParamEstimate {
	p := ParamEstimate{Name: name, MLE: mle, MoM: mom}
	p.Difference = math.Abs(mle - mom)
	if scale := math.Max(math.Abs(mle), math.Abs(mom)); scale > 0 {
		p.RelativeDifferencePercent = p.Difference / scale * 100
	}
	return p
}

// minVariance floors variances used as divisors by the moment
// matching estimators.
const minVariance = 1e-10

// estimateNormal returns the mean, population variance and standard
// deviation. The normal MLE and MoM coincide.
func estimateNormal(s Sample) ([]float64, error) {
	v := s.Variance()
	return []float64{s.Mean(), v, math.Sqrt(v)}, nil
}

// estimateUniformMLE returns the sample extremes and their midpoint.
func estimateUniformMLE(s Sample) ([]float64, error) {
	a, b := s.Bounds()
	return []float64{a, b, (a + b) / 2}, nil
}

// estimateUniformMoM solves Var = (b-a)²/12 for an interval centered
// on the sample mean.
func estimateUniformMoM(s Sample) ([]float64, error) {
	mean := s.Mean()
	width := math.Sqrt(12 * s.Variance())
	return []float64{mean - width/2, mean + width/2, mean}, nil
}

func estimateExponential(s Sample) ([]float64, error) {
	mean := s.Mean()
	lambda := 1 / mean
	if math.IsInf(lambda, 0) {
		return nil, ErrDegenerate
	}
	return []float64{lambda, mean, 1 / (lambda * lambda)}, nil
}

func estimatePoisson(s Sample) ([]float64, error) {
	mean := s.Mean()
	return []float64{mean, mean, mean}, nil
}

// estimateBinomialHeuristic guesses the trial count as the largest
// observation (at least 10) and derives the success probability
// from the mean, clamped to [0.01, 0.99].
func estimateBinomialHeuristic(s Sample) ([]float64, error) {
	_, max := s.Bounds()
	n := math.Max(max, 10)
	p := math.Min(math.Max(s.Mean()/n, 0.01), 0.99)
	return []float64{n, p}, nil
}

// estimateGammaByMomentMatching matches the gamma mean k/θ and
// variance k/θ² (θ being the rate). Shape and rate are floored at
// 0.1; scale is the reciprocal of the unfloored rate.
func estimateGammaByMomentMatching(s Sample) ([]float64, error) {
	mean := s.Mean()
	v := math.Max(s.Variance(), minVariance)
	rate := mean / v
	if rate == 0 || math.IsInf(1/rate, 0) {
		return nil, ErrDegenerate
	}
	shape := mean * mean / v
	return []float64{math.Max(shape, 0.1), math.Max(rate, 0.1), 1 / rate}, nil
}

// estimateBetaByMomentMatching rescales the sample onto [0, 1] using
// its extremes and matches the beta mean and variance. The variance
// is clamped to [1e-10, 0.24], just under the 0.25 bound for data on
// the unit interval, and both shapes are floored at 0.1. The
// original extremes are reported alongside the shapes.
func estimateBetaByMomentMatching(s Sample) ([]float64, error) {
	lo, hi := s.Bounds()
	width := hi - lo

	unit := Sample{Xs: make([]float64, len(s.Xs))}
	for i, x := range s.Xs {
		if width > 0 {
			unit.Xs[i] = (x - lo) / width
		} else {
			unit.Xs[i] = 0.5
		}
	}

	m := unit.Mean()
	v := math.Max(math.Min(unit.Variance(), 0.24), minVariance)
	t := m*(1-m)/v - 1
	alpha := math.Max(m*t, 0.1)
	beta := math.Max((1-m)*t, 0.1)
	return []float64{alpha, beta, lo, hi}, nil
}
