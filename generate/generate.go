// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package generate draws synthetic samples from the supported
// distribution families, for use as example input data.
package generate // import "github.com/statteach/statlab/generate"

import (
	"math/rand/v2"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/statteach/statlab/stats"
)

// ErrInvalidParams is returned, wrapped with the violated constraint,
// when a sample size or distribution parameter is out of range.
var ErrInvalidParams = errors.New("invalid generator parameters")

// Sample sizes accepted by Sample.
const (
	MinSize = 10
	MaxSize = 1000
)

// Params holds the parameters of every family. Each family reads
// only its own fields.
type Params struct {
	Mean   float64 `json:"mean"`   // normal
	StdDev float64 `json:"std"`    // normal
	Min    float64 `json:"min"`    // uniform
	Max    float64 `json:"max"`    // uniform
	Lambda float64 `json:"lambda"` // exponential
	Rate   float64 `json:"rate"`   // poisson

	// Trials and Probability parameterize the binomial.
	Trials      int     `json:"trials"`
	Probability float64 `json:"probability"`

	// Shape and Scale parameterize the gamma. The rate is 1/Scale.
	Shape float64 `json:"shape"`
	Scale float64 `json:"scale"`

	Alpha float64 `json:"alpha"` // beta
	Beta  float64 `json:"beta"`  // beta
}

// DefaultParams returns the parameters used when the caller does not
// set them.
func DefaultParams() Params {
	return Params{
		Mean:        0,
		StdDev:      1,
		Min:         0,
		Max:         1,
		Lambda:      1,
		Rate:        1,
		Trials:      10,
		Probability: 0.5,
		Shape:       2,
		Scale:       1,
		Alpha:       2,
		Beta:        2,
	}
}

// DefaultSize is the sample size used when the caller does not set
// one.
const DefaultSize = 100

// Validate checks the parameters of family f and returns an error
// wrapping ErrInvalidParams that names the first violated constraint.
func (p Params) Validate(f stats.Family) error {
	var msg string
	switch f {
	case stats.Normal:
		if !(p.StdDev > 0) {
			msg = "standard deviation must be greater than 0"
		}
	case stats.Uniform:
		if !(p.Max > p.Min) {
			msg = "maximum value must be greater than minimum value"
		}
	case stats.Exponential:
		if !(p.Lambda > 0) {
			msg = "lambda parameter must be greater than 0"
		}
	case stats.Poisson:
		if !(p.Rate > 0) {
			msg = "rate parameter must be greater than 0"
		}
	case stats.Binomial:
		if p.Trials <= 0 || !(p.Probability >= 0 && p.Probability <= 1) {
			msg = "number of trials must be greater than 0, probability must be between 0 and 1"
		}
	case stats.Gamma:
		if !(p.Shape > 0) || !(p.Scale > 0) {
			msg = "shape parameter and scale parameter must be greater than 0"
		}
	case stats.Beta:
		if !(p.Alpha > 0) || !(p.Beta > 0) {
			msg = "alpha and beta parameters must be greater than 0"
		}
	default:
		return errors.Wrapf(stats.ErrUnknownFamily, "%v", f)
	}
	if msg != "" {
		return errors.Wrap(ErrInvalidParams, msg)
	}
	return nil
}

// A variate draws one random value.
type variate interface {
	Rand() float64
}

func (p Params) variate(f stats.Family, src rand.Source) variate {
	switch f {
	case stats.Normal:
		return distuv.Normal{Mu: p.Mean, Sigma: p.StdDev, Src: src}
	case stats.Uniform:
		return distuv.Uniform{Min: p.Min, Max: p.Max, Src: src}
	case stats.Exponential:
		return distuv.Exponential{Rate: p.Lambda, Src: src}
	case stats.Poisson:
		return distuv.Poisson{Lambda: p.Rate, Src: src}
	case stats.Binomial:
		return distuv.Binomial{N: float64(p.Trials), P: p.Probability, Src: src}
	case stats.Gamma:
		return distuv.Gamma{Alpha: p.Shape, Beta: 1 / p.Scale, Src: src}
	case stats.Beta:
		return distuv.Beta{Alpha: p.Alpha, Beta: p.Beta, Src: src}
	}
	panic("generate: unreachable family " + f.String())
}

// Sample draws n values from family f with parameters p.
//
// n must be between MinSize and MaxSize. If src is nil, a randomly
// seeded source is used; pass a seeded source for reproducible
// output.
func Sample(f stats.Family, p Params, n int, src rand.Source) ([]float64, error) {
	if n < MinSize || n > MaxSize {
		return nil, errors.Wrapf(ErrInvalidParams, "sample size must be between %d and %d", MinSize, MaxSize)
	}
	if err := p.Validate(f); err != nil {
		return nil, err
	}
	if src == nil {
		src = newSource()
	}

	v := p.variate(f, src)
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = v.Rand()
	}
	return xs, nil
}

func newSource() rand.Source {
	return rand.NewPCG(rand.Uint64(), rand.Uint64())
}
