// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats computes descriptive statistics and distribution
// parameter estimates for one-dimensional samples.
//
// Everything in this package is a pure function of its inputs. Results
// are never updated incrementally: callers recompute from scratch
// whenever the sample changes.
package stats // import "github.com/statteach/statlab/stats"

import (
	"errors"
	"math"
)

var inf = math.Inf(1)
var nan = math.NaN()

var (
	// ErrEmptySample is returned when an operation that requires
	// at least one observation is given an empty sample.
	ErrEmptySample = errors.New("sample is empty")

	// ErrNonFinite is returned when a sample contains NaN or an
	// infinity.
	ErrNonFinite = errors.New("sample contains a non-finite value")

	// ErrUnknownFamily is returned by ParseFamily for names that
	// are not one of the supported distribution families.
	ErrUnknownFamily = errors.New("unknown distribution family")

	// ErrDegenerate is returned when an estimator's result would
	// be non-finite for the given sample.
	ErrDegenerate = errors.New("sample is degenerate for this estimator")
)
