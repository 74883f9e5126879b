// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"errors"
	"math"
	"math/rand/v2"
	"reflect"
	"testing"
)

func TestDescribe(t *testing.T) {
	d, err := Describe(Sample{Xs: []float64{1, 2, 3, 4, 5}})
	if err != nil {
		t.Fatal(err)
	}

	check := func(name string, want, got float64) {
		t.Helper()
		if !aeq(want, got) {
			t.Errorf("%s = %v; want %v", name, got, want)
		}
	}
	if d.N != 5 {
		t.Errorf("N = %v; want 5", d.N)
	}
	check("Sum", 15, d.Sum)
	check("Mean", 3, d.Mean)
	check("Median", 3, d.Median)
	check("Min", 1, d.Min)
	check("Max", 5, d.Max)
	check("Range", 4, d.Range)
	check("Q1", 2, d.Q1)
	check("Q3", 4, d.Q3)
	check("IQR", 2, d.IQR)
	check("Variance", 2, d.Variance)
	check("StdDev", 1.4142135623730951, d.StdDev)
	check("Skewness", 0, d.Skewness)
	check("Kurtosis", -1.3, d.Kurtosis)
	check("CoefficientOfVariation", math.Sqrt2/3, d.CoefficientOfVariation)
	if d.Degenerate {
		t.Errorf("Degenerate = true; want false")
	}
	// Every value occurs once, so they all tie for the mode.
	if want := []float64{1, 2, 3, 4, 5}; !reflect.DeepEqual(d.Mode, want) {
		t.Errorf("Mode = %v; want %v", d.Mode, want)
	}
	if _, ok := d.UniqueMode(); ok {
		t.Errorf("UniqueMode reported a unique mode for %v", d.Mode)
	}
}

func TestDescribeEvenMedian(t *testing.T) {
	xs := []float64{7, 1, 3, 5}
	d, err := Describe(Sample{Xs: xs})
	if err != nil {
		t.Fatal(err)
	}
	if d.Median != 4 {
		t.Errorf("Median = %v; want 4", d.Median)
	}
	// floor(4*0.25) = 1 and floor(4*0.75) = 3 of [1 3 5 7].
	if d.Q1 != 3 || d.Q3 != 7 {
		t.Errorf("Q1, Q3 = %v, %v; want 3, 7", d.Q1, d.Q3)
	}
	if want := []float64{7, 1, 3, 5}; !reflect.DeepEqual(xs, want) {
		t.Errorf("Describe reordered its input: %v", xs)
	}
}

func TestDescribeMode(t *testing.T) {
	for _, test := range []struct {
		xs   []float64
		want []float64
	}{
		{[]float64{2, 1, 2, 3}, []float64{2}},
		{[]float64{3, 1, 3, 1, 2}, []float64{3, 1}},
		{[]float64{0, math.Copysign(0, -1), 1}, []float64{0}},
		{[]float64{4}, []float64{4}},
	} {
		d, err := Describe(Sample{Xs: test.xs})
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(d.Mode, test.want) {
			t.Errorf("Mode(%v) = %v; want %v", test.xs, d.Mode, test.want)
		}
	}

	d, _ := Describe(Sample{Xs: []float64{2, 1, 2, 3}})
	if m, ok := d.UniqueMode(); !ok || m != 2 {
		t.Errorf("UniqueMode = %v, %v; want 2, true", m, ok)
	}
}

func TestDescribeConstant(t *testing.T) {
	d, err := Describe(Sample{Xs: []float64{0.1, 0.1, 0.1, 0.1}})
	if err != nil {
		t.Fatal(err)
	}
	if d.Variance != 0 || d.StdDev != 0 || d.Range != 0 {
		t.Errorf("Variance, StdDev, Range = %v, %v, %v; want 0, 0, 0", d.Variance, d.StdDev, d.Range)
	}
	if !d.Degenerate {
		t.Errorf("Degenerate = false; want true")
	}
	if d.Skewness != 0 || d.Kurtosis != 0 || d.CoefficientOfVariation != 0 {
		t.Errorf("Skewness, Kurtosis, CV = %v, %v, %v; want 0, 0, 0", d.Skewness, d.Kurtosis, d.CoefficientOfVariation)
	}
}

func TestDescribeZeroMean(t *testing.T) {
	d, err := Describe(Sample{Xs: []float64{-1, 1}})
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsInf(d.CoefficientOfVariation, 1) {
		t.Errorf("CoefficientOfVariation = %v; want +Inf", d.CoefficientOfVariation)
	}
}

func TestDescribeMeanTimesN(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for trial := 0; trial < 100; trial++ {
		xs := make([]float64, 1+r.IntN(200))
		for i := range xs {
			xs[i] = r.NormFloat64()*100 + 20
		}
		d, err := Describe(Sample{Xs: xs})
		if err != nil {
			t.Fatal(err)
		}
		if diff := math.Abs(d.Mean*float64(d.N) - d.Sum); diff > 1e-9*math.Max(1, math.Abs(d.Sum)) {
			t.Errorf("mean*n = %v, sum = %v", d.Mean*float64(d.N), d.Sum)
		}
		if !(d.Min <= d.Q1 && d.Q1 <= d.Median && d.Median <= d.Q3 && d.Q3 <= d.Max) {
			t.Errorf("quartiles out of order: %+v", d)
		}
	}
}

func TestDescribeErrors(t *testing.T) {
	if _, err := Describe(Sample{}); !errors.Is(err, ErrEmptySample) {
		t.Errorf("Describe(empty) error = %v; want ErrEmptySample", err)
	}
	if _, err := Describe(Sample{Xs: []float64{1, nan}}); !errors.Is(err, ErrNonFinite) {
		t.Errorf("Describe(NaN) error = %v; want ErrNonFinite", err)
	}
}
