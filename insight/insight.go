// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package insight turns a sample's summary statistics into short,
// rule-based observations for students: the shape of the data, a
// guess at where it came from and directions for further study.
package insight // import "github.com/statteach/statlab/insight"

import (
	"math"

	mstats "github.com/montanaflynn/stats"
	"golang.org/x/text/message"

	"github.com/statteach/statlab/stats"
)

// A Report holds the observations about one sample, already
// translated by the printer passed to Analyze.
type Report struct {
	// Features describe the shape, spread and range of the data.
	Features []string `json:"features"`

	// Source is a guess at the kind of process that produced the
	// data.
	Source string `json:"source"`

	// Directions suggests follow-up analyses.
	Directions []string `json:"directions"`

	// Outliers counts values beyond the inner Tukey fences, 1.5 IQR
	// outside the quartiles. The quartiles here are the medians of the
	// lower and upper halves of the data, excluding the median itself
	// when n is odd. chart.BoxPlot interpolates its quartiles instead,
	// so for small samples the two can flag different values.
	Outliers int `json:"outliers"`
}

// Thresholds for the shape rules.
const (
	symmetricSkewness = 0.5
	normalKurtosis    = 0.5
	lowVariability    = 0.1
	moderateVariation = 0.5
)

// Analyze describes s, writing text with p.
func Analyze(s stats.Sample, p *message.Printer) (*Report, error) {
	d, err := stats.Describe(s)
	if err != nil {
		return nil, err
	}
	r := &Report{}
	for _, key := range features(d) {
		r.Features = append(r.Features, p.Sprintf(key))
	}
	r.Source = p.Sprintf(source(d))
	for i, key := range directions {
		r.Directions = append(r.Directions, p.Sprintf("%d. "+key, i+1))
	}

	outliers, err := mstats.QuartileOutliers(mstats.Float64Data(s.Xs))
	if err == nil {
		r.Outliers = len(outliers.Mild) + len(outliers.Extreme)
	}
	if r.Outliers > 0 {
		r.Features = append(r.Features, p.Sprintf("%d values lie beyond the quartile fences and may be outliers", r.Outliers))
	}
	return r, nil
}

func features(d *stats.Description) []string {
	var keys []string
	switch {
	case math.Abs(d.Skewness) < symmetricSkewness:
		keys = append(keys, "Data distribution is approximately symmetric, consistent with normal distribution")
	case d.Skewness > 0:
		keys = append(keys, "Data shows right-skewed distribution with a few larger values")
	default:
		keys = append(keys, "Data shows left-skewed distribution with a few smaller values")
	}

	switch {
	case math.Abs(d.Kurtosis) < normalKurtosis:
		keys = append(keys, "Data kurtosis is close to normal distribution")
	case d.Kurtosis > 0:
		keys = append(keys, "Data shows leptokurtic distribution, with values concentrated in the middle")
	default:
		keys = append(keys, "Data shows platykurtic distribution, with values relatively dispersed")
	}

	switch cv := d.CoefficientOfVariation; {
	case cv < lowVariability:
		keys = append(keys, "Data shows very low variability, high consistency")
	case cv < moderateVariation:
		keys = append(keys, "Data shows moderate variability")
	default:
		keys = append(keys, "Data shows high variability, strong dispersion")
	}

	switch {
	case isProportion(d):
		keys = append(keys, "Data ranges between 0-1, possibly proportional data")
	case isCount(d) && d.Max < 100:
		keys = append(keys, "Data is non-negative integer with small range, possibly count data")
	case d.Mean > 0 && d.Mean < 10 && d.StdDev < d.Mean:
		keys = append(keys, "Data has moderate mean and standard deviation, possibly measurement data")
	}
	return keys
}

func source(d *stats.Description) string {
	switch {
	case isProportion(d):
		return "These data may come from probabilities, proportions, or normalized measurements, such as market share, investment returns, or normalized test scores."
	case isCount(d):
		return "These data may come from counting processes, such as user visits, product sales, event occurrences, or defect counts in quality control."
	case math.Abs(d.Mean) > 100:
		return "These data may come from financial indicators, demographic data, or physical measurements, such as stock prices, income levels, or temperature measurements."
	}
	return "These data may come from scientific experiments, survey research, or business analysis continuous variable measurements, such as time, length, weight, or satisfaction scores."
}

func isProportion(d *stats.Description) bool {
	return d.Min >= 0 && d.Max <= 1
}

// isCount reports whether the extremes are non-negative integers.
func isCount(d *stats.Description) bool {
	return d.Min >= 0 && d.Min == math.Trunc(d.Min) && d.Max == math.Trunc(d.Max)
}

var directions = []string{
	"Conduct hypothesis testing to verify if the data fits specific theoretical distributions",
	"Apply regression analysis to explore relationships between these data and other variables",
	"Perform time series analysis (if the data has a time dimension)",
	"Apply cluster analysis to identify natural groupings in the data",
	"Conduct outlier detection to identify potential anomalous data points",
}
