// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import "github.com/statteach/statlab/stats"

// MovingAverageWindow is the number of trailing values averaged by
// Line.
const MovingAverageWindow = 5

// A SeriesPoint is a sample value at its position in the sample.
type SeriesPoint struct {
	Index int     `json:"index"`
	Value float64 `json:"value"`

	// MovingAverage is the mean of this value and the preceding
	// MovingAverageWindow-1 values. It is only set by Line, and only
	// when HasMovingAverage is true.
	MovingAverage    float64 `json:"movingAverage,omitempty"`
	HasMovingAverage bool    `json:"hasMovingAverage,omitempty"`
}

// Scatter returns the values of s paired with their indexes, in
// sample order.
func Scatter(s stats.Sample) ([]SeriesPoint, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	pts := make([]SeriesPoint, len(s.Xs))
	for i, x := range s.Xs {
		pts[i] = SeriesPoint{Index: i, Value: x}
	}
	return pts, nil
}

// Line is like Scatter, but also computes a trailing moving average
// for every point from index MovingAverageWindow-1 on.
func Line(s stats.Sample) ([]SeriesPoint, error) {
	pts, err := Scatter(s)
	if err != nil {
		return nil, err
	}
	sum := 0.0
	for i, x := range s.Xs {
		sum += x
		if i >= MovingAverageWindow {
			sum -= s.Xs[i-MovingAverageWindow]
		}
		if i >= MovingAverageWindow-1 {
			pts[i].MovingAverage = sum / MovingAverageWindow
			pts[i].HasMovingAverage = true
		}
	}
	return pts, nil
}
