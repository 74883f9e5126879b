// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package session holds the state of one statlab session: the current
// sample, the report language and the chart and estimation settings.
package session // import "github.com/statteach/statlab/session"

import (
	"github.com/pkg/errors"

	"github.com/statteach/statlab/chart"
	"github.com/statteach/statlab/stats"
)

// Settings are the user-controlled parameters of the analyses.
type Settings struct {
	Lang string

	// Bins is the histogram bin count.
	Bins int

	// Smoothing scales the density bandwidth.
	Smoothing float64

	// PieCategories is the number of pie chart categories.
	PieCategories int

	// Family is the distribution family for estimation.
	Family stats.Family
}

// DefaultSettings returns the settings of a new session.
func DefaultSettings() Settings {
	return Settings{
		Lang:          "zh",
		Bins:          10,
		Smoothing:     1,
		PieCategories: chart.DefaultPieCategories,
		Family:        stats.Normal,
	}
}

// Validate reports the first setting that is out of range.
func (s Settings) Validate() error {
	switch {
	case s.Bins < 1:
		return errors.Wrapf(chart.ErrBinCount, "bins %d", s.Bins)
	case s.PieCategories < 1:
		return errors.Wrapf(chart.ErrBinCount, "pie categories %d", s.PieCategories)
	case !(s.Smoothing > 0):
		return errors.Wrapf(chart.ErrZeroBandwidth, "smoothing %v", s.Smoothing)
	}
	_, err := stats.ParseFamily(s.Family.String())
	return err
}

// A Session holds at most one sample at a time. Results derived from
// the sample are computed on demand and cached until the sample or the
// setting they depend on changes.
//
// A Session is not safe for concurrent use.
type Session struct {
	settings Settings
	sample   *stats.Sample

	desc *stats.Description
	est  map[stats.Family]*stats.Estimation
}

// New returns an empty session with the given settings.
func New(settings Settings) (*Session, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &Session{settings: settings}, nil
}

// Settings returns the current settings.
func (s *Session) Settings() Settings {
	return s.settings
}

// Update replaces the settings. Cached results that do not depend on
// the changed settings are kept.
func (s *Session) Update(settings Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	s.settings = settings
	return nil
}

// Replace makes xs the current sample, dropping every cached result.
// If xs is not a valid sample, the previous sample is discarded
// anyway and the session is left empty.
func (s *Session) Replace(xs []float64) error {
	s.Clear()
	sample := stats.Sample{Xs: append([]float64(nil), xs...)}
	if err := sample.Validate(); err != nil {
		return err
	}
	s.sample = &sample
	return nil
}

// Load replaces the current sample with the result of load. If load
// fails, the previous sample is discarded and the error returned.
func (s *Session) Load(load func() ([]float64, error)) error {
	xs, err := load()
	if err != nil {
		s.Clear()
		return err
	}
	return s.Replace(xs)
}

// Clear empties the session.
func (s *Session) Clear() {
	s.sample = nil
	s.desc = nil
	s.est = nil
}

// Sample returns the current sample and whether there is one.
func (s *Session) Sample() (stats.Sample, bool) {
	if s.sample == nil {
		return stats.Sample{}, false
	}
	return *s.sample, true
}

func (s *Session) current() (stats.Sample, error) {
	if s.sample == nil {
		return stats.Sample{}, stats.ErrEmptySample
	}
	return *s.sample, nil
}

// Describe returns the descriptive statistics of the current sample.
func (s *Session) Describe() (*stats.Description, error) {
	if s.desc != nil {
		return s.desc, nil
	}
	sample, err := s.current()
	if err != nil {
		return nil, err
	}
	if s.desc, err = stats.Describe(sample); err != nil {
		return nil, err
	}
	return s.desc, nil
}

// Estimate returns the parameter estimates of the current sample for
// the selected family.
func (s *Session) Estimate() (*stats.Estimation, error) {
	f := s.settings.Family
	if e, ok := s.est[f]; ok {
		return e, nil
	}
	sample, err := s.current()
	if err != nil {
		return nil, err
	}
	e, err := stats.Estimate(sample, f)
	if err != nil {
		return nil, err
	}
	if s.est == nil {
		s.est = make(map[stats.Family]*stats.Estimation)
	}
	s.est[f] = e
	return e, nil
}

// Chart kinds accepted by Chart.
const (
	KindHistogram = "histogram"
	KindBoxplot   = "boxplot"
	KindDensity   = "density"
	KindPie       = "pie"
	KindRadar     = "radar"
	KindLine      = "line"
	KindScatter   = "scatter"
	KindOverlay   = "overlay"
)

// Kinds lists the chart kinds in display order.
var Kinds = []string{KindHistogram, KindBoxplot, KindDensity, KindPie, KindRadar, KindLine, KindScatter, KindOverlay}

// ErrUnknownChart is returned by Chart for an unrecognized kind.
var ErrUnknownChart = errors.New("unknown chart kind")

// Chart computes the data for the named chart kind from the current
// sample and settings. The result is one of []chart.Bin, *chart.Box,
// []chart.DensityPoint, []chart.PieSlice, []chart.RadarAxis,
// []chart.SeriesPoint or []chart.ExpectedBin.
func (s *Session) Chart(kind string) (any, error) {
	sample, err := s.current()
	if err != nil {
		return nil, err
	}
	switch kind {
	case KindHistogram:
		return chart.Histogram(sample, s.settings.Bins)
	case KindBoxplot:
		return chart.BoxPlot(sample)
	case KindDensity:
		return chart.Density(sample, s.settings.Smoothing)
	case KindPie:
		return chart.Pie(sample, s.settings.PieCategories)
	case KindRadar:
		return chart.Radar(sample)
	case KindLine:
		return chart.Line(sample)
	case KindScatter:
		return chart.Scatter(sample)
	case KindOverlay:
		e, err := s.Estimate()
		if err != nil {
			return nil, err
		}
		dist, err := stats.Fit(e)
		if err != nil {
			return nil, err
		}
		return chart.Overlay(sample, s.settings.Bins, dist)
	}
	return nil, errors.Wrapf(ErrUnknownChart, "%q", kind)
}
