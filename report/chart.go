// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"fmt"
	"io"
	"math"

	"github.com/guptarohit/asciigraph"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"golang.org/x/text/message"

	"github.com/statteach/statlab/chart"
)

// Plot dimensions in terminal cells.
const (
	plotHeight = 12
	plotWidth  = 70
)

// ErrUnknownResult is returned by Chart for values it cannot render.
var ErrUnknownResult = errors.New("cannot render chart result")

// Chart renders a chart result as returned by session.Session.Chart.
func Chart(w io.Writer, p *message.Printer, v any) error {
	switch v := v.(type) {
	case []chart.Bin:
		histogram(w, p, v)
	case *chart.Box:
		boxplot(w, p, v)
	case []chart.DensityPoint:
		density(w, p, v)
	case []chart.PieSlice:
		pie(w, p, v)
	case []chart.RadarAxis:
		radar(w, p, v)
	case []chart.SeriesPoint:
		series(w, p, v)
	case []chart.ExpectedBin:
		overlay(w, p, v)
	default:
		return errors.Wrapf(ErrUnknownResult, "%T", v)
	}
	return nil
}

func plot(w io.Writer, caption string, series ...[]float64) {
	opts := []asciigraph.Option{
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(caption),
	}
	if len(series) == 1 {
		fmt.Fprintln(w, asciigraph.Plot(series[0], opts...))
	} else {
		fmt.Fprintln(w, asciigraph.PlotMany(series, opts...))
	}
}

func interval(lo, hi float64) string {
	return fmt.Sprintf("[%s, %s)", num(lo), num(hi))
}

func histogram(w io.Writer, p *message.Printer, bins []chart.Bin) {
	t := newTable(w, p.Sprintf("Interval"), p.Sprintf("Midpoint"), p.Sprintf("Frequency"))
	counts := make([]float64, len(bins))
	for i, b := range bins {
		t.Append([]string{interval(b.Lo, b.Hi), num(b.Mid), fmt.Sprint(b.Count)})
		counts[i] = float64(b.Count)
	}
	t.Render()
	if len(counts) > 1 {
		plot(w, p.Sprintf("Frequency"), counts)
	}
}

func boxplot(w io.Writer, p *message.Printer, b *chart.Box) {
	t := newTable(w, p.Sprintf("Statistical Indicator"), p.Sprintf("Value"))
	t.SetAlignment(tablewriter.ALIGN_RIGHT)
	for _, row := range []struct {
		label string
		x     float64
	}{
		{"Lower Whisker", b.Min},
		{"First Quartile", b.Q1},
		{"Median", b.Median},
		{"Third Quartile", b.Q3},
		{"Upper Whisker", b.Max},
		{"Lower Fence", b.LowerFence},
		{"Upper Fence", b.UpperFence},
	} {
		t.Append([]string{p.Sprintf(row.label), num(row.x)})
	}
	t.Render()
	outliers := make([]string, len(b.Outliers))
	for i, x := range b.Outliers {
		outliers[i] = num(x)
	}
	fmt.Fprintf(w, "%s (%d): %v\n", p.Sprintf("Outliers"), len(b.Outliers), outliers)
}

func density(w io.Writer, p *message.Printer, pts []chart.DensityPoint) {
	ys := make([]float64, len(pts))
	for i, pt := range pts {
		ys[i] = pt.Density
	}
	plot(w, p.Sprintf("Density over [%s, %s]", num(pts[0].X), num(pts[len(pts)-1].X)), ys)
}

func pie(w io.Writer, p *message.Printer, slices []chart.PieSlice) {
	t := newTable(w, p.Sprintf("Category"), p.Sprintf("Frequency"), p.Sprintf("Percentage"))
	for _, s := range slices {
		t.Append([]string{s.Label, fmt.Sprint(s.Count), fmt.Sprintf("%.1f%%", s.Percent)})
	}
	t.Render()
}

var radarLabels = map[string]string{
	"min":    "Minimum",
	"q1":     "First Quartile",
	"median": "Median",
	"mean":   "Mean",
	"q3":     "Third Quartile",
	"max":    "Maximum",
}

func radar(w io.Writer, p *message.Printer, axes []chart.RadarAxis) {
	t := newTable(w, p.Sprintf("Statistical Indicator"), p.Sprintf("Value"), p.Sprintf("Relative Proportion"))
	for _, a := range axes {
		t.Append([]string{p.Sprintf(radarLabels[a.Name]), num(a.Value), fmt.Sprintf("%.1f%%", a.Ratio*100)})
	}
	t.Render()
}

func series(w io.Writer, p *message.Printer, pts []chart.SeriesPoint) {
	values := make([]float64, len(pts))
	avg := make([]float64, len(pts))
	hasAvg := false
	for i, pt := range pts {
		values[i] = pt.Value
		avg[i] = math.NaN()
		if pt.HasMovingAverage {
			avg[i], hasAvg = pt.MovingAverage, true
		}
	}
	if len(values) < 2 {
		fmt.Fprintf(w, "0: %s\n", num(values[0]))
		return
	}
	if hasAvg {
		plot(w, p.Sprintf("Value and %d-point moving average by index", chart.MovingAverageWindow), values, avg)
		return
	}
	plot(w, p.Sprintf("Value by index"), values)
}

func overlay(w io.Writer, p *message.Printer, bins []chart.ExpectedBin) {
	t := newTable(w, p.Sprintf("Interval"), p.Sprintf("Frequency"), p.Sprintf("Expected"))
	observed := make([]float64, len(bins))
	expected := make([]float64, len(bins))
	for i, b := range bins {
		t.Append([]string{interval(b.Lo, b.Hi), fmt.Sprint(b.Count), fmt.Sprintf("%.2f", b.Expected)})
		observed[i], expected[i] = float64(b.Count), b.Expected
	}
	t.Render()
	if len(bins) > 1 {
		plot(w, p.Sprintf("Observed and expected frequency"), observed, expected)
	}
}
