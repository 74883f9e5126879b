// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report renders statlab results for a terminal: tables for
// statistics and estimates, and ASCII plots for charts.
package report // import "github.com/statteach/statlab/report"

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/message"

	"github.com/statteach/statlab/insight"
	"github.com/statteach/statlab/stats"
)

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	t := tablewriter.NewWriter(w)
	t.SetAutoFormatHeaders(false)
	t.SetAutoWrapText(false)
	t.SetHeader(header)
	return t
}

// num formats a statistic for display.
func num(x float64) string {
	return fmt.Sprintf("%.6g", x)
}

// Description writes the descriptive statistics table of d followed
// by a short reading of its shape.
func Description(w io.Writer, p *message.Printer, d *stats.Description) {
	fmt.Fprintln(w, p.Sprintf("Descriptive Statistical Analysis"))
	t := newTable(w, p.Sprintf("Statistical Indicator"), p.Sprintf("Value"))
	t.SetAlignment(tablewriter.ALIGN_RIGHT)
	modes := make([]string, len(d.Mode))
	for i, m := range d.Mode {
		modes[i] = num(m)
	}
	for _, row := range [][2]string{
		{"Sample Size", fmt.Sprint(d.N)},
		{"Sum", num(d.Sum)},
		{"Mean", num(d.Mean)},
		{"Median", num(d.Median)},
		{"Mode", strings.Join(modes, ", ")},
		{"Minimum", num(d.Min)},
		{"Maximum", num(d.Max)},
		{"Range", num(d.Range)},
		{"First Quartile", num(d.Q1)},
		{"Third Quartile", num(d.Q3)},
		{"Interquartile Range", num(d.IQR)},
		{"Variance", num(d.Variance)},
		{"Standard Deviation", num(d.StdDev)},
		{"Skewness", num(d.Skewness)},
		{"Kurtosis", num(d.Kurtosis)},
		{"Coefficient of Variation", num(d.CoefficientOfVariation)},
	} {
		t.Append([]string{p.Sprintf(row[0]), row[1]})
	}
	t.Render()

	if d.Degenerate {
		fmt.Fprintln(w, p.Sprintf("All values are identical; skewness, kurtosis and coefficient of variation are reported as 0."))
		return
	}
	var skew, kurt string
	switch {
	case math.Abs(d.Skewness) < 0.5:
		skew = p.Sprintf("approximately symmetric")
	case d.Skewness > 0:
		skew = p.Sprintf("right-skewed (positive)")
	default:
		skew = p.Sprintf("left-skewed (negative)")
	}
	if d.Kurtosis > 0 {
		kurt = p.Sprintf("leptokurtic")
	} else {
		kurt = p.Sprintf("platykurtic")
	}
	fmt.Fprintf(w, "• %s: %s\n", p.Sprintf("Skewness"), skew)
	fmt.Fprintf(w, "• %s: %s\n", p.Sprintf("Kurtosis"), kurt)
	variability := p.Sprintf("Coefficient of variation is %s", num(d.CoefficientOfVariation))
	if d.CoefficientOfVariation < 0.1 {
		variability += p.Sprintf(", low variability")
	}
	fmt.Fprintf(w, "• %s: %s\n", p.Sprintf("Variability"), variability)
}

// Estimation writes the MLE and MoM comparison table of e and a
// verdict on how well the two agree.
func Estimation(w io.Writer, p *message.Printer, e *stats.Estimation) {
	fmt.Fprintln(w, p.Sprintf(familyTitles[e.Family]))
	t := newTable(w,
		p.Sprintf("Parameter"), p.Sprintf("MLE"), p.Sprintf("MoM"),
		p.Sprintf("Difference"), p.Sprintf("Relative Difference (%%)"))
	t.SetAlignment(tablewriter.ALIGN_RIGHT)
	for _, pe := range e.Params {
		t.Append([]string{
			pe.Name,
			fmt.Sprintf("%.6f", pe.MLE),
			fmt.Sprintf("%.6f", pe.MoM),
			fmt.Sprintf("%.6f", pe.Difference),
			fmt.Sprintf("%.2f", pe.RelativeDifferencePercent),
		})
	}
	t.Render()
	switch e.Family {
	case stats.Binomial, stats.Gamma, stats.Beta:
		fmt.Fprintln(w, p.Sprintf("Note: the MLE column for this family uses moment matching, so it equals the MoM column."))
	}
	fmt.Fprintln(w, insight.Compare(e).Text(p))
}

var familyTitles = [...]string{
	stats.Normal:      "Normal Distribution N(μ, σ²)",
	stats.Uniform:     "Uniform Distribution U(a, b)",
	stats.Exponential: "Exponential Distribution Exp(λ)",
	stats.Poisson:     "Poisson Distribution Poisson(λ)",
	stats.Binomial:    "Binomial Distribution Binomial(n, p)",
	stats.Gamma:       "Gamma Distribution Gamma(k, θ)",
	stats.Beta:        "Beta Distribution Beta(α, β)",
}

// Insight writes the observations in r.
func Insight(w io.Writer, p *message.Printer, r *insight.Report) {
	fmt.Fprintln(w, p.Sprintf("Data Feature Analysis"))
	for _, f := range r.Features {
		fmt.Fprintf(w, "  • %s\n", f)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, p.Sprintf("Data Source Inference"))
	fmt.Fprintf(w, "  %s\n", r.Source)
	fmt.Fprintln(w)
	fmt.Fprintln(w, p.Sprintf("Research Direction Suggestions"))
	for _, d := range r.Directions {
		fmt.Fprintf(w, "  %s\n", d)
	}
}
