// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/statteach/statlab/insight"
	"github.com/statteach/statlab/report"
	"github.com/statteach/statlab/session"
	"github.com/statteach/statlab/stats"
)

func newDescribeCommand(cli *statlabCLI) *cobra.Command {
	var opts analysisOptions
	var brief bool

	cmd := &cobra.Command{
		Use:   "describe [OPTIONS]",
		Short: "Print descriptive statistics of a sample",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := opts.session(cli, cmd)
			if err != nil {
				return err
			}
			if brief {
				sample, _ := sess.Sample()
				printBrief(cli, sample)
				return nil
			}
			d, err := sess.Describe()
			if err != nil {
				return err
			}
			report.Description(cli.out, cli.printer(), d)
			return nil
		},
	}
	flags := cmd.Flags()
	opts.addFileFlag(flags)
	flags.BoolVar(&brief, "brief", false, "Print a one-line summary and quantiles only")
	return cmd
}

// printBrief prints the sample moments on one line followed by its
// quartiles and tails.
func printBrief(cli *statlabCLI, sample stats.Sample) {
	s := sample.Copy().Sort()
	fmt.Fprintf(cli.out, "N %d  sum %.6g  mean %.6g", len(s.Xs), s.Sum(), s.Mean())
	fmt.Fprintf(cli.out, "  std dev %.6g  variance %.6g\n", s.StdDev(), s.Variance())
	fmt.Fprintln(cli.out)

	labels := map[int]string{0: "min", 50: "median", 100: "max"}
	for _, p := range []int{0, 1, 5, 25, 50, 75, 95, 99, 100} {
		label, ok := labels[p]
		if !ok {
			label = fmt.Sprintf("%d%%ile", p)
		}
		fmt.Fprintf(cli.out, "%8s %.6g\n", label, s.InterpolatedQuantile(float64(p)/100))
	}
}

func newEstimateCommand(cli *statlabCLI) *cobra.Command {
	var opts analysisOptions

	cmd := &cobra.Command{
		Use:   "estimate [OPTIONS]",
		Short: "Compare MLE and method of moments parameter estimates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := opts.session(cli, cmd)
			if err != nil {
				return err
			}
			e, err := sess.Estimate()
			if err != nil {
				return err
			}
			report.Estimation(cli.out, cli.printer(), e)
			return nil
		},
	}
	flags := cmd.Flags()
	opts.addFileFlag(flags)
	opts.addFamilyFlag(flags)
	return cmd
}

func newChartCommand(cli *statlabCLI) *cobra.Command {
	var opts analysisOptions

	cmd := &cobra.Command{
		Use:       "chart [OPTIONS] KIND",
		Short:     "Draw a chart of a sample",
		Long:      "Draw a chart of a sample. KIND is one of: " + strings.Join(session.Kinds, ", ") + ".",
		Args:      cobra.ExactArgs(1),
		ValidArgs: session.Kinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := opts.session(cli, cmd)
			if err != nil {
				return err
			}
			v, err := sess.Chart(args[0])
			if err != nil {
				return err
			}
			return report.Chart(cli.out, cli.printer(), v)
		},
	}
	flags := cmd.Flags()
	opts.addFileFlag(flags)
	opts.addFamilyFlag(flags)
	opts.addChartFlags(flags)
	return cmd
}

func newInsightCommand(cli *statlabCLI) *cobra.Command {
	var opts analysisOptions

	cmd := &cobra.Command{
		Use:   "insight [OPTIONS]",
		Short: "Describe the features and likely origin of a sample",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := opts.session(cli, cmd)
			if err != nil {
				return err
			}
			sample, _ := sess.Sample()
			r, err := insight.Analyze(sample, cli.printer())
			if err != nil {
				return err
			}
			report.Insight(cli.out, cli.printer(), r)
			return nil
		},
	}
	opts.addFileFlag(cmd.Flags())
	return cmd
}
