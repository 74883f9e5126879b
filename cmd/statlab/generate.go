// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"math/rand/v2"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/statteach/statlab/ai"
	"github.com/statteach/statlab/generate"
	"github.com/statteach/statlab/stats"
)

type generateOptions struct {
	family string
	size   int
	seed   uint64
	mock   bool
	params generate.Params
}

// source returns a PCG seeded with --seed, or nil for a random seed.
func (o *generateOptions) source(cmd *cobra.Command) rand.Source {
	if !cmd.Flags().Changed("seed") {
		return nil
	}
	return rand.NewPCG(o.seed, o.seed)
}

func newGenerateCommand(cli *statlabCLI) *cobra.Command {
	opts := generateOptions{params: generate.DefaultParams()}

	cmd := &cobra.Command{
		Use:   "generate [OPTIONS]",
		Short: "Draw a random sample from a distribution",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.mock {
				if opts.size < generate.MinSize || opts.size > generate.MaxSize {
					return errors.Wrapf(generate.ErrInvalidParams, "sample size must be between %d and %d", generate.MinSize, generate.MaxSize)
				}
				cli.writeSample(generate.Mock(opts.size, opts.source(cmd)))
				return nil
			}
			f, err := stats.ParseFamily(opts.family)
			if err != nil {
				return err
			}
			xs, err := generate.Sample(f, opts.params, opts.size, opts.source(cmd))
			if err != nil {
				return err
			}
			cli.log.WithField("family", f).WithField("n", len(xs)).Debug("generated sample")
			cli.writeSample(xs)
			return nil
		},
	}

	p := &opts.params
	flags := cmd.Flags()
	flags.StringVar(&opts.family, "family", stats.Normal.String(), "Distribution family")
	flags.IntVarP(&opts.size, "size", "n", generate.DefaultSize, "Sample size")
	flags.Uint64Var(&opts.seed, "seed", 0, "Random seed for reproducible output")
	flags.BoolVar(&opts.mock, "mock", false, "Generate mixed normal data with outliers instead of a family")
	flags.Float64Var(&p.Mean, "mean", p.Mean, "Normal mean")
	flags.Float64Var(&p.StdDev, "std", p.StdDev, "Normal standard deviation")
	flags.Float64Var(&p.Min, "min", p.Min, "Uniform lower bound")
	flags.Float64Var(&p.Max, "max", p.Max, "Uniform upper bound")
	flags.Float64Var(&p.Lambda, "lambda", p.Lambda, "Exponential rate")
	flags.Float64Var(&p.Rate, "rate", p.Rate, "Poisson mean")
	flags.IntVar(&p.Trials, "trials", p.Trials, "Binomial trial count")
	flags.Float64Var(&p.Probability, "probability", p.Probability, "Binomial success probability")
	flags.Float64Var(&p.Shape, "shape", p.Shape, "Gamma shape")
	flags.Float64Var(&p.Scale, "scale", p.Scale, "Gamma scale")
	flags.Float64Var(&p.Alpha, "alpha", p.Alpha, "Beta alpha")
	flags.Float64Var(&p.Beta, "beta", p.Beta, "Beta beta")
	return cmd
}

type aiOptions struct {
	size int
	mock bool
	seed uint64
}

func newAICommand(cli *statlabCLI) *cobra.Command {
	var opts aiOptions

	cmd := &cobra.Command{
		Use:   "ai [OPTIONS] PROMPT...",
		Short: "Generate a sample from a description with DashScope",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, err := cli.generator(opts.mock)
			if err != nil {
				return err
			}
			if m, ok := gen.(ai.MockGenerator); ok && cmd.Flags().Changed("seed") {
				m.Src = rand.NewPCG(opts.seed, opts.seed)
				gen = m
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), cli.cfg.AI.Timeout)
			defer cancel()
			xs, err := gen.Generate(ctx, strings.Join(args, " "), opts.size)
			if err != nil {
				return err
			}
			cli.writeSample(xs)
			return nil
		},
	}
	flags := cmd.Flags()
	flags.IntVarP(&opts.size, "size", "n", generate.DefaultSize, "Number of values to request")
	flags.BoolVar(&opts.mock, "mock", false, "Generate mock data locally instead of calling DashScope")
	flags.Uint64Var(&opts.seed, "seed", 0, "Random seed for --mock")
	return cmd
}

// generator returns the mock generator, or a DashScope client using
// the stored API key.
func (c *statlabCLI) generator(mock bool) (ai.Generator, error) {
	if mock {
		return ai.MockGenerator{}, nil
	}
	key, err := c.keystore().Get()
	if err != nil {
		return nil, err
	}
	return ai.NewClient(c.cfg.AI.Endpoint, c.cfg.AI.Model, key, c.cfg.AI.Timeout, c.log), nil
}
