// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/text/message"

	"github.com/statteach/statlab/input"
	"github.com/statteach/statlab/internal/config"
	"github.com/statteach/statlab/internal/i18n"
	statlog "github.com/statteach/statlab/internal/log"
	"github.com/statteach/statlab/keystore"
	"github.com/statteach/statlab/session"
	"github.com/statteach/statlab/stats"
)

// statlabCLI holds the streams and configuration shared by every
// command.
type statlabCLI struct {
	in       io.Reader
	out, err io.Writer

	envFile string
	lang    string

	cfg *config.Config
	log *logrus.Logger
}

func newCLI(in io.Reader, out, err io.Writer) *statlabCLI {
	return &statlabCLI{in: in, out: out, err: err}
}

// loadConfig loads the configuration. It runs before every command, after
// flags are parsed.
func (c *statlabCLI) loadConfig() error {
	if err := config.LoadEnvFile(c.envFile); err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	c.cfg = cfg
	c.log = statlog.New(c.err, cfg.LogLevel)
	if c.lang == "" {
		c.lang = cfg.Lang
	}
	return nil
}

func (c *statlabCLI) printer() *message.Printer {
	return i18n.NewPrinter(c.lang)
}

func (c *statlabCLI) keystore() *keystore.Store {
	return keystore.New(c.cfg.AI.KeystorePath)
}

// readSample reads the numbers in file, or standard input if file is
// "-".
func (c *statlabCLI) readSample(file string) ([]float64, error) {
	if file == "" || file == "-" {
		return input.ParseText(c.in)
	}
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	xs, err := input.ParseFile(file, f)
	return xs, errors.Wrapf(err, "reading %s", file)
}

// writeSample writes xs one value per line under a header line, the
// form readSample accepts.
func (c *statlabCLI) writeSample(xs []float64) {
	fmt.Fprintln(c.out, "value")
	for _, x := range xs {
		fmt.Fprintln(c.out, strconv.FormatFloat(x, 'g', -1, 64))
	}
}

// defaultSettings returns the session settings given by the
// configuration.
func (c *statlabCLI) defaultSettings() session.Settings {
	return session.Settings{
		Lang:          c.lang,
		Bins:          c.cfg.Chart.Bins,
		Smoothing:     c.cfg.Chart.Smoothing,
		PieCategories: c.cfg.Chart.PieCategories,
		Family:        stats.Normal,
	}
}

func newRootCommand(cli *statlabCLI) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "statlab",
		Short:         "Describe samples and fit distributions",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return cli.loadConfig()
		},
	}
	cmd.SetIn(cli.in)
	cmd.SetOut(cli.out)
	cmd.SetErr(cli.err)

	flags := cmd.PersistentFlags()
	flags.StringVar(&cli.envFile, "env-file", ".env", "Load environment variables from this file if it exists")
	flags.StringVar(&cli.lang, "lang", "", "Report language, zh or en (default $STATLAB_LANG or zh)")

	cmd.AddCommand(
		newDescribeCommand(cli),
		newEstimateCommand(cli),
		newChartCommand(cli),
		newInsightCommand(cli),
		newGenerateCommand(cli),
		newAICommand(cli),
		newKeyCommand(cli),
		newServeCommand(cli),
	)
	return cmd
}

// analysisOptions are the flags shared by the commands that analyze
// a sample.
type analysisOptions struct {
	file          string
	family        string
	bins          int
	smoothing     float64
	pieCategories int
}

func (o *analysisOptions) addFileFlag(flags *pflag.FlagSet) {
	flags.StringVarP(&o.file, "file", "f", "-", "Read data from a text or .xlsx file, or STDIN ('-')")
}

func (o *analysisOptions) addFamilyFlag(flags *pflag.FlagSet) {
	flags.StringVar(&o.family, "family", stats.Normal.String(), "Distribution family")
}

func (o *analysisOptions) addChartFlags(flags *pflag.FlagSet) {
	flags.IntVar(&o.bins, "bins", 0, "Histogram bin count (default $STATLAB_BINS or 10)")
	flags.Float64Var(&o.smoothing, "smoothing", 0, "Density bandwidth multiplier (default $STATLAB_SMOOTHING or 1)")
	flags.IntVar(&o.pieCategories, "pie-categories", 0, "Pie chart category count (default $STATLAB_PIE_CATEGORIES or 5)")
}

// session loads the sample into a new session whose settings are the
// configured defaults overridden by any flags set on cmd.
func (o *analysisOptions) session(cli *statlabCLI, cmd *cobra.Command) (*session.Session, error) {
	settings := cli.defaultSettings()
	flags := cmd.Flags()
	if o.family != "" {
		f, err := stats.ParseFamily(o.family)
		if err != nil {
			return nil, err
		}
		settings.Family = f
	}
	if flags.Changed("bins") {
		settings.Bins = o.bins
	}
	if flags.Changed("smoothing") {
		settings.Smoothing = o.smoothing
	}
	if flags.Changed("pie-categories") {
		settings.PieCategories = o.pieCategories
	}

	sess, err := session.New(settings)
	if err != nil {
		return nil, err
	}
	err = sess.Load(func() ([]float64, error) {
		return cli.readSample(o.file)
	})
	if err != nil {
		return nil, err
	}
	if sample, ok := sess.Sample(); ok {
		cli.log.WithField("n", len(sample.Xs)).Debug("loaded sample")
	}
	return sess, nil
}
