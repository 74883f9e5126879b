// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/statteach/statlab/server"
)

func newServeCommand(cli *statlabCLI) *cobra.Command {
	var addr string
	var mock bool

	cmd := &cobra.Command{
		Use:   "serve [OPTIONS]",
		Short: "Serve the analyses as a JSON HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = cli.cfg.Server.Addr
			}
			gen, err := cli.generator(mock)
			if err != nil {
				return err
			}
			srv, err := server.New(cli.defaultSettings(), gen, cli.log)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return srv.ListenAndServe(ctx, addr)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&addr, "addr", "", "Listen address (default $STATLAB_ADDR or :8080)")
	flags.BoolVar(&mock, "mock", false, "Serve /api/ai with locally generated mock data")
	return cmd
}
