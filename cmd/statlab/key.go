// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/statteach/statlab/keystore"
)

func newKeyCommand(cli *statlabCLI) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Manage the stored DashScope API key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Usage()
		},
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "set KEY",
			Short: "Store an API key, replacing any previous key",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := cli.keystore().Set(args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cli.out, "Stored API key %s in %s\n", keystore.Mask(args[0]), cli.cfg.AI.KeystorePath)
				return nil
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Remove the stored API key",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := cli.keystore().Clear(); err != nil {
					return err
				}
				fmt.Fprintln(cli.out, "Removed the stored API key")
				return nil
			},
		},
		&cobra.Command{
			Use:   "show",
			Short: "Show the stored API key, masked",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				key, err := cli.keystore().Get()
				if err != nil {
					return err
				}
				if key == "" {
					fmt.Fprintln(cli.out, "No API key is stored")
					return nil
				}
				fmt.Fprintln(cli.out, keystore.Mask(key))
				return nil
			},
		},
	)
	return cmd
}
