// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command statlab describes samples, estimates distribution
// parameters and draws charts in the terminal. It can also generate
// sample data and serve the same analyses over HTTP.
//
// Data is read from a file named with --file or from standard input,
// as delimited text with a header line or an .xlsx workbook.
package main

import (
	"fmt"
	"os"
)

func main() {
	cli := newCLI(os.Stdin, os.Stdout, os.Stderr)
	if err := newRootCommand(cli).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "statlab:", err)
		os.Exit(1)
	}
}
