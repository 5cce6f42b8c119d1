// Copyright 2026 The Landform Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	"github.com/nasa-ammos/landform/cmd/landform-curate/cli"
	"github.com/nasa-ammos/landform/cmd/landform-curate/commands"
)

func main() {
	if err := run(); err != nil {
		code, print := cli.ExitCode(err)
		if print {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(code)
	}
}

func run() error {
	return commands.Root(os.Stdout, os.Stderr).Execute(os.Args[1:])
}
