// Copyright 2026 The Landform Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"github.com/nasa-ammos/landform/cmd/landform-curate/cli"
	"github.com/nasa-ammos/landform/lib/version"
)

func versionCommand(stdout io.Writer) *cli.Command {
	var outputJSON bool

	return &cli.Command{
		Name:    "version",
		Summary: "Print build information",
		Usage:   "landform-curate version [--json]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("version", pflag.ContinueOnError)
			flagSet.BoolVar(&outputJSON, "json", false, "output as JSON")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return cli.Usagef("version takes no arguments")
			}
			if outputJSON {
				return cli.WriteJSON(stdout, version.Current())
			}
			_, err := fmt.Fprintln(stdout, version.Full())
			return err
		},
	}
}
