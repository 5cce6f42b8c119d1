// Copyright 2026 The Landform Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the landform-curate command tree.
package commands

import (
	"io"

	"github.com/nasa-ammos/landform/cmd/landform-curate/cli"
)

// Root returns the top-level command. Command output goes to stdout;
// logs and help go to stderr.
func Root(stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:        "landform-curate",
		Description: "Select the rover observation products a terrain build should use.",
		Output:      stderr,
		Examples: []cli.Example{
			{
				Description: "Curate a listing with the Perseverance defaults",
				Command:     "landform-curate curate --mission m2020 urls.txt",
			},
			{
				Description: "Write a compressed CBOR report",
				Command:     "landform-curate curate --format cbor --output report.cbor.zst urls.jsonc",
			},
			{
				Description: "Show how two identifiers rank",
				Command:     "landform-curate rank NLF_0100_0675000000_000XYZ_N0030000NCAM00100_0A0L01J01 NRF_0100_0675000000_000XYZ_N0030000NCAM00100_0A0L01J01",
			},
		},
		Subcommands: []*cli.Command{
			curateCommand(stdout, stderr),
			decodeCommand(stdout, stderr),
			rankCommand(stdout),
			versionCommand(stdout),
		},
	}
}
