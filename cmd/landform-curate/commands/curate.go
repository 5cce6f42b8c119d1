// Copyright 2026 The Landform Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/nasa-ammos/landform/cmd/landform-curate/cli"
	"github.com/nasa-ammos/landform/lib/compression"
	"github.com/nasa-ammos/landform/lib/config"
	"github.com/nasa-ammos/landform/lib/curate"
	"github.com/nasa-ammos/landform/lib/listing"
	"github.com/nasa-ammos/landform/lib/report"
)

type curateParams struct {
	configPath string
	mission    string
	strict     bool
	parallel   int
	format     string
	compress   string
	output     string
	logLevel   string
	logFormat  string
}

func curateCommand(stdout, stderr io.Writer) *cli.Command {
	var params curateParams
	var flagSet *pflag.FlagSet

	return &cli.Command{
		Name:    "curate",
		Summary: "Select products for a terrain build",
		Description: `Run the curation pipeline over one or more listings of product URLs.

A listing is a text file with one URL per line (blank lines and # comments
are skipped) or a JSONC array of URL strings or {"url": ...} objects. A
.zst or .lz4 suffix is decompressed. "-" reads a listing from stdin.

Configuration comes from --config, else the file named by LANDFORM_CONFIG,
else built-in defaults. Flags override the configuration.`,
		Usage: "landform-curate curate [flags] <listing>...",
		Examples: []cli.Example{
			{
				Description: "Curate with a configuration file and four eviction workers",
				Command:     "landform-curate curate --config landform.yaml --parallel 4 sol-1000.txt",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet = pflag.NewFlagSet("curate", pflag.ContinueOnError)
			flagSet.StringVar(&params.configPath, "config", "", "configuration file (default $"+config.EnvVar+")")
			flagSet.StringVar(&params.mission, "mission", "", "mission policy: msl or m2020")
			flagSet.BoolVar(&params.strict, "strict", false, "fail on the first malformed identifier")
			flagSet.IntVar(&params.parallel, "parallel", 0, "waypoints evicted concurrently")
			flagSet.StringVar(&params.format, "format", "", "report format: text, json or cbor (default text on a terminal, else json)")
			flagSet.StringVar(&params.compress, "compress", "", "report compression: none, zstd or lz4")
			flagSet.StringVarP(&params.output, "output", "o", "", "report path (default stdout)")
			flagSet.StringVar(&params.logLevel, "log-level", "", "log level: debug, info, warn or error")
			flagSet.StringVar(&params.logFormat, "log-format", "", "log format: text or json")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) == 0 {
				return cli.Usagef("at least one listing is required\n\nRun 'landform-curate curate --help' for usage.")
			}

			cfg, err := loadConfig(params.configPath)
			if err != nil {
				return err
			}
			params.apply(cfg, flagSet)
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger, err := cli.NewLogger(stderr, cfg.Logging.Level, cfg.Logging.Format)
			if err != nil {
				return err
			}
			policy, err := cfg.Policy()
			if err != nil {
				return err
			}

			inputs, err := readListings(args, logger)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			result, err := curate.Run(ctx, inputs, curate.Options{
				Policy:   policy,
				Strict:   cfg.Parse.Strict,
				Parallel: cfg.Parallel,
				Logger:   logger,
			})
			if err != nil {
				return err
			}

			return writeReport(stdout, report.FromResult(result), cfg.Output, logger)
		},
	}
}

// loadConfig loads the configuration named by path, else the one named
// by LANDFORM_CONFIG, else the defaults.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	cfg, err := config.Load()
	if errors.Is(err, config.ErrNoConfig) {
		return config.Default(), nil
	}
	return cfg, err
}

// apply overrides configuration values with the flags set on the
// command line.
func (p *curateParams) apply(cfg *config.Config, flagSet *pflag.FlagSet) {
	if flagSet == nil {
		return
	}
	if flagSet.Changed("mission") {
		cfg.Mission = p.mission
	}
	if flagSet.Changed("strict") {
		cfg.Parse.Strict = p.strict
	}
	if flagSet.Changed("parallel") {
		cfg.Parallel = p.parallel
	}
	if flagSet.Changed("format") {
		cfg.Output.Format = p.format
	}
	if flagSet.Changed("compress") {
		cfg.Output.Compression = p.compress
	}
	if flagSet.Changed("output") {
		cfg.Output.Path = p.output
	}
	if flagSet.Changed("log-level") {
		cfg.Logging.Level = p.logLevel
	}
	if flagSet.Changed("log-format") {
		cfg.Logging.Format = p.logFormat
	}
}

func readListings(paths []string, logger *slog.Logger) ([]string, error) {
	var inputs []string
	for _, path := range paths {
		var entries []listing.Entry
		var err error
		if path == "-" {
			entries, err = listing.Read(os.Stdin, "stdin", listing.FormatAuto)
		} else {
			entries, err = listing.ReadFile(path)
		}
		if err != nil {
			return nil, err
		}
		logger.Debug("read listing", "path", path, "entries", len(entries))
		inputs = append(inputs, listing.URLs(entries)...)
	}
	return inputs, nil
}

// writeReport writes the report where the output configuration says.
// An empty format picks text for a terminal and json otherwise. When
// no compression is configured, a .zst or .lz4 output path selects one.
func writeReport(stdout io.Writer, r *report.Report, output config.OutputConfig, logger *slog.Logger) error {
	algorithm, err := compression.Parse(output.Compression)
	if err != nil {
		return err
	}
	if algorithm == compression.None && output.Path != "" {
		algorithm, _ = compression.Detect(output.Path)
	}

	formatName := output.Format
	if formatName == "" {
		formatName = "json"
		if output.Path == "" && cli.IsTerminal(stdout) {
			formatName = "text"
		}
	}
	format, err := report.ParseFormat(formatName)
	if err != nil {
		return err
	}

	if output.Path == "" {
		return report.Write(stdout, r, format, algorithm)
	}

	file, err := os.Create(output.Path)
	if err != nil {
		return fmt.Errorf("creating report: %w", err)
	}
	if err := report.Write(file, r, format, algorithm); err != nil {
		file.Close()
		return fmt.Errorf("writing report %s: %w", output.Path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("closing report %s: %w", output.Path, err)
	}
	logger.Info("report written",
		"path", output.Path,
		"format", format.String(),
		"compression", algorithm.String(),
		"retained", r.Retained,
	)
	return nil
}
