// Copyright 2026 The Landform Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/nasa-ammos/landform/lib/mission"
	"github.com/nasa-ammos/landform/lib/product"
)

// EnvVar names the environment variable Load reads the config path from.
const EnvVar = "LANDFORM_CONFIG"

// ErrNoConfig is returned by Load when EnvVar is not set.
var ErrNoConfig = errors.New(EnvVar + " environment variable not set")

// Environment represents the deployment environment.
type Environment string

const (
	// Development is for local runs against sample listings.
	Development Environment = "development"
	// Staging is for pre-production pipeline runs.
	Staging Environment = "staging"
	// Production is for operational tactical mesh builds.
	Production Environment = "production"
)

// Config is the run configuration of a curation.
type Config struct {
	// Environment identifies the deployment type (development, staging, production).
	Environment Environment `yaml:"environment"`

	// Mission selects the default policy: msl or m2020.
	Mission string `yaml:"mission"`

	Logging LoggingConfig `yaml:"logging"`

	Parse ParseConfig `yaml:"parse"`

	// Preferences override the mission policy's preferences. Unset
	// fields keep the mission default.
	Preferences PreferencesConfig `yaml:"preferences"`

	// ExtensionPriority, AllowedProducers and AllowedSpecial replace the
	// mission's lists when non-empty.
	ExtensionPriority []string `yaml:"extension_priority"`
	AllowedProducers  []string `yaml:"allowed_producers"`
	AllowedSpecial    []string `yaml:"allowed_special"`

	Budget BudgetConfig `yaml:"budget"`

	Output OutputConfig `yaml:"output"`

	// Parallel is the number of waypoints evicted concurrently. Zero or
	// one evicts sequentially.
	Parallel int `yaml:"parallel"`

	// EnvironmentOverrides contains per-environment overrides.
	// These are applied after the base config is loaded.
	Development *ConfigOverrides `yaml:"development,omitempty"`
	Staging     *ConfigOverrides `yaml:"staging,omitempty"`
	Production  *ConfigOverrides `yaml:"production,omitempty"`
}

// ConfigOverrides contains fields that can be overridden per environment.
type ConfigOverrides struct {
	Logging  *LoggingConfig `yaml:"logging,omitempty"`
	Parse    *ParseConfig   `yaml:"parse,omitempty"`
	Output   *OutputConfig  `yaml:"output,omitempty"`
	Parallel *int           `yaml:"parallel,omitempty"`
}

// LoggingConfig configures the CLI logger.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	// Default: info
	Level string `yaml:"level"`

	// Format is text or json. Empty picks text on a terminal and json
	// otherwise.
	Format string `yaml:"format"`
}

// ParseConfig configures identifier parsing.
type ParseConfig struct {
	// Strict fails the run on the first malformed identifier instead of
	// recording it as rejected.
	// Default: false (development), true (production)
	Strict bool `yaml:"strict"`
}

// PreferencesConfig overrides policy preferences.
type PreferencesConfig struct {
	PreferColor          *bool  `yaml:"prefer_color"`
	PreferLinearGeometry *bool  `yaml:"prefer_linear_geometry"`
	PreferLinearRaster   *bool  `yaml:"prefer_linear_raster"`
	PreferredEye         string `yaml:"preferred_eye"`
	PreferOlder          *bool  `yaml:"prefer_older"`
}

// BudgetConfig overrides the policy's budget caps. Unset fields keep
// the mission default.
type BudgetConfig struct {
	MaxWedges                     *int `yaml:"max_wedges"`
	MaxTextures                   *int `yaml:"max_textures"`
	MaxWedgesPerWaypoint          *int `yaml:"max_wedges_per_waypoint"`
	MaxTexturesPerWaypoint        *int `yaml:"max_textures_per_waypoint"`
	MaxNavcamWedgesPerWaypoint    *int `yaml:"max_navcam_wedges_per_waypoint"`
	MaxMastcamWedgesPerWaypoint   *int `yaml:"max_mastcam_wedges_per_waypoint"`
	MaxNavcamTexturesPerWaypoint  *int `yaml:"max_navcam_textures_per_waypoint"`
	MaxMastcamTexturesPerWaypoint *int `yaml:"max_mastcam_textures_per_waypoint"`
}

// OutputConfig configures the curation report.
type OutputConfig struct {
	// Format is text, json or cbor. Empty picks text when stdout is a
	// terminal and json otherwise.
	Format string `yaml:"format"`

	// Compression is none, zstd or lz4.
	// Default: none
	Compression string `yaml:"compression"`

	// Path is where the report is written. Empty means stdout.
	// ${VAR} and ${VAR:-default} are expanded.
	Path string `yaml:"path"`
}

// Default returns the default configuration.
// These defaults are used as a base before loading the config file.
func Default() *Config {
	return &Config{
		Environment: Development,
		Mission:     "m2020",
		Logging: LoggingConfig{
			Level: "info",
		},
		Output: OutputConfig{
			Compression: "none",
		},
	}
}

// Load loads configuration from the LANDFORM_CONFIG environment variable.
//
// There are no fallbacks: if LANDFORM_CONFIG is not set, this fails.
func Load() (*Config, error) {
	configPath := os.Getenv(EnvVar)
	if configPath == "" {
		return nil, fmt.Errorf("%w; set it to the path of your landform.yaml config file, or use --config flag", ErrNoConfig)
	}

	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path.
//
// The config file is the single source of truth. Environment variables do not
// override config values; they are only expanded inside output.path.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	if err := cfg.loadFile(path); err != nil {
		return nil, err
	}

	cfg.applyEnvironmentOverrides()
	cfg.expandVariables()

	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

// applyEnvironmentOverrides applies the environment-specific overrides.
func (c *Config) applyEnvironmentOverrides() {
	var overrides *ConfigOverrides

	switch c.Environment {
	case Development:
		overrides = c.Development
	case Staging:
		overrides = c.Staging
	case Production:
		overrides = c.Production
		// Production defaults: malformed identifiers fail the run.
		if overrides == nil {
			overrides = &ConfigOverrides{
				Parse: &ParseConfig{Strict: true},
			}
		}
	}

	if overrides == nil {
		return
	}

	if overrides.Logging != nil {
		if overrides.Logging.Level != "" {
			c.Logging.Level = overrides.Logging.Level
		}
		if overrides.Logging.Format != "" {
			c.Logging.Format = overrides.Logging.Format
		}
	}

	if overrides.Parse != nil {
		// Strict is a bool, so we always apply it from overrides.
		c.Parse.Strict = overrides.Parse.Strict
	}

	if overrides.Output != nil {
		if overrides.Output.Format != "" {
			c.Output.Format = overrides.Output.Format
		}
		if overrides.Output.Compression != "" {
			c.Output.Compression = overrides.Output.Compression
		}
		if overrides.Output.Path != "" {
			c.Output.Path = overrides.Output.Path
		}
	}

	if overrides.Parallel != nil {
		c.Parallel = *overrides.Parallel
	}
}

// expandVariables expands ${VAR} and ${VAR:-default} patterns in the
// output path.
func (c *Config) expandVariables() {
	vars := map[string]string{
		"HOME":             os.Getenv("HOME"),
		"LANDFORM_MISSION": c.Mission,
	}

	c.Output.Path = expandVars(c.Output.Path, vars)
}

// expandVars expands ${VAR} and ${VAR:-default} patterns.
var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

func expandVars(s string, vars map[string]string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		defaultValue := ""
		if len(parts) >= 3 {
			defaultValue = parts[2]
		}

		// Check provided vars first, then environment.
		if value, ok := vars[name]; ok && value != "" {
			return value
		}
		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}

var (
	logLevels    = []string{"debug", "info", "warn", "error"}
	logFormats   = []string{"", "text", "json"}
	outputFormat = []string{"", "text", "json", "cbor"}
	compressions = []string{"none", "zstd", "lz4"}
)

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if c.Environment != Development && c.Environment != Staging && c.Environment != Production {
		errs = append(errs, fmt.Errorf("invalid environment: %s", c.Environment))
	}

	if _, err := product.ParseMission(c.Mission); err != nil {
		errs = append(errs, fmt.Errorf("mission: %w", err))
	}

	if !slices.Contains(logLevels, strings.ToLower(c.Logging.Level)) {
		errs = append(errs, fmt.Errorf("logging.level must be one of: %v", logLevels))
	}
	if !slices.Contains(logFormats, c.Logging.Format) {
		errs = append(errs, fmt.Errorf("logging.format must be text or json"))
	}

	if _, err := product.ParseEye(c.Preferences.PreferredEye); err != nil {
		errs = append(errs, fmt.Errorf("preferences.preferred_eye: %w", err))
	}
	for _, name := range c.AllowedProducers {
		if _, err := product.ParseProducer(name); err != nil {
			errs = append(errs, fmt.Errorf("allowed_producers: %w", err))
		}
	}
	for _, code := range c.AllowedSpecial {
		if len(code) != 1 {
			errs = append(errs, fmt.Errorf("allowed_special: %q is not a single character", code))
		}
	}

	if !slices.Contains(outputFormat, c.Output.Format) {
		errs = append(errs, fmt.Errorf("output.format must be text, json or cbor"))
	}
	if !slices.Contains(compressions, c.Output.Compression) {
		errs = append(errs, fmt.Errorf("output.compression must be one of: %v", compressions))
	}

	if c.Parallel < 0 {
		errs = append(errs, fmt.Errorf("parallel must not be negative (%d)", c.Parallel))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// Policy returns the configured mission's default policy with the
// configuration applied.
func (c *Config) Policy() (*mission.Policy, error) {
	base, err := mission.ForMission(c.Mission)
	if err != nil {
		return nil, err
	}
	return c.Apply(base)
}

// Apply returns a copy of base tuned by the configuration. The result
// is validated; base is not modified.
func (c *Config) Apply(base *mission.Policy) (*mission.Policy, error) {
	p := base.Clone()

	setBool := func(dst *bool, v *bool) {
		if v != nil {
			*dst = *v
		}
	}
	setBool(&p.PreferColor, c.Preferences.PreferColor)
	setBool(&p.PreferLinearGeometry, c.Preferences.PreferLinearGeometry)
	setBool(&p.PreferLinearRaster, c.Preferences.PreferLinearRaster)
	setBool(&p.PreferOlder, c.Preferences.PreferOlder)
	if c.Preferences.PreferredEye != "" {
		eye, err := product.ParseEye(c.Preferences.PreferredEye)
		if err != nil {
			return nil, fmt.Errorf("preferences.preferred_eye: %w", err)
		}
		p.PreferredEye = eye
	}

	if len(c.ExtensionPriority) > 0 {
		p.ExtensionPriority = slices.Clone(c.ExtensionPriority)
	}
	if len(c.AllowedProducers) > 0 {
		p.AllowedProducers = p.AllowedProducers[:0:0]
		for _, name := range c.AllowedProducers {
			producer, err := product.ParseProducer(name)
			if err != nil {
				return nil, fmt.Errorf("allowed_producers: %w", err)
			}
			p.AllowedProducers = append(p.AllowedProducers, producer)
		}
	}
	if len(c.AllowedSpecial) > 0 {
		p.AllowedSpecial = p.AllowedSpecial[:0:0]
		for _, code := range c.AllowedSpecial {
			if len(code) != 1 {
				return nil, fmt.Errorf("allowed_special: %q is not a single character", code)
			}
			p.AllowedSpecial = append(p.AllowedSpecial, code[0])
		}
	}

	setInt := func(dst *int, v *int) {
		if v != nil {
			*dst = *v
		}
	}
	b := c.Budget
	setInt(&p.Budget.MaxWedges, b.MaxWedges)
	setInt(&p.Budget.MaxTextures, b.MaxTextures)
	setInt(&p.Budget.MaxWedgesPerWaypoint, b.MaxWedgesPerWaypoint)
	setInt(&p.Budget.MaxTexturesPerWaypoint, b.MaxTexturesPerWaypoint)
	setInt(&p.Budget.MaxNavcamWedgesPerWaypoint, b.MaxNavcamWedgesPerWaypoint)
	setInt(&p.Budget.MaxMastcamWedgesPerWaypoint, b.MaxMastcamWedgesPerWaypoint)
	setInt(&p.Budget.MaxNavcamTexturesPerWaypoint, b.MaxNavcamTexturesPerWaypoint)
	setInt(&p.Budget.MaxMastcamTexturesPerWaypoint, b.MaxMastcamTexturesPerWaypoint)

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}
