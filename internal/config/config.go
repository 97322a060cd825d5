// =============================================================================
// Unit Resource Enum Migrator - Configuration Module
// =============================================================================
//
// This module loads the migrator configuration. Every setting has a built-in
// default, so the tool runs without a config file.
//
// PRECEDENCE (lowest to highest):
//   1. Built-in defaults (including the faction and unit class tables)
//   2. YAML config file (migrator.yaml by default)
//   3. Environment variables (MIGRATOR_UNITS_DIR, MIGRATOR_EXTENSION,
//      MIGRATOR_ENCODING, MIGRATOR_LOG_LEVEL)
//   4. Command-line flags (applied by the cmd package)
//
// EXAMPLE FILE:
//   units_dir: ./resources/units
//   extension: .tres
//   encoding: UTF-8
//   log_level: info
//   mappings:
//     - name: faction
//       entries:
//         - key: 'faction = "Independent"'
//           value: 'faction = 0'
//
// =============================================================================

package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/ginjaninja78/tres-enum-migrator/internal/enummap"
	"github.com/ginjaninja78/tres-enum-migrator/pkg/utils"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "MIGRATOR_"

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the migrator configuration.
type Config struct {
	// UnitsDir is the directory holding the unit resource files.
	// Default: "./resources/units"
	UnitsDir string `yaml:"units_dir"`

	// Extension is the literal, case-sensitive file name suffix to migrate.
	// Default: ".tres"
	Extension string `yaml:"extension"`

	// Encoding is the text encoding of the resource files.
	// Default: "UTF-8"
	Encoding string `yaml:"encoding"`

	// LogLevel controls diagnostic output.
	// Valid values: "debug", "info", "warn", "error"
	// Default: "info"
	LogLevel string `yaml:"log_level"`

	// Mappings are applied to every line, in order. When the file sets this
	// key it replaces the built-in tables entirely.
	Mappings []enummap.Mapping `yaml:"mappings"`
}

// envOverrides mirrors the scalar settings that may come from the environment.
type envOverrides struct {
	UnitsDir  string `env:"UNITS_DIR"`
	Extension string `env:"EXTENSION"`
	Encoding  string `env:"ENCODING"`
	LogLevel  string `env:"LOG_LEVEL"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		UnitsDir:  "./resources/units",
		Extension: ".tres",
		Encoding:  "UTF-8",
		LogLevel:  "info",
		Mappings:  enummap.Defaults(),
	}
}

// =============================================================================
// CONFIGURATION LOADING FUNCTIONS
// =============================================================================

// Load builds the configuration from defaults, the YAML file at path and the
// environment.
//
// PARAMETERS:
//   - path: The config file path. Empty skips the file.
//   - required: When false, a missing file is not an error.
//
// RETURNS:
//   - The validated configuration.
//   - An error if the file cannot be read or parsed, or validation fails.
func Load(path string, required bool) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
		case errors.Is(err, os.ErrNotExist) && !required:
			// Built-in defaults apply.
		default:
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// applyEnv overrides scalar settings from MIGRATOR_* variables.
func applyEnv(cfg *Config) error {
	var o envOverrides
	if err := env.ParseWithOptions(&o, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("failed to parse environment variables: %w", err)
	}

	if o.UnitsDir != "" {
		cfg.UnitsDir = o.UnitsDir
	}
	if o.Extension != "" {
		cfg.Extension = o.Extension
	}
	if o.Encoding != "" {
		cfg.Encoding = o.Encoding
	}
	if o.LogLevel != "" {
		cfg.LogLevel = o.LogLevel
	}

	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// Validate reports every problem with the configuration at once.
func (c *Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.UnitsDir) == "" {
		errs = append(errs, errors.New("units_dir is required"))
	}
	if c.Extension == "" {
		errs = append(errs, errors.New("extension is required"))
	}
	if _, err := utils.LookupEncoding(c.Encoding); err != nil {
		errs = append(errs, err)
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if err := enummap.ValidateAll(c.Mappings); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// ParseLogLevel maps a log_level setting to a slog level.
func ParseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", level)
	}
}

// Marshal renders the configuration as YAML, in the same shape Load reads.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
