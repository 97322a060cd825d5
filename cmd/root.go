// =============================================================================
// Unit Resource Enum Migrator - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. All other commands
// are attached to it.
//
// COBRA CLI STRUCTURE:
//   rootCmd (migrator)
//   ├── migrateCmd  (migrator migrate)
//   ├── validateCmd (migrator validate)
//   ├── mappingsCmd (migrator mappings)
//   └── versionCmd  (migrator version)
//
// CONFIGURATION:
//   The root command is responsible for:
//   1. Setting up global flags (--config, --verbose)
//   2. Loading the configuration before any subcommand runs
//   3. Setting up logging
//
// =============================================================================

package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/tres-enum-migrator/internal/config"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// defaultConfigFile is read when present; it is not required.
const defaultConfigFile = "migrator.yaml"

// cfgFile holds the path to the configuration file.
var cfgFile string

// verbose forces debug logging.
var verbose bool

// cfg is the loaded configuration, set before any subcommand runs.
var cfg *config.Config

// logger is the diagnostic logger, set before any subcommand runs.
var logger *slog.Logger

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "migrator",
	Short: "Unit Resource Enum Migrator - rewrite faction and unit class labels to enum codes",
	Long: `Unit Resource Enum Migrator rewrites string-valued enum assignments in unit
resource files to their integer codes, e.g.

  faction = "Technicos"    ->  faction = 2
  unit_class = "Fan"       ->  unit_class = 6

Only lines that consist entirely of a known assignment are rewritten; every
other line is left untouched. Running the migration twice is safe.

Example Usage:
  migrator migrate                          # Migrate ./resources/units
  migrator migrate --dir ./units --dry-run  # Report what would change
  migrator validate                         # Check the configuration
  migrator mappings                         # Show the active tables`,

	SilenceUsage:  true,
	SilenceErrors: true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig(cmd)
	},

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		defaultConfigFile,
		"Path to the configuration file (optional unless set explicitly)",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable debug logging",
	)
}

// initConfig loads the configuration and builds the logger. The config file
// is only required when --config was given explicitly.
func initConfig(cmd *cobra.Command) error {
	required := cmd.Flags().Changed("config")

	loaded, err := config.Load(cfgFile, required)
	if err != nil {
		return err
	}
	cfg = loaded

	level, err := config.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	if verbose {
		level = slog.LevelDebug
	}

	logger = newLogger(cmd.ErrOrStderr(), level)
	logger.Debug("configuration loaded",
		slog.String("config", cfgFile),
		slog.String("units_dir", cfg.UnitsDir),
		slog.String("extension", cfg.Extension),
		slog.String("encoding", cfg.Encoding),
	)

	return nil
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})).
		With(slog.String("app", "migrator"))
}
