// =============================================================================
// Unit Resource Enum Migrator - Migrate Command
// =============================================================================
//
// This file defines the 'migrate' command, which runs the migration over the
// configured units directory.
//
// COMMAND USAGE:
//   migrator migrate [flags]
//
// FLAGS:
//   --dir          : Directory holding the unit resource files
//   --ext          : File extension to migrate (literal, case-sensitive)
//   --encoding     : Text encoding of the files
//   --dry-run      : Report what would change without writing files
//   --report       : Write an XLSX report to this path
//   --summary-dir  : Write a text summary log into this directory
//
// PROCESSING PIPELINE:
//   1. Apply flag overrides to the loaded configuration
//   2. Check the directory exists (abort if not)
//   3. Migrate each matching file in name order, printing one line per file
//   4. Optionally write the summary log and XLSX report
//
// =============================================================================

package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/tres-enum-migrator/internal/migrator"
	"github.com/ginjaninja78/tres-enum-migrator/internal/report"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

var (
	unitsDir   string
	extension  string
	encoding   string
	dryRun     bool
	reportPath string
	summaryDir string
)

// =============================================================================
// MIGRATE COMMAND DEFINITION
// =============================================================================

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Rewrite faction and unit class labels to enum codes",
	Long: `The migrate command scans the units directory (not recursively) for files
with the configured extension and rewrites every line that exactly matches a
known assignment, such as

  faction = "Los Rudos"  ->  faction = 4

Files with no matching line are left byte-for-byte unchanged. A file that
cannot be read or written is reported as an error and the run continues with
the next file. A missing directory aborts the run before any file is touched.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runMigrate(cmd)
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)

	migrateCmd.Flags().StringVar(&unitsDir, "dir", "", "Directory holding the unit resource files (overrides units_dir)")
	migrateCmd.Flags().StringVar(&extension, "ext", "", "File extension to migrate (overrides extension)")
	migrateCmd.Flags().StringVar(&encoding, "encoding", "", "Text encoding of the files (overrides encoding)")
	migrateCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report what would change without writing files")
	migrateCmd.Flags().StringVar(&reportPath, "report", "", "Write an XLSX report of the run to this path")
	migrateCmd.Flags().StringVar(&summaryDir, "summary-dir", "", "Write a text summary log into this directory")
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

func runMigrate(cmd *cobra.Command) error {
	if unitsDir != "" {
		cfg.UnitsDir = unitsDir
	}
	if extension != "" {
		cfg.Extension = extension
	}
	if encoding != "" {
		cfg.Encoding = encoding
	}

	m, err := migrator.New(migrator.Options{
		Dir:       cfg.UnitsDir,
		Extension: cfg.Extension,
		Encoding:  cfg.Encoding,
		Mappings:  cfg.Mappings,
		DryRun:    dryRun,
		Logger:    logger,
	})
	if err != nil {
		return err
	}

	summary, err := m.Run(cmd.OutOrStdout())
	if err != nil {
		return err
	}

	if n := summary.Count(migrator.OutcomeError); n > 0 {
		logger.Warn("some files could not be migrated", slog.Int("errors", n))
	}

	if summaryDir != "" {
		path, err := report.WriteSummaryLog(summary, summaryDir)
		if err != nil {
			return err
		}
		logger.Info("summary log written", slog.String("path", path))
	}

	if reportPath != "" {
		if err := report.WriteXLSX(summary, reportPath); err != nil {
			return err
		}
		logger.Info("report written", slog.String("path", reportPath))
	}

	return nil
}
