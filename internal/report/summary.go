// =============================================================================
// Unit Resource Enum Migrator - Report Module
// =============================================================================
//
// This module writes the record of a migration run:
//   - A plain-text summary log (migration_summary_<timestamp>.txt)
//   - An XLSX workbook with a Summary sheet and a Files sheet
//
// Both are optional and produced after the run from migrator.Summary; they
// never affect which files are migrated.
//
// =============================================================================

package report

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ginjaninja78/tres-enum-migrator/internal/migrator"
)

const (
	timeLayout     = "2006-01-02 15:04:05"
	fileTimeLayout = "20060102_150405"
	ruler          = "================================================================================\n"
)

// =============================================================================
// SUMMARY LOG
// =============================================================================

// WriteSummaryLog writes a processing summary to a text file in dir.
//
// RETURNS:
//   - The path to the summary file.
//   - An error if writing fails.
func WriteSummaryLog(summary *migrator.Summary, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create summary directory: %w", err)
	}

	name := fmt.Sprintf("migration_summary_%s.txt", summary.StartedAt.Format(fileTimeLayout))
	path := filepath.Join(dir, name)

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create summary file: %w", err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)

	fmt.Fprintf(w, "Unit Resource Enum Migrator - Migration Summary\n"+
		ruler+"\n"+
		"Run Information:\n"+
		"  Run ID:         %s\n"+
		"  Directory:      %s\n"+
		"  Dry Run:        %t\n"+
		"  Start Time:     %s\n"+
		"  End Time:       %s\n"+
		"  Duration:       %s\n\n"+
		"Statistics:\n"+
		"  Total Files:    %d\n"+
		"  Updated:        %d\n"+
		"  Skipped:        %d\n"+
		"  Errors:         %d\n"+
		"  Lines Replaced: %d\n\n",
		summary.RunID,
		summary.Dir,
		summary.DryRun,
		summary.StartedAt.Format(timeLayout),
		summary.FinishedAt.Format(timeLayout),
		summary.Duration(),
		len(summary.Results),
		summary.Count(migrator.OutcomeUpdated),
		summary.Count(migrator.OutcomeSkipped),
		summary.Count(migrator.OutcomeError),
		summary.Replacements(),
	)

	if len(summary.Results) > 0 {
		w.WriteString("Files:\n")
		w.WriteString("--------------------------------------------------------------------------------\n")
		for _, r := range summary.Results {
			fmt.Fprintf(w, "  %s\n", r.Line(summary.DryRun))
			if r.Replacements > 0 {
				fmt.Fprintf(w, "    Lines replaced: %d\n", r.Replacements)
			}
		}
		w.WriteString("\n")
	}

	w.WriteString(ruler + "End of Summary\n")

	if err := w.Flush(); err != nil {
		return "", fmt.Errorf("failed to flush summary file: %w", err)
	}

	return path, nil
}
