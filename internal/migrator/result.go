package migrator

import (
	"fmt"
	"path/filepath"
	"time"
)

// =============================================================================
// OUTCOME
// =============================================================================

// Outcome classifies what happened to a single file.
type Outcome int

const (
	// OutcomeSkipped means no line matched; the file was not written.
	OutcomeSkipped Outcome = iota

	// OutcomeUpdated means at least one line was replaced and the file was
	// written back (or would have been, in a dry run).
	OutcomeUpdated

	// OutcomeError means the file could not be read, decoded, encoded or
	// written.
	OutcomeError
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSkipped:
		return "skipped"
	case OutcomeUpdated:
		return "updated"
	case OutcomeError:
		return "error"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// Result represents the outcome of migrating a single file.
type Result struct {
	// FilePath is the path to the file that was processed.
	FilePath string

	// Outcome is the per-file classification.
	Outcome Outcome

	// Replacements is the number of lines rewritten.
	Replacements int

	// Err is set only when Outcome is OutcomeError.
	Err error
}

// Name returns the base name of the file, as shown in console output.
func (r Result) Name() string {
	return filepath.Base(r.FilePath)
}

// Line formats the console line for this result.
func (r Result) Line(dryRun bool) string {
	switch r.Outcome {
	case OutcomeUpdated:
		if dryRun {
			return fmt.Sprintf("[UPDATED] %s (dry run)", r.Name())
		}
		return fmt.Sprintf("[UPDATED] %s", r.Name())
	case OutcomeSkipped:
		return fmt.Sprintf("[SKIPPED] %s - No changes needed", r.Name())
	default:
		return fmt.Sprintf("[ERROR] Failed to process %s: %v", r.Name(), r.Err)
	}
}

// =============================================================================
// RUN SUMMARY
// =============================================================================

// Summary collects the results of one run, in discovery order.
type Summary struct {
	// RunID uniquely identifies the run in logs and reports.
	RunID string

	// Dir is the directory that was migrated.
	Dir string

	// DryRun is true when no file was written.
	DryRun bool

	StartedAt  time.Time
	FinishedAt time.Time

	Results []Result
}

// Count returns the number of results with the given outcome.
func (s *Summary) Count(o Outcome) int {
	n := 0
	for _, r := range s.Results {
		if r.Outcome == o {
			n++
		}
	}
	return n
}

// Replacements returns the total number of lines rewritten across all files.
func (s *Summary) Replacements() int {
	n := 0
	for _, r := range s.Results {
		n += r.Replacements
	}
	return n
}

// Duration returns how long the run took.
func (s *Summary) Duration() time.Duration {
	return s.FinishedAt.Sub(s.StartedAt)
}
