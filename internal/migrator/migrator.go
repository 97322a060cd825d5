// =============================================================================
// Unit Resource Enum Migrator - Migrator Module
// =============================================================================
//
// This module contains the migration logic. It discovers the target files in
// a single directory and rewrites string-valued enum assignments to their
// integer codes, one file at a time.
//
// MIGRATION PIPELINE:
//   1. Check that the target directory exists (fatal if not)
//   2. Discover files with the configured extension (non-recursive)
//   3. For each file, in discovery order:
//      a. Read and decode the whole file
//      b. Apply every mapping to every line
//      c. Write the file back only if a line changed
//      d. Report updated / skipped / error
//
// CONCURRENCY:
//   None. Files are processed sequentially and each is fully read before it
//   is rewritten. The mappings are read-only.
//
// =============================================================================

package migrator

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ginjaninja78/tres-enum-migrator/internal/enummap"
	"github.com/ginjaninja78/tres-enum-migrator/pkg/utils"
)

// Console markers printed around the per-file outcome lines.
const (
	StartMarker    = "--- Starting Migration ---"
	CompleteMarker = "--- Migration Complete ---"
)

// ErrDirectoryNotFound aborts a run before any file is processed.
var ErrDirectoryNotFound = errors.New("directory not found")

// =============================================================================
// MIGRATOR STRUCTURE
// =============================================================================

// Options configures a Migrator.
type Options struct {
	// Dir is the directory holding the resource files.
	Dir string

	// Extension is the file name suffix to match, e.g. ".tres".
	Extension string

	// Encoding names the text encoding for reads and writes. Empty means UTF-8.
	Encoding string

	// Mappings are applied to every line, in order.
	Mappings []enummap.Mapping

	// DryRun classifies files without writing them.
	DryRun bool

	// Logger receives diagnostics. Nil discards them.
	Logger *slog.Logger
}

// Migrator rewrites enum labels to codes in a directory of resource files.
type Migrator struct {
	files    *utils.FileManager
	mappings []enummap.Mapping
	dryRun   bool
	logger   *slog.Logger
}

// =============================================================================
// CONSTRUCTOR
// =============================================================================

// New creates a Migrator. The mappings are validated and copied, so later
// changes to opts.Mappings do not affect the Migrator.
func New(opts Options) (*Migrator, error) {
	if opts.Extension == "" {
		return nil, errors.New("file extension is required")
	}
	if err := enummap.ValidateAll(opts.Mappings); err != nil {
		return nil, fmt.Errorf("invalid mappings: %w", err)
	}

	files, err := utils.NewFileManager(opts.Dir, opts.Extension, opts.Encoding)
	if err != nil {
		return nil, err
	}

	mappings := make([]enummap.Mapping, len(opts.Mappings))
	for i, m := range opts.Mappings {
		mappings[i] = m.Clone()
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Migrator{
		files:    files,
		mappings: mappings,
		dryRun:   opts.DryRun,
		logger:   logger,
	}, nil
}

// =============================================================================
// FILE DISCOVERY
// =============================================================================

// DiscoverFiles returns the target files in name order. A missing directory
// yields an error wrapping ErrDirectoryNotFound.
func (m *Migrator) DiscoverFiles() ([]string, error) {
	if err := m.files.CheckDirectory(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDirectoryNotFound, m.files.Dir)
		}
		return nil, err
	}
	return m.files.DiscoverFiles()
}

// =============================================================================
// PER-FILE MIGRATION
// =============================================================================

// MigrateFile migrates a single file. Failures are reported in the Result;
// they never abort the caller.
func (m *Migrator) MigrateFile(path string) Result {
	result := Result{FilePath: path}

	text, err := m.files.ReadText(path)
	if err != nil {
		result.Outcome = OutcomeError
		result.Err = err
		return result
	}

	migrated, n := MigrateText(text, m.mappings)
	result.Replacements = n
	if n == 0 {
		result.Outcome = OutcomeSkipped
		return result
	}

	if !m.dryRun {
		if err := m.files.WriteText(path, migrated); err != nil {
			result.Outcome = OutcomeError
			result.Err = err
			return result
		}
	}

	result.Outcome = OutcomeUpdated
	return result
}

// MigrateText applies the mappings to each line of text. Line terminators are
// kept with their lines, so the output differs from the input only in the
// replaced keys.
//
// RETURNS:
//   - The migrated text.
//   - The number of lines that changed.
func MigrateText(text string, mappings []enummap.Mapping) (string, int) {
	lines := strings.SplitAfter(text, "\n")
	changed := 0

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		lineChanged := false
		// Every mapping is matched against the original trimmed line, even
		// after an earlier one replaced something.
		for _, mapping := range mappings {
			if e, ok := mapping.Match(trimmed); ok {
				line = strings.Replace(line, e.Key, e.Value, 1)
				lineChanged = true
			}
		}
		if lineChanged {
			lines[i] = line
			changed++
		}
	}

	if changed == 0 {
		return text, 0
	}
	return strings.Join(lines, ""), changed
}

// =============================================================================
// RUN
// =============================================================================

// Run migrates every target file and writes the console report to w.
//
// RETURNS:
//   - The run summary, with one result per file in discovery order.
//   - An error only for run-level failures (missing directory, unreadable
//     directory). Per-file failures are in the summary.
func (m *Migrator) Run(w io.Writer) (*Summary, error) {
	summary := &Summary{
		RunID:     uuid.New().String(),
		Dir:       m.files.Dir,
		DryRun:    m.dryRun,
		StartedAt: time.Now(),
	}

	files, err := m.DiscoverFiles()
	if err != nil {
		return nil, err
	}

	logger := m.logger.With(slog.String("run_id", summary.RunID))
	logger.Debug("discovered files", slog.String("dir", m.files.Dir), slog.Int("count", len(files)))

	fmt.Fprintln(w, StartMarker)

	for _, path := range files {
		result := m.MigrateFile(path)
		summary.Results = append(summary.Results, result)

		if result.Err != nil {
			logger.Debug("file failed", slog.String("file", path), slog.Any("error", result.Err))
		} else {
			logger.Debug("file processed",
				slog.String("file", path),
				slog.String("outcome", result.Outcome.String()),
				slog.Int("replacements", result.Replacements),
			)
		}

		fmt.Fprintln(w, result.Line(m.dryRun))
	}

	fmt.Fprintln(w, CompleteMarker)

	summary.FinishedAt = time.Now()
	logger.Info("migration finished",
		slog.Int("updated", summary.Count(OutcomeUpdated)),
		slog.Int("skipped", summary.Count(OutcomeSkipped)),
		slog.Int("errors", summary.Count(OutcomeError)),
		slog.Bool("dry_run", m.dryRun),
		slog.Duration("elapsed", summary.Duration()),
	)

	return summary, nil
}
