package report

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/tres-enum-migrator/internal/migrator"
)

func sampleSummary() *migrator.Summary {
	start := time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC)
	return &migrator.Summary{
		RunID:      "0b6f7c1e-1111-4222-8333-944455556666",
		Dir:        "./resources/units",
		StartedAt:  start,
		FinishedAt: start.Add(1500 * time.Millisecond),
		Results: []migrator.Result{
			{FilePath: "resources/units/hero.tres", Outcome: migrator.OutcomeUpdated, Replacements: 2},
			{FilePath: "resources/units/fan.tres", Outcome: migrator.OutcomeSkipped},
			{FilePath: "resources/units/locked.tres", Outcome: migrator.OutcomeError, Err: errors.New("permission denied")},
		},
	}
}

func TestWriteSummaryLog(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	path, err := WriteSummaryLog(sampleSummary(), dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "migration_summary_20261016_093000.txt"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)

	for _, want := range []string{
		"Run ID:         0b6f7c1e-1111-4222-8333-944455556666",
		"Total Files:    3",
		"Updated:        1",
		"Skipped:        1",
		"Errors:         1",
		"Lines Replaced: 2",
		"[UPDATED] hero.tres",
		"[SKIPPED] fan.tres - No changes needed",
		"[ERROR] Failed to process locked.tres: permission denied",
	} {
		assert.Contains(t, text, want)
	}
	assert.True(t, strings.HasSuffix(text, "End of Summary\n"))
}

func TestWriteXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "report.xlsx")
	require.NoError(t, WriteXLSX(sampleSummary(), path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SummarySheet, FilesSheet}, f.GetSheetList())

	rows, err := f.GetRows(FilesSheet)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"File", "Outcome", "Lines Replaced", "Error"}, rows[0])
	require.GreaterOrEqual(t, len(rows[1]), 3)
	assert.Equal(t, []string{"hero.tres", "updated", "2"}, rows[1][:3])
	require.GreaterOrEqual(t, len(rows[2]), 3)
	assert.Equal(t, []string{"fan.tres", "skipped", "0"}, rows[2][:3])
	assert.Equal(t, []string{"locked.tres", "error", "0", "permission denied"}, rows[3])

	runID, err := f.GetCellValue(SummarySheet, "B1")
	require.NoError(t, err)
	assert.Equal(t, "0b6f7c1e-1111-4222-8333-944455556666", runID)

	updated, err := f.GetCellValue(SummarySheet, "B8")
	require.NoError(t, err)
	assert.Equal(t, "1", updated)
}
