package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/tres-enum-migrator/internal/migrator"
)

// Sheet names used in the XLSX report.
const (
	SummarySheet = "Summary"
	FilesSheet   = "Files"
)

// WriteXLSX writes the run summary as a workbook at path.
//
// SHEETS:
//   - Summary: one label/value row per run statistic
//   - Files:   one row per file, in discovery order
func WriteXLSX(summary *migrator.Summary, path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create report directory: %w", err)
		}
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		return fmt.Errorf("failed to name summary sheet: %w", err)
	}
	if _, err := f.NewSheet(FilesSheet); err != nil {
		return fmt.Errorf("failed to create files sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	summaryRows := [][]interface{}{
		{"Run ID", summary.RunID},
		{"Directory", summary.Dir},
		{"Dry Run", summary.DryRun},
		{"Start Time", summary.StartedAt.Format(timeLayout)},
		{"End Time", summary.FinishedAt.Format(timeLayout)},
		{"Duration", summary.Duration().String()},
		{"Total Files", len(summary.Results)},
		{"Updated", summary.Count(migrator.OutcomeUpdated)},
		{"Skipped", summary.Count(migrator.OutcomeSkipped)},
		{"Errors", summary.Count(migrator.OutcomeError)},
		{"Lines Replaced", summary.Replacements()},
	}
	if err := writeRows(f, SummarySheet, summaryRows); err != nil {
		return err
	}
	if err := f.SetCellStyle(SummarySheet, "A1", fmt.Sprintf("A%d", len(summaryRows)), bold); err != nil {
		return fmt.Errorf("failed to style summary sheet: %w", err)
	}

	fileRows := [][]interface{}{{"File", "Outcome", "Lines Replaced", "Error"}}
	for _, r := range summary.Results {
		errText := ""
		if r.Err != nil {
			errText = r.Err.Error()
		}
		fileRows = append(fileRows, []interface{}{r.Name(), r.Outcome.String(), r.Replacements, errText})
	}
	if err := writeRows(f, FilesSheet, fileRows); err != nil {
		return err
	}
	if err := f.SetCellStyle(FilesSheet, "A1", "D1", bold); err != nil {
		return fmt.Errorf("failed to style files sheet: %w", err)
	}

	if err := f.SetColWidth(SummarySheet, "A", "B", 40); err != nil {
		return fmt.Errorf("failed to size summary columns: %w", err)
	}
	if err := f.SetColWidth(FilesSheet, "A", "A", 40); err != nil {
		return fmt.Errorf("failed to size files columns: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}

	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
