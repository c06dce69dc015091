package export

import (
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/GianniLaBamba/aoristic-kkf/config"
	"github.com/GianniLaBamba/aoristic-kkf/models"
)

// WriteXLSX writes the summary grid to a new spreadsheet in dir, picking the
// first free Aoristic_summary_<N>.xlsx name, and returns the written path.
// The workbook has a single sheet "Aoristic": header row (Range + day
// labels), then 24 data rows with numeric day cells. The file is assembled
// under a temporary name and renamed into place, so a failed write never
// leaves a half-written spreadsheet under the final name.
func WriteXLSX(grid *models.SummaryGrid, dir string) (string, error) {
	path, err := NextFreePath(dir, config.XLSX_EXTENSION)
	if err != nil {
		return "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := config.XLSX_SHEET_NAME
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return "", fmt.Errorf("failed to create sheet %q: %w", sheet, err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return "", fmt.Errorf("failed to drop default sheet: %w", err)
	}

	header := append([]string{config.RANGE_COLUMN_LABEL}, grid.Days...)
	for col, label := range header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return "", fmt.Errorf("failed to address header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, label); err != nil {
			return "", fmt.Errorf("failed to write header cell %q: %w", cell, err)
		}
	}

	for h, rangeLabel := range grid.Ranges {
		cell, err := excelize.CoordinatesToCellName(1, h+2)
		if err != nil {
			return "", fmt.Errorf("failed to address row label cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, rangeLabel); err != nil {
			return "", fmt.Errorf("failed to write row label %q: %w", rangeLabel, err)
		}
		for d, value := range grid.Cells[h] {
			cell, err := excelize.CoordinatesToCellName(d+2, h+2)
			if err != nil {
				return "", fmt.Errorf("failed to address value cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return "", fmt.Errorf("failed to write value cell %q: %w", cell, err)
			}
		}
	}

	tmp := path + ".tmp"
	out, err := os.Create(tmp)
	if err != nil {
		return "", fmt.Errorf("failed to create %q: %w", tmp, err)
	}
	if err := f.Write(out); err != nil {
		out.Close()
		os.Remove(tmp)
		return "", fmt.Errorf("failed to write spreadsheet: %w", err)
	}
	if err := out.Close(); err != nil {
		os.Remove(tmp)
		return "", fmt.Errorf("failed to close %q: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return "", fmt.Errorf("failed to move spreadsheet into place: %w", err)
	}
	return path, nil
}
