package tables

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// sheetNameLimit is the hard cap excelize enforces on sheet names.
const sheetNameLimit = 31

// WriteWorkbook renders the tables into a single XLSX workbook at path, one
// sheet per table in the given order. Sheet names longer than the XLSX limit
// are truncated.
func WriteWorkbook(path string, ts []*Table) error {
	if len(ts) == 0 {
		return nil
	}

	wb := excelize.NewFile()
	defer wb.Close() //nolint: errcheck

	for i, t := range ts {
		sheet := t.Name
		if len(sheet) > sheetNameLimit {
			sheet = sheet[:sheetNameLimit]
		}

		if i == 0 {
			// reuse the default sheet for the first table
			if err := wb.SetSheetName(wb.GetSheetName(0), sheet); err != nil {
				return fmt.Errorf("could not rename sheet %s: %w", sheet, err)
			}
		} else if _, err := wb.NewSheet(sheet); err != nil {
			return fmt.Errorf("could not add sheet %s: %w", sheet, err)
		}

		if err := writeSheet(wb, sheet, t); err != nil {
			return err
		}
	}

	if err := wb.SaveAs(path); err != nil {
		return fmt.Errorf("could not save workbook %s: %w", path, err)
	}

	return nil
}

func writeSheet(wb *excelize.File, sheet string, t *Table) error {
	writeRow := func(rowIdx int, cells []string) error {
		if len(cells) == 0 {
			return nil
		}
		start, err := excelize.CoordinatesToCellName(1, rowIdx)
		if err != nil {
			return fmt.Errorf("could not compute cell name: %w", err)
		}
		row := make([]any, len(cells))
		for i, c := range cells {
			row[i] = c
		}

		return wb.SetSheetRow(sheet, start, &row)
	}

	if err := writeRow(1, t.Headers); err != nil {
		return fmt.Errorf("could not write headers on %s: %w", sheet, err)
	}
	for i, cells := range t.Rows {
		if err := writeRow(i+2, cells); err != nil {
			return fmt.Errorf("could not write row %d on %s: %w", i, sheet, err)
		}
	}

	return nil
}
