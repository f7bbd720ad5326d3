package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"docscan/internal/docclass"
	"docscan/internal/domain"
)

// WriteXLSX renders the record as a single-sheet workbook named after the
// document class.
func WriteXLSX(out io.Writer, d *docclass.Descriptor, rec domain.ExtractedRecord) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := d.Label
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	all := append([][]string{columns}, Rows(d, rec)...)
	for i, row := range all {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		values := make([]interface{}, len(row))
		for j, v := range row {
			values[j] = v
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}

	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}
	if err := f.SetRowStyle(sheet, 1, 1, style); err != nil {
		return fmt.Errorf("styling header: %w", err)
	}
	_ = f.SetColWidth(sheet, "A", "A", 22)
	_ = f.SetColWidth(sheet, "B", "B", 40)
	_ = f.SetColWidth(sheet, "C", "C", 40)

	if _, err := f.WriteTo(out); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}
