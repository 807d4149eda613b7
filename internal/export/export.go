// Package export writes the requisition listing to spreadsheet files.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MEKXH/requisition/internal/requisition"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Requisitions"

var headers = []string{"Requisition ID", "Date", "Staff ID", "Staff name", "Items", "Total", "Status", "Approval reference"}

// Write exports records to path. The format follows the extension: .csv or .xlsx.
func Write(path string, records []requisition.Requisition) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return WriteCSV(path, records)
	case ".xlsx":
		return WriteXLSX(path, records)
	default:
		return fmt.Errorf("unsupported export format %q (expected .csv or .xlsx)", filepath.Ext(path))
	}
}

func row(r requisition.Requisition) []string {
	ref, _ := r.Reference()
	return []string{
		r.ID,
		r.Date,
		r.StaffID,
		r.StaffName,
		fmt.Sprintf("%d", len(r.Items)),
		r.Total.StringFixed(2),
		string(r.Status),
		ref,
	}
}

// WriteCSV exports records as comma separated values with a header row.
func WriteCSV(path string, records []requisition.Requisition) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create export directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(headers); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range records {
		if err := writer.Write(row(r)); err != nil {
			return fmt.Errorf("write csv row %s: %w", r.ID, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return f.Close()
}

// WriteXLSX exports records as a single-sheet workbook.
func WriteXLSX(path string, records []requisition.Requisition) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("name sheet: %w", err)
	}

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}

	for idx, r := range records {
		rowNum := idx + 2
		for col, value := range row(r) {
			cell, _ := excelize.CoordinatesToCellName(col+1, rowNum)
			var v any = value
			if col == 5 {
				// totals as numbers so spreadsheet formulas work
				v = r.Total.InexactFloat64()
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return fmt.Errorf("write row %s: %w", r.ID, err)
			}
		}
	}

	_ = f.SetColWidth(sheetName, "A", "A", 16)
	_ = f.SetColWidth(sheetName, "B", "C", 12)
	_ = f.SetColWidth(sheetName, "D", "D", 24)
	_ = f.SetColWidth(sheetName, "E", "G", 14)
	_ = f.SetColWidth(sheetName, "H", "H", 20)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create export directory: %w", err)
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}
