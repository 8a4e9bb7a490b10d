package pipeline

import (
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"marketscan/internal"
)

// ExportReportToXLSX writes the report as a spreadsheet: one row per item
// followed by the summary block.
func ExportReportToXLSX(report internal.ResolutionReport, outputPath string) error {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	headers := []string{"row_no", "item_name", "price_display", "status"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for i, row := range report.Rows {
		r := i + 2
		set := func(col int, value any) {
			cell, _ := excelize.CoordinatesToCellName(col, r)
			_ = f.SetCellValue(sheet, cell, value)
		}

		set(1, i+1)
		set(2, row.Name)
		set(3, row.Display)
		set(4, string(row.Status))
	}

	summary := []struct {
		label string
		value any
	}{
		{"generated", report.GeneratedAt.Format("2006-01-02 15:04")},
		{"total_detected", report.TotalDetected},
		{"success", report.SuccessCount},
		{"failed", report.FailCount},
		{"total_value", report.TotalValue},
	}
	base := len(report.Rows) + 3
	for i, entry := range summary {
		labelCell, _ := excelize.CoordinatesToCellName(1, base+i)
		valueCell, _ := excelize.CoordinatesToCellName(2, base+i)
		_ = f.SetCellValue(sheet, labelCell, entry.label)
		_ = f.SetCellValue(sheet, valueCell, entry.value)
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	return f.SaveAs(outputPath)
}
