// Package export builds the spreadsheet representation of the bill book.
package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// BillRow is one spreadsheet row.
type BillRow struct {
	Serial int64
	Biller string
	Date   string // formatted as 2006-01-02
	Total  float64
}

const sheetName = "Bills"

// inrNumFmt shows totals as rupee amounts inside the spreadsheet.
const inrNumFmt = `"₹"#,##0.00`

// ExcelWorkbook writes all bill rows into a single-sheet xlsx workbook
// and returns the serialized file.
func ExcelWorkbook(rows []BillRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("export: failed to create sheet: %w", err)
	}

	headers := []string{"Serial", "Biller", "Date", "Total"}
	widths := []float64{10, 20, 15, 15}
	for i, header := range headers {
		col := string(rune('A' + i))
		if err := f.SetCellValue(sheetName, col+"1", header); err != nil {
			return nil, fmt.Errorf("export: failed to write header: %w", err)
		}
		if err := f.SetColWidth(sheetName, col, col, widths[i]); err != nil {
			return nil, fmt.Errorf("export: failed to set column width: %w", err)
		}
	}

	for i, row := range rows {
		rowNum := i + 2
		if err := f.SetCellValue(sheetName, fmt.Sprintf("A%d", rowNum), row.Serial); err != nil {
			return nil, fmt.Errorf("export: failed to write row: %w", err)
		}
		if err := f.SetCellValue(sheetName, fmt.Sprintf("B%d", rowNum), row.Biller); err != nil {
			return nil, fmt.Errorf("export: failed to write row: %w", err)
		}
		if err := f.SetCellValue(sheetName, fmt.Sprintf("C%d", rowNum), row.Date); err != nil {
			return nil, fmt.Errorf("export: failed to write row: %w", err)
		}
		if err := f.SetCellValue(sheetName, fmt.Sprintf("D%d", rowNum), row.Total); err != nil {
			return nil, fmt.Errorf("export: failed to write row: %w", err)
		}
	}

	if len(rows) > 0 {
		numFmt := inrNumFmt
		styleID, err := f.NewStyle(&excelize.Style{CustomNumFmt: &numFmt})
		if err != nil {
			return nil, fmt.Errorf("export: failed to create currency style: %w", err)
		}
		lastCell := fmt.Sprintf("D%d", len(rows)+1)
		if err := f.SetCellStyle(sheetName, "D2", lastCell, styleID); err != nil {
			return nil, fmt.Errorf("export: failed to apply currency style: %w", err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("export: failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}
