// =============================================================================
// lottosql - XLSX Parser Module
// =============================================================================
//
// This module parses draw exports delivered as spreadsheets. The lottery
// site offers the same draw history as an XLSX download, with the identical
// column layout as the CSV export, so the parser flattens a worksheet into
// the same row shape the CSV parser produces.
//
// =============================================================================

package xlsxparser

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// XLSXData represents the parsed draw workbook.
type XLSXData struct {
	// Rows contains the data rows in sheet order (newest draw first),
	// header rows excluded.
	Rows [][]string

	// SourceFile is the path to the source workbook.
	SourceFile string

	// Sheet is the worksheet the rows were read from.
	Sheet string
}

// Parse reads draw rows from a worksheet.
//
// An empty sheet name selects the first sheet of the workbook. headerRows
// leading rows are discarded. Cell values are returned as formatted strings,
// matching the shape of csvparser output so both feed the same transformer.
func Parse(path, sheet string, headerRows int) (*XLSXData, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
		if sheet == "" {
			return nil, fmt.Errorf("workbook has no sheets")
		}
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}

	if headerRows < 0 {
		headerRows = 0
	}
	if headerRows > len(rows) {
		headerRows = len(rows)
	}

	return &XLSXData{
		Rows:       rows[headerRows:],
		SourceFile: path,
		Sheet:      sheet,
	}, nil
}
