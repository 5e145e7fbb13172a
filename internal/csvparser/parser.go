// =============================================================================
// lottosql - CSV Parser Module
// =============================================================================
//
// This module parses the draw export CSV. The export has one header row by
// default (Draw, Date, Winning Number 1..7, Bonus Number 1..2, From Last and
// nine statistics columns) followed by draw rows ordered newest first.
//
// The reader is deliberately permissive: draw rows vary in width because the
// statistics columns were added to the export partway through its history,
// so per-row field counts are not enforced here. Width rules belong to the
// row transformer.
//
// =============================================================================

package csvparser

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/coolrunnings/lottosql/internal/config"
)

// CSVData represents the parsed draw export.
type CSVData struct {
	// Rows contains the data rows in file order (newest draw first),
	// header rows excluded.
	Rows [][]string

	// SourceFile is the path to the source CSV file.
	SourceFile string
}

// Parse reads a draw export CSV and returns its data rows.
//
// The file handle is held only for the duration of this call. Header rows
// are discarded according to the settings; ragged rows are accepted as-is.
func Parse(path string, settings config.CSVSettings) (*CSVData, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = settings.DelimiterRune()
	reader.TrimLeadingSpace = true
	// Draw rows grew extra columns over the export's lifetime.
	reader.FieldsPerRecord = -1

	allRows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}

	headerRows := settings.HeaderRows
	if headerRows > len(allRows) {
		headerRows = len(allRows)
	}

	return &CSVData{
		Rows:       allRows[headerRows:],
		SourceFile: path,
	}, nil
}

// Header returns the first header row of the export, or an error when the
// file has no header row. Used by the validate command to check the shape
// of an export without reading all of it into the pipeline.
func Header(path string, settings config.CSVSettings) ([]string, error) {
	if settings.HeaderRows < 1 {
		return nil, fmt.Errorf("export is configured without header rows")
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = settings.DelimiterRune()
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	return header, nil
}
