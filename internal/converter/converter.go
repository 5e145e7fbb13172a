// =============================================================================
// lottosql - Converter Module
// =============================================================================
//
// This module orchestrates the generation pipeline for one draw export:
//
//   1. Read the export (CSV or XLSX, chosen by file extension)
//   2. Reverse the rows so the oldest draw comes first
//   3. Validate rows and collect warnings (non-fatal)
//   4. Transform each row into a DrawRecord and append its INSERT
//   5. Write the SQL script
//   6. Write the warning log and archive the input
//
// The pipeline is single-threaded and runs to completion on a bounded local
// file; there are no cancellation semantics.
//
// =============================================================================

package converter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/coolrunnings/lottosql/internal/config"
	"github.com/coolrunnings/lottosql/internal/csvparser"
	"github.com/coolrunnings/lottosql/internal/sqlwriter"
	"github.com/coolrunnings/lottosql/internal/validation"
	"github.com/coolrunnings/lottosql/internal/xlsxparser"
	"github.com/coolrunnings/lottosql/pkg/utils"
)

// progressInterval is how many generated records pass between progress
// log lines.
const progressInterval = 100

// Result represents the outcome of one generation run.
type Result struct {
	// InputFile is the export that was processed.
	InputFile string

	// OutputFile is the generated SQL script. Empty on failure.
	OutputFile string

	// Success indicates whether the run completed.
	Success bool

	// Error contains the failure when Success is false.
	Error error

	// Stats contains processing statistics.
	Stats ProcessingStats
}

// ProcessingStats contains statistics about a generation run.
type ProcessingStats struct {
	// RowsRead is the number of data rows read from the export.
	RowsRead int

	// RecordsWritten is the number of INSERT statements generated.
	RecordsWritten int

	// RowsSkipped is the number of rows dropped for having too few fields.
	RowsSkipped int

	// Warnings is the number of validation findings.
	Warnings int

	// ProcessingTime is the elapsed wall time of the run.
	ProcessingTime time.Duration
}

// Converter generates the SQL script for one draw export.
type Converter struct {
	cfg    *config.Config
	logger Logger

	// dryRun parses and validates but writes no output and archives nothing.
	dryRun bool
}

// New creates a Converter for the given configuration.
func New(cfg *config.Config) *Converter {
	return &Converter{
		cfg:    cfg,
		logger: NewStdLogger(false),
	}
}

// SetLogger replaces the default stdout logger.
func (c *Converter) SetLogger(logger Logger) {
	if logger != nil {
		c.logger = logger
	}
}

// SetDryRun toggles dry-run mode.
func (c *Converter) SetDryRun(dryRun bool) {
	c.dryRun = dryRun
}

// Run executes the generation pipeline.
func (c *Converter) Run() Result {
	startTime := time.Now()
	result := Result{
		InputFile: c.cfg.InputFile,
	}

	// The input must exist before anything else happens; a missing export
	// is the one fatal, pre-processing error.
	if !utils.FileExists(c.cfg.InputFile) {
		result.Error = fmt.Errorf("input file not found: %s", c.cfg.InputFile)
		return result
	}

	c.logger.Info("Processing export: %s", c.cfg.InputFile)

	rows, err := c.readRows()
	if err != nil {
		result.Error = err
		return result
	}
	result.Stats.RowsRead = len(rows)
	c.logger.Debug("Read %d data rows", len(rows))

	// The export lists the newest draw first; the script must insert the
	// oldest draw first so serial numbering ascends.
	reverseRows(rows)

	warnings := validation.Check(rows)
	result.Stats.Warnings = len(warnings)
	warningLines := make([]string, 0, len(warnings))
	for _, w := range warnings {
		c.logger.Warn("%s", w.Error())
		warningLines = append(warningLines, w.Error())
	}

	script := sqlwriter.NewScript(c.cfg.Database, c.cfg.Table)

	for i, row := range rows {
		rec, ok := TransformRow(row)
		if !ok {
			result.Stats.RowsSkipped++
			c.logger.Debug("Row %d skipped: %d fields, need %d; fields: %s",
				i+1, len(row), MinRowFields, RowContext(row))
			continue
		}

		script.Append(rec)

		if script.Count()%progressInterval == 0 {
			c.logger.Info("Progress: %d records processed...", script.Count())
		}
	}

	result.Stats.RecordsWritten = script.Count()

	if c.dryRun {
		c.logger.Info("Dry run: %d INSERT statements generated, nothing written", script.Count())
		result.Success = true
		result.Stats.ProcessingTime = time.Since(startTime)
		return result
	}

	if err := c.writeScript(script); err != nil {
		result.Error = err
		return result
	}
	result.OutputFile = c.cfg.OutputFile
	c.logger.Info("Wrote output to: %s", c.cfg.OutputFile)

	fm := utils.NewFileManager(c.cfg.ArchiveDir, c.cfg.ErrorLogDir)

	if len(warningLines) > 0 {
		logPath, err := fm.WriteErrorLog(c.cfg.InputFile, warningLines)
		if err != nil {
			c.logger.Warn("Failed to write warning log: %v", err)
		} else {
			c.logger.Info("Wrote %d warnings to: %s", len(warningLines), logPath)
		}
	}

	if c.cfg.ArchiveOnSuccess {
		dest, err := fm.ArchiveInput(c.cfg.InputFile)
		if err != nil {
			c.logger.Warn("Failed to archive input: %v", err)
		} else {
			c.logger.Info("Archived input to: %s", dest)
		}
	}

	result.Success = true
	result.Stats.ProcessingTime = time.Since(startTime)

	c.logger.Info("Done: %d INSERT statements generated", script.Count())

	return result
}

// readRows loads the export's data rows, selecting the parser by extension.
func (c *Converter) readRows() ([][]string, error) {
	ext := strings.ToLower(filepath.Ext(c.cfg.InputFile))

	if ext == ".xlsx" {
		data, err := xlsxparser.Parse(c.cfg.InputFile, c.cfg.SheetName, c.cfg.CSVSettings.HeaderRows)
		if err != nil {
			return nil, fmt.Errorf("failed to parse XLSX: %w", err)
		}
		return data.Rows, nil
	}

	data, err := csvparser.Parse(c.cfg.InputFile, c.cfg.CSVSettings)
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	return data.Rows, nil
}

// writeScript writes the rendered script to the configured output path,
// creating the parent directory when necessary.
func (c *Converter) writeScript(script *sqlwriter.Script) error {
	if dir := filepath.Dir(c.cfg.OutputFile); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(c.cfg.OutputFile, script.Render(), 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// reverseRows reverses rows in place.
func reverseRows(rows [][]string) {
	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}
}
