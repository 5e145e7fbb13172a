// =============================================================================
// lottosql - Configuration Module
// =============================================================================
//
// This module loads and manages the application configuration. Configuration
// lives in a single YAML file; every key has a default that reproduces the
// behaviour of the original migration script, so running without a config
// file (or with an empty one) is fully supported.
//
// CONFIGURATION KEYS:
//   input_file          - draw export to read (.csv or .xlsx)
//   output_file         - SQL script to write
//   database            - database named in the USE statement
//   table               - target table for INSERT statements
//   sheet_name          - worksheet to read when the input is an XLSX file
//   archive_on_success  - move the input into archive_dir after generation
//   archive_dir         - where processed inputs are moved
//   error_log_dir       - where row failure logs are written
//   csv_settings        - delimiter and header row count
//
// =============================================================================

package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Default paths mirror the original migration layout so a bare
// `lottosql generate` is a drop-in replacement for the old script.
const (
	DefaultInputFile  = "src/main/resources/db/migration/cool.csv"
	DefaultOutputFile = "src/main/resources/db/migration/insert_lottery_data.sql"
	DefaultDatabase   = "cool"
	DefaultTable      = "lottery_result"
)

// Config holds the application configuration.
type Config struct {
	// InputFile is the path to the draw export to convert.
	InputFile string `yaml:"input_file"`

	// OutputFile is the path of the generated SQL script.
	OutputFile string `yaml:"output_file"`

	// Database is the database named in the USE statement of the script.
	Database string `yaml:"database"`

	// Table is the table targeted by the INSERT statements.
	Table string `yaml:"table"`

	// SheetName is the worksheet to read when the input is an XLSX file.
	// Empty means the first sheet of the workbook.
	SheetName string `yaml:"sheet_name"`

	// ArchiveOnSuccess moves the input file into ArchiveDir after a
	// successful generation run.
	ArchiveOnSuccess bool `yaml:"archive_on_success"`

	// ArchiveDir is the directory processed inputs are moved to.
	ArchiveDir string `yaml:"archive_dir"`

	// ErrorLogDir is the directory row failure logs are written to.
	ErrorLogDir string `yaml:"error_log_dir"`

	// CSVSettings contains settings for parsing the input CSV file.
	CSVSettings CSVSettings `yaml:"csv_settings"`
}

// CSVSettings contains settings for parsing CSV input.
type CSVSettings struct {
	// Delimiter is the field separator. Default: ","
	Delimiter string `yaml:"delimiter"`

	// HeaderRows is the number of leading rows discarded before the data
	// begins. Default: 1
	HeaderRows int `yaml:"header_rows"`
}

// Load reads the configuration from a YAML file and applies defaults.
// A missing file is not an error: the defaults describe a complete,
// runnable configuration.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Run entirely on defaults.
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	applyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func applyDefaults(cfg *Config) {
	if cfg.InputFile == "" {
		cfg.InputFile = DefaultInputFile
	}
	if cfg.OutputFile == "" {
		cfg.OutputFile = DefaultOutputFile
	}
	if cfg.Database == "" {
		cfg.Database = DefaultDatabase
	}
	if cfg.Table == "" {
		cfg.Table = DefaultTable
	}
	if cfg.ArchiveDir == "" {
		cfg.ArchiveDir = "./input_archive"
	}
	if cfg.ErrorLogDir == "" {
		cfg.ErrorLogDir = "./logs"
	}
	if cfg.CSVSettings.Delimiter == "" {
		cfg.CSVSettings.Delimiter = ","
	}
	if cfg.CSVSettings.HeaderRows == 0 {
		cfg.CSVSettings.HeaderRows = 1
	}
}

// Validate checks that the configuration is internally consistent.
func (c *Config) Validate() error {
	var errs []string

	if len([]rune(c.CSVSettings.Delimiter)) != 1 {
		errs = append(errs, fmt.Sprintf("csv_settings.delimiter (%q) must be a single character", c.CSVSettings.Delimiter))
	}
	if c.CSVSettings.HeaderRows < 0 {
		errs = append(errs, "csv_settings.header_rows must be non-negative")
	}
	if strings.TrimSpace(c.Database) == "" {
		errs = append(errs, "database must not be blank")
	}
	if strings.TrimSpace(c.Table) == "" {
		errs = append(errs, "table must not be blank")
	}

	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

// DelimiterRune returns the configured delimiter as a rune, or ',' when unset.
func (s *CSVSettings) DelimiterRune() rune {
	runes := []rune(s.Delimiter)
	if len(runes) != 1 {
		return ','
	}
	return runes[0]
}
