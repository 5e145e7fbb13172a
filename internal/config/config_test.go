package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.InputFile != DefaultInputFile {
		t.Errorf("InputFile = %q, want %q", cfg.InputFile, DefaultInputFile)
	}
	if cfg.OutputFile != DefaultOutputFile {
		t.Errorf("OutputFile = %q, want %q", cfg.OutputFile, DefaultOutputFile)
	}
	if cfg.Database != "cool" {
		t.Errorf("Database = %q, want %q", cfg.Database, "cool")
	}
	if cfg.Table != "lottery_result" {
		t.Errorf("Table = %q, want %q", cfg.Table, "lottery_result")
	}
	if cfg.CSVSettings.Delimiter != "," {
		t.Errorf("Delimiter = %q, want %q", cfg.CSVSettings.Delimiter, ",")
	}
	if cfg.CSVSettings.HeaderRows != 1 {
		t.Errorf("HeaderRows = %d, want 1", cfg.CSVSettings.HeaderRows)
	}
}

func TestLoad_FromYAML(t *testing.T) {
	content := `input_file: exports/draws.xlsx
output_file: out/load.sql
database: lotto
table: draws
sheet_name: History
archive_on_success: true
csv_settings:
  delimiter: ";"
  header_rows: 2
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.InputFile != "exports/draws.xlsx" {
		t.Errorf("InputFile = %q, want %q", cfg.InputFile, "exports/draws.xlsx")
	}
	if cfg.Database != "lotto" {
		t.Errorf("Database = %q, want %q", cfg.Database, "lotto")
	}
	if cfg.SheetName != "History" {
		t.Errorf("SheetName = %q, want %q", cfg.SheetName, "History")
	}
	if !cfg.ArchiveOnSuccess {
		t.Error("ArchiveOnSuccess = false, want true")
	}
	if cfg.CSVSettings.DelimiterRune() != ';' {
		t.Errorf("DelimiterRune() = %q, want ';'", cfg.CSVSettings.DelimiterRune())
	}
	if cfg.CSVSettings.HeaderRows != 2 {
		t.Errorf("HeaderRows = %d, want 2", cfg.CSVSettings.HeaderRows)
	}
}

func TestLoad_InvalidDelimiter(t *testing.T) {
	content := "csv_settings:\n  delimiter: \",,\"\n"
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() accepted a two-character delimiter")
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("input_file: [unclosed"), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() accepted malformed YAML")
	}
}

func TestDelimiterRune_Default(t *testing.T) {
	s := CSVSettings{}
	if got := s.DelimiterRune(); got != ',' {
		t.Errorf("DelimiterRune() = %q, want ','", got)
	}
}
