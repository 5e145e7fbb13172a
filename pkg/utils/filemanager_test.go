package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestArchiveInput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "cool.csv")
	if err := os.WriteFile(input, []byte("data"), 0644); err != nil {
		t.Fatalf("writing input: %v", err)
	}

	fm := NewFileManager(filepath.Join(dir, "archive"), filepath.Join(dir, "logs"))

	dest, err := fm.ArchiveInput(input)
	if err != nil {
		t.Fatalf("ArchiveInput() error = %v", err)
	}

	if _, err := os.Stat(input); !os.IsNotExist(err) {
		t.Error("input still exists after archival")
	}

	base := filepath.Base(dest)
	if !strings.HasPrefix(base, "cool_") || !strings.HasSuffix(base, ".csv") {
		t.Errorf("archived name = %q, want cool_<stamp>_<id>.csv", base)
	}

	content, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("reading archived file: %v", err)
	}
	if string(content) != "data" {
		t.Errorf("archived content = %q, want %q", content, "data")
	}
}

func TestArchiveInput_UniqueNames(t *testing.T) {
	dir := t.TempDir()
	fm := NewFileManager(filepath.Join(dir, "archive"), filepath.Join(dir, "logs"))

	seen := map[string]bool{}
	for i := 0; i < 3; i++ {
		input := filepath.Join(dir, "cool.csv")
		if err := os.WriteFile(input, []byte("x"), 0644); err != nil {
			t.Fatalf("writing input: %v", err)
		}
		dest, err := fm.ArchiveInput(input)
		if err != nil {
			t.Fatalf("ArchiveInput() error = %v", err)
		}
		if seen[dest] {
			t.Fatalf("duplicate archive name: %s", dest)
		}
		seen[dest] = true
	}
}

func TestWriteErrorLog(t *testing.T) {
	dir := t.TempDir()
	fm := NewFileManager(filepath.Join(dir, "archive"), filepath.Join(dir, "logs"))

	logPath, err := fm.WriteErrorLog(filepath.Join(dir, "cool.csv"), []string{"warning one", "warning two"})
	if err != nil {
		t.Fatalf("WriteErrorLog() error = %v", err)
	}

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	if string(content) != "warning one\nwarning two\n" {
		t.Errorf("log content = %q", content)
	}
	if !strings.Contains(filepath.Base(logPath), "cool_warnings") {
		t.Errorf("log name = %q, want cool_warnings prefix", filepath.Base(logPath))
	}
}

func TestWriteErrorLog_NoLines(t *testing.T) {
	dir := t.TempDir()
	fm := NewFileManager(filepath.Join(dir, "archive"), filepath.Join(dir, "logs"))

	logPath, err := fm.WriteErrorLog("cool.csv", nil)
	if err != nil {
		t.Fatalf("WriteErrorLog() error = %v", err)
	}
	if logPath != "" {
		t.Errorf("logPath = %q, want empty", logPath)
	}
	if _, err := os.Stat(filepath.Join(dir, "logs")); !os.IsNotExist(err) {
		t.Error("log directory was created with nothing to write")
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f.txt")
	if FileExists(path) {
		t.Error("FileExists() = true for a missing file")
	}
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("writing file: %v", err)
	}
	if !FileExists(path) {
		t.Error("FileExists() = false for an existing file")
	}
	if FileExists(dir) {
		t.Error("FileExists() = true for a directory")
	}
}
