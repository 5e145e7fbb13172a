// =============================================================================
// lottosql - File Manager Utility
// =============================================================================
//
// This module provides file management for the generator:
//   - Archival of processed draw exports
//   - Row failure / validation warning logs
//   - Directory management
//
// ARCHIVAL STRATEGY:
//   - Input exports are moved to the archive directory after a successful run
//   - Archived names carry a timestamp and a short UUID so repeated runs of
//     identically named exports never collide
//   - Failed runs leave the input where it was
//
// =============================================================================

package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// FileManager handles archival and log file placement.
type FileManager struct {
	// ArchiveDir is the directory processed inputs are moved to.
	ArchiveDir string

	// ErrorLogDir is the directory warning logs are written to.
	ErrorLogDir string
}

// NewFileManager creates a FileManager for the given directories.
func NewFileManager(archiveDir, errorLogDir string) *FileManager {
	return &FileManager{
		ArchiveDir:  archiveDir,
		ErrorLogDir: errorLogDir,
	}
}

// EnsureDirectories creates the archive and log directories if needed.
func (fm *FileManager) EnsureDirectories() error {
	for _, dir := range []string{fm.ArchiveDir, fm.ErrorLogDir} {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// ArchiveInput moves a processed input file into the archive directory and
// returns the archived path.
func (fm *FileManager) ArchiveInput(path string) (string, error) {
	if err := fm.EnsureDirectories(); err != nil {
		return "", err
	}

	dest := filepath.Join(fm.ArchiveDir, stampedName(filepath.Base(path)))
	if err := os.Rename(path, dest); err != nil {
		return "", fmt.Errorf("failed to archive input file: %w", err)
	}
	return dest, nil
}

// WriteErrorLog writes one line per finding to a fresh log file named after
// the input file, and returns the log path. No file is written when there
// are no lines.
func (fm *FileManager) WriteErrorLog(inputPath string, lines []string) (string, error) {
	if len(lines) == 0 {
		return "", nil
	}
	if err := fm.EnsureDirectories(); err != nil {
		return "", err
	}

	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	logPath := filepath.Join(fm.ErrorLogDir, stampedName(base+"_warnings.log"))

	content := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(logPath, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write error log: %w", err)
	}
	return logPath, nil
}

// FileExists reports whether path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// stampedName inserts a timestamp and a short UUID before the extension of
// name. Example: cool.csv -> cool_20240115_093000_1a2b3c4d.csv
func stampedName(name string) string {
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	stamp := time.Now().Format("20060102_150405")
	short := uuid.New().String()[:8]
	return fmt.Sprintf("%s_%s_%s%s", base, stamp, short, ext)
}
