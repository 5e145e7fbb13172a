// =============================================================================
// lottosql - SQLite Loader Module
// =============================================================================
//
// This module smoke-loads a generated script into a local SQLite database.
// Loading the script locally catches malformed statements before the script
// is handed to the real MySQL instance.
//
// DIALECT NOTES:
//   - SQLite accepts the backtick-quoted identifiers the script uses
//   - USE statements have no SQLite equivalent and are skipped
//   - Comment lines are skipped
//
// =============================================================================

package loader

import (
	"bufio"
	"database/sql"
	"fmt"
	"os"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// createTableSQL mirrors the lottery_result schema of the target database,
// translated to SQLite types.
const createTableSQL = `CREATE TABLE IF NOT EXISTS lottery_result (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	draw INTEGER NOT NULL UNIQUE,
	draw_date TEXT NOT NULL,
	winning_number_1 INTEGER,
	winning_number_2 INTEGER,
	winning_number_3 INTEGER,
	winning_number_4 INTEGER,
	winning_number_5 INTEGER,
	winning_number_6 INTEGER,
	winning_number_7 INTEGER,
	bonus_number_1 INTEGER,
	bonus_number_2 INTEGER,
	from_last TEXT,
	low_count INTEGER,
	high_count INTEGER,
	odd_count INTEGER,
	even_count INTEGER,
	range_1_10 INTEGER,
	range_11_20 INTEGER,
	range_21_30 INTEGER,
	range_31_40 INTEGER,
	range_41_50 INTEGER
)`

// Open opens (or creates) the SQLite database and ensures the
// lottery_result table exists.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec(createTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create lottery_result table: %w", err)
	}

	return db, nil
}

// Apply executes a generated script against the database inside a single
// transaction and returns the number of statements executed. Any statement
// failure rolls back the whole load.
func Apply(db *sql.DB, scriptPath string) (int, error) {
	data, err := os.ReadFile(scriptPath)
	if err != nil {
		return 0, fmt.Errorf("failed to read script: %w", err)
	}

	statements := SplitStatements(string(data))

	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	executed := 0
	for _, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return executed, fmt.Errorf("statement %d failed: %w", executed+1, err)
		}
		executed++
	}

	if err := tx.Commit(); err != nil {
		return executed, fmt.Errorf("failed to commit: %w", err)
	}

	return executed, nil
}

// Count returns the number of rows in lottery_result.
func Count(db *sql.DB) (int, error) {
	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM lottery_result").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count rows: %w", err)
	}
	return n, nil
}

// SplitStatements extracts executable statements from a generated script.
// Comment lines, blank lines and USE statements are dropped; everything
// else accumulates until a line ends with a semicolon.
func SplitStatements(script string) []string {
	var statements []string
	var current []string

	scanner := bufio.NewScanner(strings.NewReader(script))
	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)

		if len(current) == 0 {
			if trimmed == "" || strings.HasPrefix(trimmed, "--") {
				continue
			}
			if strings.HasPrefix(strings.ToUpper(trimmed), "USE ") {
				continue
			}
		}

		current = append(current, line)

		if strings.HasSuffix(trimmed, ";") {
			statements = append(statements, strings.Join(current, "\n"))
			current = nil
		}
	}

	return statements
}
