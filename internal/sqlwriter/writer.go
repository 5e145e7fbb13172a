// =============================================================================
// lottosql - SQL Writer Module
// =============================================================================
//
// This module assembles the generated SQL script. The script layout is fixed:
//
//   -- comment preamble
//   USE <database>;
//   INSERT INTO `<table>` (...) VALUES (...);   <- one per record
//   -- total <n> records inserted
//
// Each INSERT uses the original migration's multi-line template with
// backtick-quoted identifiers so the output diffs cleanly against scripts
// produced by the old tooling.
//
// =============================================================================

package sqlwriter

import (
	"fmt"
	"strings"

	"github.com/coolrunnings/lottosql/internal/types"
)

// insertTemplate is the fixed statement layout. The two %s verbs take the
// table name and the comma-joined value lines.
const insertTemplate = "INSERT INTO `%s` (\n" +
	"    `draw`, `draw_date`,\n" +
	"    `winning_number_1`, `winning_number_2`, `winning_number_3`, `winning_number_4`,\n" +
	"    `winning_number_5`, `winning_number_6`, `winning_number_7`,\n" +
	"    `bonus_number_1`, `bonus_number_2`,\n" +
	"    `from_last`,\n" +
	"    `low_count`, `high_count`, `odd_count`, `even_count`,\n" +
	"    `range_1_10`, `range_11_20`, `range_21_30`, `range_31_40`, `range_41_50`\n" +
	") VALUES (\n" +
	"%s\n" +
	");"

// InsertStatement renders one INSERT for a record.
func InsertStatement(table string, rec *types.DrawRecord) string {
	v := rec.Values()

	// Value lines mirror the grouping of the column list.
	lines := []string{
		"    " + strings.Join(v[0:2], ", ") + ",",
		"    " + strings.Join(v[2:6], ", ") + ",",
		"    " + strings.Join(v[6:9], ", ") + ",",
		"    " + strings.Join(v[9:11], ", ") + ",",
		"    " + v[11] + ",",
		"    " + strings.Join(v[12:16], ", ") + ",",
		"    " + strings.Join(v[16:21], ", "),
	}

	return fmt.Sprintf(insertTemplate, table, strings.Join(lines, "\n"))
}

// Script accumulates statements and renders the complete output file.
type Script struct {
	database   string
	table      string
	statements []string
	count      int
}

// NewScript creates a Script targeting the given database and table.
func NewScript(database, table string) *Script {
	s := &Script{
		database: database,
		table:    table,
	}

	s.statements = append(s.statements,
		"-- Set for Life lottery result data load",
		"-- INSERT statements generated from the draw export",
		"-- Ordered from Draw 1 upward",
		"",
		fmt.Sprintf("USE %s;", database),
		"",
		"-- Optional: clear existing data first",
		fmt.Sprintf("-- DELETE FROM %s;", table),
		"",
		"-- Data load begins (oldest draw first)",
		"",
	)

	return s
}

// Append adds the INSERT statement for one record.
func (s *Script) Append(rec *types.DrawRecord) {
	s.statements = append(s.statements, InsertStatement(s.table, rec))
	s.count++
}

// Count returns the number of INSERT statements appended so far.
func (s *Script) Count() int {
	return s.count
}

// Render returns the complete script, trailer included, as file contents.
func (s *Script) Render() []byte {
	out := make([]string, len(s.statements), len(s.statements)+2)
	copy(out, s.statements)
	out = append(out, "", fmt.Sprintf("-- total %d records inserted", s.count))
	return []byte(strings.Join(out, "\n"))
}
