// =============================================================================
// lottosql - Row Transformer
// =============================================================================
//
// This module maps one raw export row (an ordered slice of string fields)
// onto one DrawRecord of SQL literals. All coercion is defensive: numeric
// fields that are blank or unparseable become NULL, optional trailing
// columns default to NULL, and no failure is ever surfaced to the caller.
//
// COLUMN LAYOUT (positional):
//   0      Draw
//   1      Date (yyyy-MM-dd)
//   2..8   Winning Number 1..7
//   9..10  Bonus Number 1..2
//   11     From Last (comma-separated, quoted in the export)
//   12..15 Low / High / Odd / Even counts
//   16..20 Range counts 1-10, 11-20, 21-30, 31-40, 41-50
//
// Rows with fewer than 11 fields carry no usable draw and are skipped.
//
// =============================================================================

package converter

import (
	"strconv"
	"strings"

	"github.com/coolrunnings/lottosql/internal/types"
)

// MinRowFields is the minimum number of fields a row must have to yield a
// record: draw, date, seven winning numbers and two bonus numbers.
const MinRowFields = 11

// ParseInteger renders a raw field as a SQL integer literal.
//
// The field is trimmed first; a blank or unparseable field yields the NULL
// marker. ParseInteger is total: it never returns an error.
func ParseInteger(field string) string {
	trimmed := strings.TrimSpace(field)
	if trimmed == "" {
		return types.NullMarker
	}
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return types.NullMarker
	}
	return strconv.Itoa(n)
}

// EscapeSQLString renders a raw field as a single-quoted SQL string literal.
//
// An empty field yields the NULL marker. Embedded single quotes are doubled
// and double quotes (artifacts of the export's quoting) are stripped.
func EscapeSQLString(field string) string {
	if field == "" {
		return types.NullMarker
	}
	escaped := strings.ReplaceAll(field, "'", "''")
	escaped = strings.ReplaceAll(escaped, `"`, "")
	return "'" + escaped + "'"
}

// TransformRow maps one export row onto a DrawRecord.
//
// Rows with fewer than MinRowFields fields return ok=false and are skipped
// without error. All other rows produce exactly one record; missing optional
// columns become NULL.
func TransformRow(row []string) (rec *types.DrawRecord, ok bool) {
	if len(row) < MinRowFields {
		return nil, false
	}

	rec = &types.DrawRecord{}

	rec.Draw = ParseInteger(row[0])

	// The date passes through as-is: the export writes yyyy-MM-dd with no
	// embedded quotes, so it only needs wrapping.
	if row[1] != "" {
		rec.DrawDate = "'" + row[1] + "'"
	} else {
		rec.DrawDate = types.NullMarker
	}

	for i := 0; i < len(rec.WinningNumbers); i++ {
		rec.WinningNumbers[i] = ParseInteger(row[2+i])
	}
	rec.BonusNumbers[0] = ParseInteger(row[9])
	rec.BonusNumbers[1] = ParseInteger(row[10])

	// From Last is a comma-separated list the export wraps in quotes.
	rec.FromLast = types.NullMarker
	if len(row) > 11 {
		fromLast := strings.TrimSpace(strings.ReplaceAll(row[11], `"`, ""))
		if fromLast != "" {
			rec.FromLast = EscapeSQLString(fromLast)
		}
	}

	rec.LowCount = optionalInteger(row, 12)
	rec.HighCount = optionalInteger(row, 13)
	rec.OddCount = optionalInteger(row, 14)
	rec.EvenCount = optionalInteger(row, 15)
	for i := 0; i < len(rec.RangeCounts); i++ {
		rec.RangeCounts[i] = optionalInteger(row, 16+i)
	}

	return rec, true
}

// optionalInteger parses the field at idx, or returns NULL when the row is
// too short to have it.
func optionalInteger(row []string, idx int) string {
	if idx >= len(row) {
		return types.NullMarker
	}
	return ParseInteger(row[idx])
}

// RowContext renders the first five fields of a row for failure logging.
func RowContext(row []string) string {
	n := 5
	if len(row) < n {
		n = len(row)
	}
	return "[" + strings.Join(row[:n], ", ") + "]"
}
