// =============================================================================
// lottosql - Validation Module
// =============================================================================
//
// This module checks draw rows for values that are legal to emit but almost
// certainly wrong: non-positive draw numbers, malformed dates, ball numbers
// outside the game's range, impossible distribution counts. Every finding is
// a warning. Validation never blocks generation - the script mirrors the
// export, warts and all - but the warnings give the operator a chance to fix
// the export before loading the script.
//
// =============================================================================

package validation

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Set for Life draws nine balls; distribution counters describe the seven
// winning numbers only.
const (
	minBallNumber = 1
	maxBallNumber = 50
	maxCounter    = 7
)

const dateLayout = "2006-01-02"

// ValidationError describes one suspicious field in one row.
type ValidationError struct {
	// RowNumber is the 1-based position of the row in processing order
	// (oldest draw first).
	RowNumber int

	// Field is the export column that failed the check.
	Field string

	// Value is the raw field value.
	Value string

	// Message describes the violated rule.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("[WARNING] row %d, field '%s': %s (value: '%s')",
		e.RowNumber, e.Field, e.Message, e.Value)
}

// ballFields maps positional indices to column names for the nine drawn
// numbers.
var ballFields = []struct {
	idx  int
	name string
}{
	{2, "winning_number_1"},
	{3, "winning_number_2"},
	{4, "winning_number_3"},
	{5, "winning_number_4"},
	{6, "winning_number_5"},
	{7, "winning_number_6"},
	{8, "winning_number_7"},
	{9, "bonus_number_1"},
	{10, "bonus_number_2"},
}

// counterFields maps positional indices to column names for the statistics
// columns.
var counterFields = []struct {
	idx  int
	name string
}{
	{12, "low_count"},
	{13, "high_count"},
	{14, "odd_count"},
	{15, "even_count"},
	{16, "range_1_10"},
	{17, "range_11_20"},
	{18, "range_21_30"},
	{19, "range_31_40"},
	{20, "range_41_50"},
}

// Check validates rows already in processing order (oldest first) and
// returns all findings. Rows too short to produce a record are ignored;
// the transformer skips those outright.
func Check(rows [][]string) []*ValidationError {
	var errs []*ValidationError

	for i, row := range rows {
		if len(row) < 11 {
			continue
		}
		errs = append(errs, checkRow(i+1, row)...)
	}

	return errs
}

// checkRow validates a single row of at least 11 fields.
func checkRow(rowNumber int, row []string) []*ValidationError {
	var errs []*ValidationError

	warn := func(field, value, message string) {
		errs = append(errs, &ValidationError{
			RowNumber: rowNumber,
			Field:     field,
			Value:     value,
			Message:   message,
		})
	}

	if draw, err := strconv.Atoi(strings.TrimSpace(row[0])); err != nil {
		warn("draw", row[0], "draw number is not an integer")
	} else if draw <= 0 {
		warn("draw", row[0], "draw number must be positive")
	}

	if date := strings.TrimSpace(row[1]); date != "" {
		if _, err := time.Parse(dateLayout, date); err != nil {
			warn("draw_date", row[1], "date is not in yyyy-MM-dd format")
		}
	}

	for _, f := range ballFields {
		value := strings.TrimSpace(row[f.idx])
		if value == "" {
			continue
		}
		n, err := strconv.Atoi(value)
		if err != nil {
			// The transformer turns this into NULL; nothing to flag beyond
			// the unparseable draw case above.
			continue
		}
		if n < minBallNumber || n > maxBallNumber {
			warn(f.name, value, fmt.Sprintf("ball number outside %d..%d", minBallNumber, maxBallNumber))
		}
	}

	for _, f := range counterFields {
		if f.idx >= len(row) {
			break
		}
		value := strings.TrimSpace(row[f.idx])
		if value == "" {
			continue
		}
		n, err := strconv.Atoi(value)
		if err != nil {
			continue
		}
		if n < 0 || n > maxCounter {
			warn(f.name, value, fmt.Sprintf("counter outside 0..%d", maxCounter))
		}
	}

	return errs
}
