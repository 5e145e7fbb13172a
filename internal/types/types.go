// =============================================================================
// lottosql - Shared Types
// =============================================================================
//
// This package contains shared types used across multiple modules to avoid
// import cycles. Types defined here are used by:
//   - converter
//   - sqlwriter
//   - validation
//
// =============================================================================

package types

// NullMarker is the literal token emitted for absent or unparseable values.
const NullMarker = "NULL"

// DrawRecord holds the 21 column values of one lottery_result row, each
// already rendered as a SQL literal: a bare integer, a single-quoted string,
// or the NULL marker. A DrawRecord is derived from exactly one input row and
// serialized immediately; it is never mutated after construction.
type DrawRecord struct {
	// Draw is the serial draw number.
	Draw string

	// DrawDate is the draw date literal ('yyyy-MM-dd') or NULL.
	DrawDate string

	// WinningNumbers holds winning_number_1 through winning_number_7.
	WinningNumbers [7]string

	// BonusNumbers holds bonus_number_1 and bonus_number_2.
	BonusNumbers [2]string

	// FromLast is the comma-separated recurrence list literal or NULL.
	FromLast string

	// LowCount, HighCount, OddCount and EvenCount are the low/high and
	// odd/even distribution counters.
	LowCount  string
	HighCount string
	OddCount  string
	EvenCount string

	// RangeCounts holds range_1_10, range_11_20, range_21_30, range_31_40
	// and range_41_50.
	RangeCounts [5]string
}

// Values returns the record's literals in table column order.
func (r *DrawRecord) Values() []string {
	values := make([]string, 0, 21)
	values = append(values, r.Draw, r.DrawDate)
	values = append(values, r.WinningNumbers[:]...)
	values = append(values, r.BonusNumbers[:]...)
	values = append(values, r.FromLast)
	values = append(values, r.LowCount, r.HighCount, r.OddCount, r.EvenCount)
	values = append(values, r.RangeCounts[:]...)
	return values
}
