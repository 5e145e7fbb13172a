package validation

import (
	"strings"
	"testing"
)

// cleanRow is a fully populated, in-range draw row.
var cleanRow = []string{
	"5", "2020-01-15",
	"1", "2", "3", "4", "5", "6", "7",
	"8", "9",
	"3,1,2",
	"2", "3", "4", "3",
	"1", "2", "1", "1", "2",
}

func TestCheck_CleanRow(t *testing.T) {
	if errs := Check([][]string{cleanRow}); len(errs) != 0 {
		t.Errorf("Check(clean row) = %d findings, want 0: %v", len(errs), errs)
	}
}

func TestCheck_ShortRowsIgnored(t *testing.T) {
	if errs := Check([][]string{{"x"}, {"1", "2020-01-15"}}); len(errs) != 0 {
		t.Errorf("Check(short rows) = %d findings, want 0", len(errs))
	}
}

func TestCheck_BadDraw(t *testing.T) {
	tests := []struct {
		name string
		draw string
	}{
		{"zero", "0"},
		{"negative", "-2"},
		{"non-numeric", "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := append([]string{}, cleanRow...)
			row[0] = tt.draw

			errs := Check([][]string{row})
			if len(errs) != 1 {
				t.Fatalf("Check() = %d findings, want 1", len(errs))
			}
			if errs[0].Field != "draw" {
				t.Errorf("Field = %q, want %q", errs[0].Field, "draw")
			}
			if errs[0].RowNumber != 1 {
				t.Errorf("RowNumber = %d, want 1", errs[0].RowNumber)
			}
		})
	}
}

func TestCheck_BadDate(t *testing.T) {
	row := append([]string{}, cleanRow...)
	row[1] = "15/01/2020"

	errs := Check([][]string{row})
	if len(errs) != 1 {
		t.Fatalf("Check() = %d findings, want 1", len(errs))
	}
	if errs[0].Field != "draw_date" {
		t.Errorf("Field = %q, want %q", errs[0].Field, "draw_date")
	}
}

func TestCheck_BallNumberRange(t *testing.T) {
	row := append([]string{}, cleanRow...)
	row[2] = "0"  // winning_number_1 below range
	row[10] = "51" // bonus_number_2 above range

	errs := Check([][]string{row})
	if len(errs) != 2 {
		t.Fatalf("Check() = %d findings, want 2: %v", len(errs), errs)
	}

	fields := []string{errs[0].Field, errs[1].Field}
	joined := strings.Join(fields, ",")
	if !strings.Contains(joined, "winning_number_1") || !strings.Contains(joined, "bonus_number_2") {
		t.Errorf("fields = %v, want winning_number_1 and bonus_number_2", fields)
	}
}

func TestCheck_CounterRange(t *testing.T) {
	row := append([]string{}, cleanRow...)
	row[12] = "8" // low_count above the seven winning numbers

	errs := Check([][]string{row})
	if len(errs) != 1 {
		t.Fatalf("Check() = %d findings, want 1", len(errs))
	}
	if errs[0].Field != "low_count" {
		t.Errorf("Field = %q, want %q", errs[0].Field, "low_count")
	}
}

func TestCheck_BlankOptionalFieldsPass(t *testing.T) {
	// Early exports lack statistics entirely; blanks are fine.
	row := []string{"1", "2015-08-04", "10", "11", "12", "13", "14", "15", "16", "17", "18"}
	if errs := Check([][]string{row}); len(errs) != 0 {
		t.Errorf("Check(11-field row) = %d findings, want 0: %v", len(errs), errs)
	}
}

func TestCheck_RowNumbering(t *testing.T) {
	bad := append([]string{}, cleanRow...)
	bad[0] = "-1"

	errs := Check([][]string{cleanRow, bad})
	if len(errs) != 1 {
		t.Fatalf("Check() = %d findings, want 1", len(errs))
	}
	if errs[0].RowNumber != 2 {
		t.Errorf("RowNumber = %d, want 2", errs[0].RowNumber)
	}
}

func TestValidationError_Error(t *testing.T) {
	e := &ValidationError{RowNumber: 7, Field: "draw", Value: "x", Message: "draw number is not an integer"}
	msg := e.Error()
	for _, want := range []string{"row 7", "'draw'", "'x'", "not an integer"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Error() = %q, missing %q", msg, want)
		}
	}
}
