package ui

import "testing"

// TestCalculateColumns verifies fixed widths are honored and flexible
// columns split the remainder by ratio
func TestCalculateColumns(t *testing.T) {
	specs := []ColumnSpec{
		{Title: "A", FixedWidth: 10},
		{Title: "B", FlexRatio: 30},
		{Title: "C", FlexRatio: 60},
	}

	columns := CalculateColumns(specs, 100)

	if columns[0].Width != 10 {
		t.Errorf("fixed column width = %d, want 10", columns[0].Width)
	}
	if columns[1].Width != 30 {
		t.Errorf("flex column B width = %d, want 30", columns[1].Width)
	}
	if columns[2].Width != 60 {
		t.Errorf("flex column C width = %d, want 60", columns[2].Width)
	}
}

func TestCalculateColumnsRespectsMinimums(t *testing.T) {
	specs := []ColumnSpec{
		{Title: "A", FlexRatio: 1, MinWidth: 40},
		{Title: "B", FlexRatio: 99},
	}

	columns := CalculateColumns(specs, 50)
	if columns[0].Width < 40 {
		t.Errorf("column A width = %d, want >= 40", columns[0].Width)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly ten!", 12, "exactly ten!"},
		{"a much longer string", 10, "a much ..."},
		{"tiny", 2, "ti"},
	}

	for _, tt := range tests {
		if got := Truncate(tt.input, tt.width); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.want)
		}
	}
}
