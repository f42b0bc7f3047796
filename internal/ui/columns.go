package ui

// columns.go provides generic column width calculation for bubbles/table.

import (
	"github.com/charmbracelet/bubbles/table"
)

// ColumnSpec defines a table column with flexible or fixed width.
// Use FlexRatio for columns that should expand/contract with terminal width.
// Use FixedWidth for columns that should maintain constant width.
type ColumnSpec struct {
	Title      string
	MinWidth   int // Minimum width (0 = no minimum)
	FixedWidth int // If > 0, use this exact width (ignores FlexRatio)
	FlexRatio  int // Relative ratio for flexible columns (0 = fixed-only)
}

// CalculateColumns computes column widths from specs.
// Flexible columns split remaining space by ratio after fixed columns are
// allocated, respecting minimums.
func CalculateColumns(specs []ColumnSpec, totalWidth int) []table.Column {
	if totalWidth < 50 {
		totalWidth = 50
	}

	fixedTotal := 0
	flexTotal := 0
	for _, s := range specs {
		if s.FixedWidth > 0 {
			fixedTotal += s.FixedWidth
		} else {
			flexTotal += s.FlexRatio
		}
	}

	remaining := totalWidth - fixedTotal
	if remaining < 0 {
		remaining = 0
	}

	columns := make([]table.Column, len(specs))
	for i, s := range specs {
		var width int
		if s.FixedWidth > 0 {
			width = s.FixedWidth
		} else if flexTotal > 0 {
			width = remaining * s.FlexRatio / flexTotal
		}

		if s.MinWidth > 0 && width < s.MinWidth {
			width = s.MinWidth
		}

		columns[i] = table.Column{Title: s.Title, Width: width}
	}

	return columns
}

// ArtworkColumns returns column specs for the main artwork browse table.
// The leading column carries the selection mark.
func ArtworkColumns() []ColumnSpec {
	return []ColumnSpec{
		{Title: "", FixedWidth: 3},
		{Title: "ID", FixedWidth: 8},
		{Title: "Title", FlexRatio: 40, MinWidth: 24},
		{Title: "Artist", FlexRatio: 30, MinWidth: 16},
		{Title: "Origin", FlexRatio: 18, MinWidth: 10},
		{Title: "Dates", FixedWidth: 11},
	}
}

// SelectionColumns returns column specs for the selection review table.
func SelectionColumns() []ColumnSpec {
	return []ColumnSpec{
		{Title: "#", FixedWidth: 5},
		{Title: "ID", FixedWidth: 8},
		{Title: "Title", FlexRatio: 45, MinWidth: 24},
		{Title: "Artist", FlexRatio: 35, MinWidth: 16},
		{Title: "Dates", FixedWidth: 11},
	}
}

// Truncate shortens a string to fit a column width, appending an ellipsis
// when something was cut.
func Truncate(s string, w int) string {
	if len(s) <= w {
		return s
	}
	if w <= 3 {
		return s[:w]
	}
	return s[:w-3] + "..."
}
