package ui

import (
	"testing"
)

// TestParseSelectCount verifies the select-N input boundary
func TestParseSelectCount(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		total   int
		want    int
		wantErr bool
	}{
		{"simple", "5", 100, 5, false},
		{"zero", "0", 100, 0, false},
		{"exactly total", "100", 100, 100, false},
		{"empty", "", 100, 0, true},
		{"not a number", "abc", 100, 0, true},
		{"decimal", "1.5", 100, 0, true},
		{"negative", "-3", 100, 0, true},
		{"beyond total", "101", 100, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSelectCount(tt.value, tt.total)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSelectCount(%q, %d) error = %v, wantErr %v", tt.value, tt.total, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseSelectCount(%q, %d) = %d, want %d", tt.value, tt.total, got, tt.want)
			}
		})
	}
}
