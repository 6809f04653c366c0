package datetime

import (
	"testing"
	"time"
)

func TestParseDay(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"Valid date", "2026-08-30", false},
		{"Valid first of month", "2026-01-01", false},
		{"Missing day", "2026-08", true},
		{"Wrong separator", "2026/08/30", true},
		{"Empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDay(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseDay(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestWithinRange(t *testing.T) {
	from := MustParseTime(DayLayout, "2026-08-01")
	to := EndOfDay(MustParseTime(DayLayout, "2026-08-31"))

	tests := []struct {
		name     string
		instant  time.Time
		expected bool
	}{
		{"Middle of range", MustParseTime(LogLayout, "2026-08-15T12:00:00Z"), true},
		{"Start of range", MustParseTime(LogLayout, "2026-08-01T00:00:00Z"), true},
		{"Late on final day", MustParseTime(LogLayout, "2026-08-31T23:30:00Z"), true},
		{"Before range", MustParseTime(LogLayout, "2026-07-31T23:59:00Z"), false},
		{"After range", MustParseTime(LogLayout, "2026-09-01T00:00:00Z"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := WithinRange(tt.instant, from, to)
			if result != tt.expected {
				t.Errorf("WithinRange(%v) = %v, expected %v", tt.instant, result, tt.expected)
			}
		})
	}
}
