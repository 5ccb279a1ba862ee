package domain

import (
	"testing"
	"time"
)

func TestLeaveDays(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2025, time.June, d, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"single day", day(2), day(2), 1},
		{"full week", day(2), day(8), 7},
		{"two days", day(30), time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LeaveDays(tt.start, tt.end); got != tt.want {
				t.Errorf("LeaveDays(%v, %v) = %d, want %d", tt.start, tt.end, got, tt.want)
			}
		})
	}
}
