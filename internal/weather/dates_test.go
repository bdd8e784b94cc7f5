package weather

import (
	"testing"
	"time"
)

func TestTargetDate(t *testing.T) {
	// Trip starts 2025-12-09 in Japan.
	start := time.Date(2025, time.December, 9, 0, 0, 0, 0, tripZone)

	tests := []struct {
		dayOffset int
		want      string
	}{
		{1, "2025-12-09"},
		{2, "2025-12-10"},
		{5, "2025-12-13"},
	}

	for _, tt := range tests {
		got := TargetDate(start, tt.dayOffset)
		if got.Format("2006-01-02") != tt.want {
			t.Errorf("TargetDate(day %d): got %s want %s",
				tt.dayOffset, got.Format("2006-01-02"), tt.want)
		}
	}
}

// TestTargetDateIsViewerTimezoneStable feeds the same instant expressed in
// a western timezone, where the wall-clock date is still the previous day,
// and expects the trip-local date regardless.
func TestTargetDateIsViewerTimezoneStable(t *testing.T) {
	// Midnight 2025-12-09 JST is 15:00 2025-12-08 UTC.
	startUTC := time.Date(2025, time.December, 8, 15, 0, 0, 0, time.UTC)

	got := TargetDate(startUTC, 1)
	if got.Format("2006-01-02") != "2025-12-09" {
		t.Errorf("day 1 from a UTC-expressed start: got %s want 2025-12-09",
			got.Format("2006-01-02"))
	}

	if got.Location() != tripZone {
		t.Errorf("target date computed in %v, want trip zone", got.Location())
	}
}
