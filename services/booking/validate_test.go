package booking

import (
	"testing"
	"time"

	"lenslink/models"
)

func TestParseClockTime(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:30", 570, false},
		{"9:30", 570, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"12", 0, true},
		{"12:5", 0, true},
		{"", 0, true},
		{"noon", 0, true},
	}
	for _, tc := range cases {
		got, err := parseClockTime(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("parseClockTime(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseClockTime(%q): unexpected error %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("parseClockTime(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestComputeDuration(t *testing.T) {
	if d := computeDuration(600, 840); d != 4 {
		t.Fatalf("expected 4h, got %v", d)
	}
	if d := computeDuration(600, 690); d != 1.5 {
		t.Fatalf("expected 1.5h, got %v", d)
	}
	if d := computeDuration(840, 600); d >= 0 {
		t.Fatalf("expected negative duration, got %v", d)
	}
}

func TestDayAvailabilityFor_WeekdayMapping(t *testing.T) {
	avail := models.WeeklyAvailability{
		Monday: models.DayAvailability{Available: true, TimeSlots: []string{"mon"}},
		Sunday: models.DayAvailability{Available: true, TimeSlots: []string{"sun"}},
	}

	// 2025-07-14 is a Monday, 2025-07-13 a Sunday.
	monday := dayAvailabilityFor(avail, time.Date(2025, time.July, 14, 0, 0, 0, 0, time.UTC))
	if !monday.Available || monday.TimeSlots[0] != "mon" {
		t.Fatalf("expected Monday entry, got %+v", monday)
	}
	sunday := dayAvailabilityFor(avail, time.Date(2025, time.July, 13, 0, 0, 0, 0, time.UTC))
	if !sunday.Available || sunday.TimeSlots[0] != "sun" {
		t.Fatalf("expected Sunday entry, got %+v", sunday)
	}
	tuesday := dayAvailabilityFor(avail, time.Date(2025, time.July, 15, 0, 0, 0, 0, time.UTC))
	if tuesday.Available {
		t.Fatalf("expected undeclared Tuesday to be unavailable, got %+v", tuesday)
	}
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name           string
		s1, e1, s2, e2 int
		want           bool
	}{
		{"full overlap", 600, 720, 600, 720, true},
		{"partial overlap", 600, 720, 660, 780, true},
		{"containment", 600, 840, 660, 720, true},
		{"back-to-back", 600, 720, 720, 840, false},
		{"disjoint", 600, 720, 780, 840, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := overlaps(tc.s1, tc.e1, tc.s2, tc.e2); got != tc.want {
				t.Fatalf("overlaps(%d,%d,%d,%d) = %v, want %v", tc.s1, tc.e1, tc.s2, tc.e2, got, tc.want)
			}
			// Overlap is symmetric.
			if got := overlaps(tc.s2, tc.e2, tc.s1, tc.e1); got != tc.want {
				t.Fatalf("overlaps not symmetric for %s", tc.name)
			}
		})
	}
}
