package booking

import (
	"fmt"
	"time"
)

// overlaps reports whether the half-open minute ranges [s1,e1) and [s2,e2)
// intersect. Equal boundaries (back-to-back bookings) do not conflict.
func overlaps(s1, e1, s2, e2 int) bool {
	return s1 < e2 && s2 < e1
}

// findConflict checks a proposed interval against the photographer's active
// bookings on the same calendar date. A booking may be excluded by ID so a
// modification does not conflict with itself.
func (s *DefaultBookingService) findConflict(photographerID string, day time.Time, startMinutes, endMinutes int, excludeID string) error {
	existing, err := s.Repo.FindActiveOnDate(photographerID, day)
	if err != nil {
		return fmt.Errorf("conflict check failed: %w", err)
	}

	for _, b := range existing {
		if b.ID == excludeID {
			continue
		}
		bStart, err := parseClockTime(b.StartTime)
		if err != nil {
			continue
		}
		bEnd, err := parseClockTime(b.EndTime)
		if err != nil {
			continue
		}
		if overlaps(startMinutes, endMinutes, bStart, bEnd) {
			return &SchedulingConflictError{
				BookingID: b.ID,
				Message:   "photographer is already booked for this time",
			}
		}
	}
	return nil
}
