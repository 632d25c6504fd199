package booking

import (
	"regexp"
	"time"
)

var clockTimePattern = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):[0-5][0-9]$`)

// parseClockTime converts an "HH:MM" string to minutes from midnight.
func parseClockTime(s string) (int, error) {
	if !clockTimePattern.MatchString(s) {
		return 0, &ValidationError{Field: "time", Message: "must be a valid time in HH:MM format"}
	}
	t, err := time.Parse("15:04", normalizeClockTime(s))
	if err != nil {
		return 0, &ValidationError{Field: "time", Message: "must be a valid time in HH:MM format"}
	}
	return t.Hour()*60 + t.Minute(), nil
}

// normalizeClockTime pads single-digit hours so "9:30" parses as "09:30".
func normalizeClockTime(s string) string {
	if len(s) == 4 {
		return "0" + s
	}
	return s
}

// computeDuration derives the booking duration in hours from start and end
// minutes. Both times belong to the same calendar date.
func computeDuration(startMinutes, endMinutes int) float64 {
	return float64(endMinutes-startMinutes) / 60
}

// parseEventDate accepts a "YYYY-MM-DD" event date.
func parseEventDate(s string) (time.Time, error) {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, &ValidationError{Field: "eventDate", Message: "must be a valid date in YYYY-MM-DD format"}
	}
	return d, nil
}

func isValidEventType(eventType string, accepted []string) bool {
	for _, t := range accepted {
		if t == eventType {
			return true
		}
	}
	return false
}
