package booking

import (
	"time"

	"lenslink/models"
)

// weekdayNames is the canonical weekday lookup table, indexed by
// time.Weekday (0 = Sunday .. 6 = Saturday). The order must not change:
// the availability map is keyed by these names.
var weekdayNames = [7]string{
	"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday",
}

// dayAvailabilityFor resolves the declared availability for the weekday the
// given date falls on.
func dayAvailabilityFor(avail models.WeeklyAvailability, date time.Time) models.DayAvailability {
	switch weekdayNames[int(date.Weekday())] {
	case "sunday":
		return avail.Sunday
	case "monday":
		return avail.Monday
	case "tuesday":
		return avail.Tuesday
	case "wednesday":
		return avail.Wednesday
	case "thursday":
		return avail.Thursday
	case "friday":
		return avail.Friday
	case "saturday":
		return avail.Saturday
	}
	return models.DayAvailability{}
}

// availableSlotsFor returns the declared time-slot strings for the date's
// weekday, or an empty list when the day is not marked available.
func availableSlotsFor(avail models.WeeklyAvailability, date time.Time) []string {
	day := dayAvailabilityFor(avail, date)
	if !day.Available {
		return []string{}
	}
	if day.TimeSlots == nil {
		return []string{}
	}
	return day.TimeSlots
}

// GetAvailableSlots returns the photographer's declared time-slot strings
// for the given date, empty when the weekday is marked unavailable.
func (s *DefaultBookingService) GetAvailableSlots(photographerID string, date time.Time) ([]string, error) {
	p, err := s.PhotographerRepo.GetByID(photographerID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, &NotFoundError{Entity: "photographer", ID: photographerID}
	}
	return availableSlotsFor(p.Availability, date), nil
}
