package models

import "testing"

func TestRecalculateRating_DefaultsToFiveWithNoReviews(t *testing.T) {
	p := &Photographer{}
	p.RecalculateRating()
	if p.Rating.Average != 5 || p.Rating.Count != 0 {
		t.Fatalf("expected default rating {5, 0}, got %+v", p.Rating)
	}
}

func TestRecalculateRating_RoundsToOneDecimal(t *testing.T) {
	p := &Photographer{
		Reviews: []PhotographerReview{
			{Rating: 5}, {Rating: 4}, {Rating: 4},
		},
	}
	p.RecalculateRating()
	// Mean 4.333... rounds to 4.3.
	if p.Rating.Average != 4.3 {
		t.Fatalf("expected average 4.3, got %v", p.Rating.Average)
	}
	if p.Rating.Count != 3 {
		t.Fatalf("expected count 3, got %d", p.Rating.Count)
	}

	p.Reviews = append(p.Reviews, PhotographerReview{Rating: 5})
	p.RecalculateRating()
	// Mean 4.5 stays 4.5.
	if p.Rating.Average != 4.5 || p.Rating.Count != 4 {
		t.Fatalf("expected {4.5, 4}, got %+v", p.Rating)
	}
}

func TestBookingIsActive(t *testing.T) {
	active := []string{BookingPending, BookingConfirmed, BookingInProgress}
	inactive := []string{BookingCompleted, BookingCancelled, BookingRejected, BookingRefunded}

	for _, status := range active {
		b := Booking{Status: status}
		if !b.IsActive() {
			t.Errorf("expected %q to be active", status)
		}
	}
	for _, status := range inactive {
		b := Booking{Status: status}
		if b.IsActive() {
			t.Errorf("expected %q to be inactive", status)
		}
		if !b.IsTerminal() {
			t.Errorf("expected %q to be terminal", status)
		}
	}
}
