package bookingRepo

import (
	"time"

	"lenslink/models"

	"go.mongodb.org/mongo-driver/bson"
)

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// GetByID retrieves a booking by its unique ID, or nil when absent.
	GetByID(id string) (*models.Booking, error)
	// Create inserts a new booking record.
	Create(b *models.Booking) error
	// Update replaces an existing booking document.
	Update(b *models.Booking) error
	// UpdateWithDocument applies a partial update to a booking document.
	UpdateWithDocument(id string, fields bson.M) error
	// FindActiveOnDate returns the photographer's bookings with an active
	// status whose event date falls on the given calendar day.
	FindActiveOnDate(photographerID string, day time.Time) ([]models.Booking, error)
	// Find lists bookings matching the filter, newest first.
	Find(filter models.BookingFilter) ([]models.Booking, int64, error)
	// SumCompletedAmount returns the total amount across completed bookings.
	SumCompletedAmount() (float64, error)
}
