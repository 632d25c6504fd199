package models

import "time"

// Booking statuses.
const (
	BookingPending    = "pending"
	BookingConfirmed  = "confirmed"
	BookingInProgress = "in_progress"
	BookingCompleted  = "completed"
	BookingCancelled  = "cancelled"
	BookingRejected   = "rejected"
	BookingRefunded   = "refunded"
)

// Payment statuses.
const (
	PaymentPending  = "pending"
	PaymentPartial  = "partial"
	PaymentPaid     = "paid"
	PaymentRefunded = "refunded"
)

// Event types accepted at booking creation.
var EventTypes = []string{
	"wedding", "portrait", "event", "commercial", "fashion",
	"family", "graduation", "birthday", "other",
}

// ActiveBookingStatuses are the statuses that count toward scheduling conflicts.
var ActiveBookingStatuses = []string{BookingPending, BookingConfirmed, BookingInProgress}

// BookingLocation is where the shoot takes place.
type BookingLocation struct {
	Venue       string    `bson:"venue,omitempty" json:"venue,omitempty"`
	Address     string    `bson:"address" json:"address"`
	City        string    `bson:"city,omitempty" json:"city,omitempty"`
	Coordinates []float64 `bson:"coordinates,omitempty" json:"coordinates,omitempty"` // [longitude, latitude]
}

// BookingPackage snapshots the package deal chosen at creation time.
type BookingPackage struct {
	Name     string   `bson:"name,omitempty" json:"name,omitempty"`
	Price    float64  `bson:"price" json:"price"`
	Includes []string `bson:"includes,omitempty" json:"includes,omitempty"`
}

// Message is one entry in a booking's communication thread.
type Message struct {
	SenderID  string    `bson:"senderId" json:"senderId"`
	Body      string    `bson:"body" json:"body"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
	IsRead    bool      `bson:"isRead" json:"isRead"`
}

// BookingReview is the one-shot review attached after completion.
type BookingReview struct {
	Rating     int       `bson:"rating" json:"rating"`
	Comment    string    `bson:"comment,omitempty" json:"comment,omitempty"`
	ReviewDate time.Time `bson:"reviewDate" json:"reviewDate"`
}

// Reassignment is one immutable entry in the reassignment ledger.
type Reassignment struct {
	PreviousPhotographer string    `bson:"previousPhotographer" json:"previousPhotographer"`
	NewPhotographer      string    `bson:"newPhotographer" json:"newPhotographer"`
	Reason               string    `bson:"reason" json:"reason"`
	ReassignedAt         time.Time `bson:"reassignedAt" json:"reassignedAt"`
	ReassignedBy         string    `bson:"reassignedBy" json:"reassignedBy"`
}

// Booking is the central scheduling entity.
type Booking struct {
	ID             string         `bson:"id" json:"id"`
	ClientID       string         `bson:"clientId" json:"clientId"`
	PhotographerID string         `bson:"photographerId" json:"photographerId"`
	EventType      string         `bson:"eventType" json:"eventType"`
	EventDate      time.Time      `bson:"eventDate" json:"eventDate"`
	StartTime      string         `bson:"startTime" json:"startTime"` // HH:MM
	EndTime        string         `bson:"endTime" json:"endTime"`     // HH:MM
	Duration       float64        `bson:"duration" json:"duration"`   // hours
	Location       BookingLocation `bson:"location" json:"location"`
	Package        BookingPackage `bson:"package,omitzero" json:"package,omitzero"`
	TotalAmount    float64        `bson:"totalAmount" json:"totalAmount"`
	PaymentStatus  string         `bson:"paymentStatus" json:"paymentStatus"`
	PaymentIntentID string        `bson:"paymentIntentId,omitempty" json:"paymentIntentId,omitempty"`
	Status         string         `bson:"status" json:"status"`
	SpecialRequests string        `bson:"specialRequests,omitempty" json:"specialRequests,omitempty"`
	GuestCount     int            `bson:"guestCount,omitempty" json:"guestCount,omitempty"`

	Communication []Message      `bson:"communication,omitempty" json:"communication,omitempty"`
	Review        *BookingReview `bson:"review,omitempty" json:"review,omitempty"`

	CancellationReason string    `bson:"cancellationReason,omitempty" json:"cancellationReason,omitempty"`
	CancellationDate   time.Time `bson:"cancellationDate,omitempty" json:"cancellationDate,omitzero"`
	CancellationFee    float64   `bson:"cancellationFee,omitempty" json:"cancellationFee,omitempty"`
	RefundAmount       float64   `bson:"refundAmount,omitempty" json:"refundAmount,omitempty"`
	CancelledBy        string    `bson:"cancelledBy,omitempty" json:"cancelledBy,omitempty"`
	CompletedAt        time.Time `bson:"completedAt,omitempty" json:"completedAt,omitzero"`

	ReassignmentHistory []Reassignment `bson:"reassignmentHistory,omitempty" json:"reassignmentHistory,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// IsActive reports whether the booking counts toward scheduling conflicts.
func (b *Booking) IsActive() bool {
	switch b.Status {
	case BookingPending, BookingConfirmed, BookingInProgress:
		return true
	}
	return false
}

// IsTerminal reports whether no further status transition is permitted.
func (b *Booking) IsTerminal() bool {
	switch b.Status {
	case BookingCompleted, BookingCancelled, BookingRejected, BookingRefunded:
		return true
	}
	return false
}

// CreateBookingInput is the payload accepted when a client books a shoot.
type CreateBookingInput struct {
	PhotographerID  string          `json:"photographerId" binding:"required"`
	EventType       string          `json:"eventType" binding:"required"`
	EventDate       string          `json:"eventDate" binding:"required"` // YYYY-MM-DD
	StartTime       string          `json:"startTime" binding:"required"`
	EndTime         string          `json:"endTime" binding:"required"`
	Location        BookingLocation `json:"location" binding:"required"`
	PackageID       string          `json:"packageId"`
	SpecialRequests string          `json:"specialRequests"`
	GuestCount      int             `json:"guestCount"`
}

// ModifyBookingInput carries the editable booking details. Nil fields are
// left untouched.
type ModifyBookingInput struct {
	EventDate       *string          `json:"eventDate"`
	StartTime       *string          `json:"startTime"`
	EndTime         *string          `json:"endTime"`
	Location        *BookingLocation `json:"location"`
	TotalAmount     *float64         `json:"totalAmount"`
	SpecialRequests *string          `json:"specialRequests"`
	GuestCount      *int             `json:"guestCount"`
}

// BookingFilter narrows booking listings.
type BookingFilter struct {
	ClientID       string
	PhotographerID string
	Status         string
	From           time.Time
	To             time.Time
	Page           int
	Limit          int
}
