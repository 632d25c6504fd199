package models

import "time"

// Email delivery statuses recorded on a feedback submission.
const (
	EmailQueued = "queued"
	EmailSent   = "sent"
	EmailFailed = "failed"
)

// Feedback is a contact-form submission.
type Feedback struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Email       string    `bson:"email" json:"email"`
	Subject     string    `bson:"subject,omitempty" json:"subject,omitempty"`
	Message     string    `bson:"message" json:"message"`
	EmailStatus string    `bson:"emailStatus" json:"emailStatus"`
	Read        bool      `bson:"read" json:"read"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}
