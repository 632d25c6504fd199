package feedbackRepo

import "lenslink/models"

// FeedbackRepository defines methods for contact-form data access.
type FeedbackRepository interface {
	// Create inserts a new feedback record.
	Create(f *models.Feedback) error
	// GetAll retrieves all feedback records, newest first.
	GetAll() ([]models.Feedback, error)
	// MarkRead flags a feedback record as read.
	MarkRead(id string) error
	// SetEmailStatus records the delivery outcome of the acknowledgment mail.
	SetEmailStatus(id, status string) error
}
