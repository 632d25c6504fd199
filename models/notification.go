package models

// Mail template kinds emitted on lifecycle transitions.
const (
	MailBookingCreated    = "booking_created"
	MailBookingConfirmed  = "booking_confirmed"
	MailBookingRejected   = "booking_rejected"
	MailBookingCancelled  = "booking_cancelled"
	MailBookingCompleted  = "booking_completed"
	MailBookingReassigned = "booking_reassigned"
	MailWelcome           = "welcome"
	MailFeedbackReceived  = "feedback_received"
	MailFeedbackAdmin     = "feedback_admin"
)

// MailPayload is the fire-and-forget notification task payload.
type MailPayload struct {
	Recipient string            `json:"recipient"`
	Kind      string            `json:"kind"`
	Data      map[string]string `json:"data,omitempty"`
}
