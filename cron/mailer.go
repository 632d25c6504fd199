package cron

import (
	"fmt"

	"lenslink/config"
	"lenslink/models"

	"github.com/wneessen/go-mail"
)

// Mailer delivers one outbound message. Implementations are best-effort;
// the worker logs failures and moves on.
type Mailer interface {
	Send(to, subject, body string) error
}

// SMTPMailer sends mail through the configured SMTP relay.
type SMTPMailer struct{}

// Send delivers a plain-text message.
func (SMTPMailer) Send(to, subject, body string) error {
	msg := mail.NewMsg()
	if err := msg.From(config.AppConfig.MailFrom); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	client, err := mail.NewClient(config.AppConfig.SMTPHost,
		mail.WithPort(config.AppConfig.SMTPPort),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(config.AppConfig.SMTPUser),
		mail.WithPassword(config.AppConfig.SMTPPassword),
	)
	if err != nil {
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}
	return client.DialAndSend(msg)
}

// mailContent renders the subject and body for a notification kind.
func mailContent(p models.MailPayload) (subject, body string) {
	date := p.Data["eventDate"]
	window := fmt.Sprintf("%s–%s", p.Data["startTime"], p.Data["endTime"])

	switch p.Kind {
	case models.MailWelcome:
		return "Welcome to LensLink!",
			"Your LensLink account is ready. Browse photographers and book your first shoot."
	case models.MailBookingCreated:
		return "New booking request – LensLink",
			fmt.Sprintf("A booking request for %s (%s) has been placed and is awaiting confirmation.", date, window)
	case models.MailBookingConfirmed:
		return "Your booking is confirmed – LensLink",
			fmt.Sprintf("Your booking on %s (%s) has been confirmed.", date, window)
	case models.MailBookingRejected:
		return "Your booking was declined – LensLink",
			fmt.Sprintf("Your booking request for %s was declined by the photographer.", date)
	case models.MailBookingCancelled:
		return "Booking cancelled – LensLink",
			fmt.Sprintf("The booking on %s (%s) has been cancelled.", date, window)
	case models.MailBookingCompleted:
		return "Booking completed – LensLink",
			fmt.Sprintf("The booking on %s is complete. You can now leave a review.", date)
	case models.MailBookingReassigned:
		return "Your booking has a new photographer – LensLink",
			fmt.Sprintf("The booking on %s has been reassigned to a new photographer.", date)
	case models.MailFeedbackReceived:
		return "We received your message – LensLink",
			"Thanks for reaching out. Our team will get back to you shortly."
	case models.MailFeedbackAdmin:
		return fmt.Sprintf("[LensLink Feedback] %s", p.Data["subject"]),
			fmt.Sprintf("From: %s <%s>\n\n%s", p.Data["name"], p.Data["email"], p.Data["message"])
	}
	return "LensLink notification", "You have a new notification on LensLink."
}
