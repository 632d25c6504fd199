package cron

import (
	"context"
	"strings"
	"testing"

	"lenslink/models"
	"lenslink/services/tasks"

	"github.com/hibiken/asynq"
)

type recordingMailer struct {
	to      string
	subject string
	body    string
}

func (m *recordingMailer) Send(to, subject, body string) error {
	m.to, m.subject, m.body = to, subject, body
	return nil
}

func TestMailContent_KnownKinds(t *testing.T) {
	data := map[string]string{
		"eventDate": "2025-07-15",
		"startTime": "10:00",
		"endTime":   "14:00",
	}

	for _, kind := range []string{
		models.MailWelcome, models.MailBookingCreated, models.MailBookingConfirmed,
		models.MailBookingRejected, models.MailBookingCancelled,
		models.MailBookingCompleted, models.MailBookingReassigned,
		models.MailFeedbackReceived,
	} {
		subject, body := mailContent(models.MailPayload{Kind: kind, Data: data})
		if subject == "" || body == "" {
			t.Errorf("kind %q rendered empty content", kind)
		}
	}

	subject, _ := mailContent(models.MailPayload{Kind: models.MailBookingConfirmed, Data: data})
	if !strings.Contains(subject, "confirmed") {
		t.Fatalf("unexpected confirmation subject: %q", subject)
	}

	_, body := mailContent(models.MailPayload{Kind: models.MailBookingCreated, Data: data})
	if !strings.Contains(body, "2025-07-15") {
		t.Fatalf("expected event date in body, got %q", body)
	}
}

func TestMailContent_UnknownKindFallsBack(t *testing.T) {
	subject, body := mailContent(models.MailPayload{Kind: "unheard_of"})
	if subject == "" || body == "" {
		t.Fatalf("fallback content must not be empty")
	}
}

func TestHandleMailTask_DeliversPayload(t *testing.T) {
	payload := models.MailPayload{
		Recipient: "client@example.com",
		Kind:      models.MailBookingConfirmed,
		Data:      map[string]string{"eventDate": "2025-07-15"},
	}
	task, _, err := tasks.NewMailTask(payload)
	if err != nil {
		t.Fatalf("failed to build task: %v", err)
	}

	mailer := &recordingMailer{}
	if err := handleMailTask(mailer)(context.Background(), task); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if mailer.to != "client@example.com" {
		t.Fatalf("expected delivery to client, got %q", mailer.to)
	}
	if !strings.Contains(mailer.subject, "confirmed") {
		t.Fatalf("unexpected subject: %q", mailer.subject)
	}
}

func TestHandleMailTask_SwallowsBadPayload(t *testing.T) {
	task := asynq.NewTask(tasks.TypeSendMail, []byte("not json"))
	mailer := &recordingMailer{}
	if err := handleMailTask(mailer)(context.Background(), task); err != nil {
		t.Fatalf("handler must swallow malformed payloads, got %v", err)
	}
	if mailer.to != "" {
		t.Fatalf("no mail should be sent for malformed payloads")
	}
}
