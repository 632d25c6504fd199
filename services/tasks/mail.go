package tasks

import (
	"encoding/json"

	"lenslink/models"

	"github.com/hibiken/asynq"
)

const TypeSendMail = "mail:send"

// NewMailTask builds a queue task for one outbound notification mail.
func NewMailTask(payload models.MailPayload) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendMail, b)
	opts := []asynq.Option{asynq.MaxRetry(0)}

	return task, opts, nil
}
