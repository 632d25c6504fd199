package notification

import (
	"context"
	"fmt"

	"lenslink/config"
	"lenslink/models"
	"lenslink/services/tasks"

	"github.com/hibiken/asynq"
)

// Service queues outbound notification mail. Delivery is best-effort and
// asynchronous; callers never wait on it.
type Service interface {
	Enqueue(ctx context.Context, payload models.MailPayload) error
}

// AsynqNotificationService is the production implementation, backed by the
// Redis task queue consumed by the mail worker.
type AsynqNotificationService struct {
	client *asynq.Client
}

// NewAsynqNotificationService creates a queue-backed notification service.
func NewAsynqNotificationService() *AsynqNotificationService {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisMailQueueDB,
	})
	return &AsynqNotificationService{client: client}
}

// Enqueue submits a mail task to the queue.
func (s *AsynqNotificationService) Enqueue(ctx context.Context, payload models.MailPayload) error {
	task, opts, err := tasks.NewMailTask(payload)
	if err != nil {
		return fmt.Errorf("failed to build mail task: %w", err)
	}
	if _, err := s.client.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue mail task: %w", err)
	}
	return nil
}

// Close releases the underlying queue client.
func (s *AsynqNotificationService) Close() error {
	return s.client.Close()
}
