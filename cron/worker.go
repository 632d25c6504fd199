package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"lenslink/config"
	"lenslink/models"
	"lenslink/services/tasks"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// InitMailWorker runs the async mail worker in background. Delivery is
// best-effort: failures are logged and the task is dropped, never retried.
func InitMailWorker(mailer Mailer) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisMailQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSendMail, handleMailTask(mailer))

	go monitorRedisConnection()

	go func() {
		log.Println("[MailWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[MailWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[MailWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleMailTask(mailer Mailer) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.MailPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[MailHandler] invalid payload: %v", err)
			return nil
		}

		subject, body := mailContent(p)
		if err := mailer.Send(p.Recipient, subject, body); err != nil {
			// Best-effort only. Swallow the error so asynq does not retry.
			log.Printf("[MailHandler] failed to send %s mail to %s: %v", p.Kind, p.Recipient, err)
			return nil
		}

		log.Printf("[MailHandler] sent %s mail to %s", p.Kind, p.Recipient)
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisMailQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[MailWorker] redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
