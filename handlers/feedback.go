package handlers

import (
	"context"
	"net/http"
	"time"

	"lenslink/config"
	feedbackRepo "lenslink/database/repository/feedback"
	"lenslink/models"
	"lenslink/services/notification"
	"lenslink/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// FeedbackHandler exposes the public contact-form endpoint.
type FeedbackHandler struct {
	Repo     feedbackRepo.FeedbackRepository
	Notifier notification.Service
}

func NewFeedbackHandler(repo feedbackRepo.FeedbackRepository, notifier notification.Service) *FeedbackHandler {
	return &FeedbackHandler{Repo: repo, Notifier: notifier}
}

// SubmitFeedbackHandler handles POST /feedback. The submission is stored
// first; acknowledgment and admin mails are queued afterwards so a mail
// outage never loses the message.
func (h *FeedbackHandler) SubmitFeedbackHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req struct {
		Name    string `json:"name" binding:"required"`
		Email   string `json:"email" binding:"required,email"`
		Subject string `json:"subject"`
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	fb := &models.Feedback{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Email:       req.Email,
		Subject:     req.Subject,
		Message:     req.Message,
		EmailStatus: models.EmailQueued,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := h.Repo.Create(fb); err != nil {
		logger.Error("Failed to store feedback", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store feedback"})
		return
	}

	if h.Notifier != nil {
		go h.queueFeedbackMail(fb)
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Thanks for your feedback", "id": fb.ID})
}

func (h *FeedbackHandler) queueFeedbackMail(fb *models.Feedback) {
	logger := utils.GetLogger()
	ctx := context.Background()

	ack := models.MailPayload{
		Recipient: fb.Email,
		Kind:      models.MailFeedbackReceived,
		Data: map[string]string{
			"name":    fb.Name,
			"subject": fb.Subject,
		},
	}
	if err := h.Notifier.Enqueue(ctx, ack); err != nil {
		logger.Warn("failed to enqueue feedback acknowledgment",
			zap.String("feedbackID", fb.ID), zap.Error(err))
		if err := h.Repo.SetEmailStatus(fb.ID, models.EmailFailed); err != nil {
			logger.Warn("failed to record email status", zap.String("feedbackID", fb.ID), zap.Error(err))
		}
		return
	}

	if adminEmail := config.AppConfig.AdminEmail; adminEmail != "" {
		adminMail := models.MailPayload{
			Recipient: adminEmail,
			Kind:      models.MailFeedbackAdmin,
			Data: map[string]string{
				"name":    fb.Name,
				"email":   fb.Email,
				"subject": fb.Subject,
				"message": fb.Message,
			},
		}
		if err := h.Notifier.Enqueue(ctx, adminMail); err != nil {
			logger.Warn("failed to enqueue admin feedback mail",
				zap.String("feedbackID", fb.ID), zap.Error(err))
		}
	}

	if err := h.Repo.SetEmailStatus(fb.ID, models.EmailSent); err != nil {
		logger.Warn("failed to record email status", zap.String("feedbackID", fb.ID), zap.Error(err))
	}
}
