package handlers

import (
	"net/http"

	feedbackRepo "lenslink/database/repository/feedback"
	userRepo "lenslink/database/repository/user"
	"lenslink/models"
	"lenslink/services/booking"
	"lenslink/services/photographer"
	"lenslink/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// AdminHandler exposes the back-office endpoints.
type AdminHandler struct {
	Users         userRepo.UserRepository
	Photographers photographer.PhotographerService
	Bookings      booking.BookingService
	Feedback      feedbackRepo.FeedbackRepository
}

func NewAdminHandler(users userRepo.UserRepository, photographers photographer.PhotographerService,
	bookings booking.BookingService, feedback feedbackRepo.FeedbackRepository) *AdminHandler {
	return &AdminHandler{
		Users:         users,
		Photographers: photographers,
		Bookings:      bookings,
		Feedback:      feedback,
	}
}

// ListUsersHandler handles GET /admin/users.
func (h *AdminHandler) ListUsersHandler(c *gin.Context) {
	users, err := h.Users.GetAll()
	if err != nil {
		utils.GetLogger().Error("Failed to list users", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list users"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users, "total": len(users)})
}

// SetUserActiveHandler handles PUT /admin/users/:id/active.
func (h *AdminHandler) SetUserActiveHandler(c *gin.Context) {
	var req struct {
		IsActive *bool `json:"isActive" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	id := c.Param("id")
	if err := h.Users.UpdateWithDocument(id, bson.M{"isActive": *req.IsActive}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	utils.GetLogger().Info("user active flag changed",
		zap.String("userID", id), zap.Bool("isActive", *req.IsActive))
	c.JSON(http.StatusOK, gin.H{"message": "User updated"})
}

// VerifyPhotographerHandler handles PUT /admin/photographers/:id/verify.
func (h *AdminHandler) VerifyPhotographerHandler(c *gin.Context) {
	var req struct {
		Verified *bool `json:"verified" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := h.Photographers.SetVerified(c.Param("id"), *req.Verified); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Photographer updated"})
}

// ReassignBookingHandler handles POST /admin/bookings/:id/reassign.
func (h *AdminHandler) ReassignBookingHandler(c *gin.Context) {
	var req struct {
		NewPhotographerID string `json:"newPhotographerId" binding:"required"`
		Reason            string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	b, err := h.Bookings.ReassignPhotographer(c.Request.Context(), c.Param("id"),
		c.GetString("userID"), req.NewPhotographerID, req.Reason)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// ListFeedbackHandler handles GET /admin/feedback.
func (h *AdminHandler) ListFeedbackHandler(c *gin.Context) {
	records, err := h.Feedback.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list feedback"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"feedback": records, "total": len(records)})
}

// MarkFeedbackReadHandler handles PUT /admin/feedback/:id/read.
func (h *AdminHandler) MarkFeedbackReadHandler(c *gin.Context) {
	if err := h.Feedback.MarkRead(c.Param("id")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Feedback marked as read"})
}

// PlatformStatsHandler handles GET /admin/stats. It reports user counts by
// role, booking counts by status, and completed-booking revenue.
func (h *AdminHandler) PlatformStatsHandler(c *gin.Context) {
	users, err := h.Users.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute stats"})
		return
	}

	usersByRole := map[string]int{}
	active := 0
	for _, u := range users {
		usersByRole[u.Role]++
		if u.IsActive {
			active++
		}
	}

	bookingsByStatus := map[string]int64{}
	var totalBookings int64
	for _, status := range []string{
		models.BookingPending, models.BookingConfirmed, models.BookingInProgress,
		models.BookingCompleted, models.BookingCancelled, models.BookingRejected,
		models.BookingRefunded,
	} {
		_, count, err := h.Bookings.ListBookings(c.Request.Context(), c.GetString("userID"),
			models.BookingFilter{Status: status, Limit: 1})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute stats"})
			return
		}
		bookingsByStatus[status] = count
		totalBookings += count
	}

	revenue, err := h.Bookings.CompletedRevenue(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute stats"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"users": gin.H{
			"total":  len(users),
			"active": active,
			"byRole": usersByRole,
		},
		"bookings": gin.H{
			"total":    totalBookings,
			"byStatus": bookingsByStatus,
			"revenue":  revenue,
		},
	})
}
