package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"lenslink/models"
	"lenslink/services/booking"
	"lenslink/services/payment"
	"lenslink/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the scheduling and lifecycle endpoints.
type BookingHandler struct {
	Service  booking.BookingService
	Payments payment.PaymentService
}

func NewBookingHandler(svc booking.BookingService, payments payment.PaymentService) *BookingHandler {
	return &BookingHandler{Service: svc, Payments: payments}
}

// writeBookingError maps the service's typed errors onto HTTP statuses.
func writeBookingError(c *gin.Context, err error) {
	var (
		valErr      *booking.ValidationError
		notFound    *booking.NotFoundError
		conflict    *booking.SchedulingConflictError
		transition  *booking.InvalidTransitionError
		window      *booking.WindowClosedError
		unauthorized *booking.UnauthorizedError
	)
	switch {
	case errors.As(err, &valErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": valErr.Error(), "field": valErr.Field})
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFound.Error()})
	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, gin.H{"error": conflict.Error(), "conflictingBookingId": conflict.BookingID})
	case errors.As(err, &transition):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": transition.Error()})
	case errors.As(err, &window):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": window.Error()})
	case errors.As(err, &unauthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": unauthorized.Error()})
	default:
		utils.GetLogger().Error("Booking operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// CreateBookingHandler handles POST /bookings.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var req models.CreateBookingInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	b, err := h.Service.CreateBooking(c.Request.Context(), c.GetString("userID"), req)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// ListBookingsHandler handles GET /bookings. Results are scoped to the
// caller's role inside the service.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	filter := models.BookingFilter{
		Status:         c.Query("status"),
		PhotographerID: c.Query("photographerId"),
	}
	if page, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil {
		filter.Page = page
	}
	if limit, err := strconv.Atoi(c.DefaultQuery("limit", "20")); err == nil {
		filter.Limit = limit
	}
	if from := c.Query("from"); from != "" {
		if t, err := time.Parse("2006-01-02", from); err == nil {
			filter.From = t
		}
	}
	if to := c.Query("to"); to != "" {
		if t, err := time.Parse("2006-01-02", to); err == nil {
			filter.To = t
		}
	}

	bookings, total, err := h.Service.ListBookings(c.Request.Context(), c.GetString("userID"), filter)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"bookings": bookings,
		"total":    total,
		"page":     filter.Page,
		"limit":    filter.Limit,
	})
}

// GetBookingHandler handles GET /bookings/:id.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	b, err := h.Service.GetBooking(c.Request.Context(), c.Param("id"), c.GetString("userID"))
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// TransitionStatusHandler handles PUT /bookings/:id/status.
func (h *BookingHandler) TransitionStatusHandler(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
		Reason string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	b, err := h.Service.TransitionStatus(c.Request.Context(), c.Param("id"), c.GetString("userID"), req.Status, req.Reason)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// CancelBookingHandler handles POST /bookings/:id/cancel.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	var req struct {
		Reason string `json:"reason"`
	}
	// Body is optional for cancellations.
	_ = c.ShouldBindJSON(&req)

	result, err := h.Service.CancelBooking(c.Request.Context(), c.Param("id"), c.GetString("userID"), req.Reason)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ModifyBookingHandler handles PUT /bookings/:id.
func (h *BookingHandler) ModifyBookingHandler(c *gin.Context) {
	var req models.ModifyBookingInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	b, err := h.Service.ModifyBooking(c.Request.Context(), c.Param("id"), c.GetString("userID"), req)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// AvailableSlotsHandler handles GET /photographers/:id/availability.
// Query param "date" is required in YYYY-MM-DD form.
func (h *BookingHandler) AvailableSlotsHandler(c *gin.Context) {
	dateStr := c.Query("date")
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be in YYYY-MM-DD format"})
		return
	}

	slots, err := h.Service.GetAvailableSlots(c.Param("id"), date)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"photographerId": c.Param("id"),
		"date":           dateStr,
		"availableSlots": slots,
	})
}

// AddMessageHandler handles POST /bookings/:id/messages.
func (h *BookingHandler) AddMessageHandler(c *gin.Context) {
	var req struct {
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	b, err := h.Service.AddMessage(c.Request.Context(), c.Param("id"), c.GetString("userID"), req.Message)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// MarkMessagesReadHandler handles PUT /bookings/:id/messages/read.
func (h *BookingHandler) MarkMessagesReadHandler(c *gin.Context) {
	b, err := h.Service.MarkMessagesRead(c.Request.Context(), c.Param("id"), c.GetString("userID"))
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// AddReviewHandler handles POST /bookings/:id/review.
func (h *BookingHandler) AddReviewHandler(c *gin.Context) {
	var req struct {
		Rating  int    `json:"rating" binding:"required"`
		Comment string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	b, err := h.Service.AddReview(c.Request.Context(), c.Param("id"), c.GetString("userID"), req.Rating, req.Comment)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// CreatePaymentIntentHandler handles POST /bookings/:id/payment-intent.
func (h *BookingHandler) CreatePaymentIntentHandler(c *gin.Context) {
	result, err := h.Payments.CreateIntent(c.Request.Context(), c.Param("id"), c.GetString("userID"))
	if err != nil {
		utils.GetLogger().Error("Failed to create payment intent",
			zap.String("bookingID", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}
