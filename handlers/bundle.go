package handlers

import (
	userRepoPkg "lenslink/database/repository/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct for route
// registration.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	// Auth and account endpoints.
	RegisterHandler       gin.HandlerFunc
	LoginHandler          gin.HandlerFunc
	MeHandler             gin.HandlerFunc
	UpdateProfileHandler  gin.HandlerFunc
	ChangePasswordHandler gin.HandlerFunc
	DeactivateHandler     gin.HandlerFunc

	// Photographer endpoints.
	GetPhotographerHandler     gin.HandlerFunc
	SearchPhotographersHandler gin.HandlerFunc
	GetMyProfileHandler        gin.HandlerFunc
	UpdateMyProfileHandler     gin.HandlerFunc
	SetAvailabilityHandler     gin.HandlerFunc
	AddPortfolioItemHandler    gin.HandlerFunc
	RemovePortfolioItemHandler gin.HandlerFunc
	AvailableSlotsHandler      gin.HandlerFunc

	// Booking endpoints.
	CreateBookingHandler       gin.HandlerFunc
	ListBookingsHandler        gin.HandlerFunc
	GetBookingHandler          gin.HandlerFunc
	TransitionStatusHandler    gin.HandlerFunc
	CancelBookingHandler       gin.HandlerFunc
	ModifyBookingHandler       gin.HandlerFunc
	AddMessageHandler          gin.HandlerFunc
	MarkMessagesReadHandler    gin.HandlerFunc
	AddReviewHandler           gin.HandlerFunc
	CreatePaymentIntentHandler gin.HandlerFunc

	// Feedback endpoints.
	SubmitFeedbackHandler gin.HandlerFunc

	// Admin endpoints.
	ListUsersHandler          gin.HandlerFunc
	SetUserActiveHandler      gin.HandlerFunc
	VerifyPhotographerHandler gin.HandlerFunc
	ReassignBookingHandler    gin.HandlerFunc
	ListFeedbackHandler       gin.HandlerFunc
	MarkFeedbackReadHandler   gin.HandlerFunc
	PlatformStatsHandler      gin.HandlerFunc
}
