package routes

import (
	"net/http"
	"time"

	"lenslink/handlers"
	"lenslink/middleware"
	"lenslink/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers account endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.RegisterHandler)
		api.POST("/login", hb.LoginHandler)
	}

	me := r.Group("/api/users/me")
	{
		me.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		me.GET("", hb.MeHandler)
		me.PUT("", hb.UpdateProfileHandler)
		me.PUT("/password", hb.ChangePasswordHandler)
		me.DELETE("", hb.DeactivateHandler)
	}
}

// RegisterPhotographerRoutes registers profile, search, and portfolio
// endpoints. Discovery endpoints are public; profile management requires
// authentication.
func RegisterPhotographerRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/photographers")
	{
		// Public discovery endpoints.
		api.GET("", hb.SearchPhotographersHandler)
		api.GET("/id/:id", hb.GetPhotographerHandler)
		api.GET("/id/:id/availability", hb.AvailableSlotsHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		protected.GET("/me/profile", hb.GetMyProfileHandler)
		protected.PUT("/me/profile", hb.UpdateMyProfileHandler)
		protected.PUT("/me/availability", hb.SetAvailabilityHandler)
		protected.POST("/me/portfolio", hb.AddPortfolioItemHandler)
		protected.DELETE("/me/portfolio/:itemID", hb.RemovePortfolioItemHandler)
	}
}

// RegisterBookingRoutes sets up the scheduling and lifecycle endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("", hb.CreateBookingHandler)
		api.GET("", hb.ListBookingsHandler)
		api.GET("/:id", hb.GetBookingHandler)
		api.PUT("/:id", hb.ModifyBookingHandler)
		api.PUT("/:id/status", hb.TransitionStatusHandler)
		api.POST("/:id/cancel", hb.CancelBookingHandler)
		api.POST("/:id/messages", hb.AddMessageHandler)
		api.PUT("/:id/messages/read", hb.MarkMessagesReadHandler)
		api.POST("/:id/review", hb.AddReviewHandler)
		api.POST("/:id/payment-intent", hb.CreatePaymentIntentHandler)
	}
}

// RegisterFeedbackRoutes registers the public contact-form endpoint.
func RegisterFeedbackRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/feedback", hb.SubmitFeedbackHandler)
}

// RegisterAdminRoutes sets up the back-office endpoints.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.Use(middleware.AdminOnlyMiddleware())
		api.GET("/users", hb.ListUsersHandler)
		api.PUT("/users/:id/active", hb.SetUserActiveHandler)
		api.PUT("/photographers/:id/verify", hb.VerifyPhotographerHandler)
		api.POST("/bookings/:id/reassign", hb.ReassignBookingHandler)
		api.GET("/feedback", hb.ListFeedbackHandler)
		api.PUT("/feedback/:id/read", hb.MarkFeedbackReadHandler)
		api.GET("/stats", hb.PlatformStatsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"message":  "Hi, I'm LensLink",
			"services": utils.GetHealthStatus(),
		})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterPhotographerRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterFeedbackRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
