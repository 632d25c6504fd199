package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lenslink/config"
	"lenslink/cron"
	"lenslink/database"
	bookingRepoPkg "lenslink/database/repository/booking"
	feedbackRepoPkg "lenslink/database/repository/feedback"
	photographerRepoPkg "lenslink/database/repository/photographer"
	userRepoPkg "lenslink/database/repository/user"
	"lenslink/handlers"
	"lenslink/middleware"
	"lenslink/routes"
	"lenslink/services/booking"
	"lenslink/services/notification"
	"lenslink/services/payment"
	"lenslink/services/photographer"
	"lenslink/services/user"
	"lenslink/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()

	cloudinaryStorage, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	stripe.Key = config.AppConfig.StripeKey

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	photographerRepo := photographerRepoPkg.NewMongoPhotographerRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	feedbackRepo := feedbackRepoPkg.NewMongoFeedbackRepo()

	// services.
	notifier := notification.NewAsynqNotificationService()
	defer notifier.Close()

	userService := &user.DefaultUserService{
		Repo:             userRepo,
		PhotographerRepo: photographerRepo,
		Notifier:         notifier,
	}
	photographerService := &photographer.DefaultPhotographerService{
		Repo:    photographerRepo,
		Storage: cloudinaryStorage,
	}
	bookingService := &booking.DefaultBookingService{
		Repo:               bookingRepo,
		PhotographerRepo:   photographerRepo,
		UserRepo:           userRepo,
		Notifier:           notifier,
		CancellationWindow: time.Duration(config.AppConfig.CancellationWindowHours) * time.Hour,
		ModificationWindow: time.Duration(config.AppConfig.ModificationWindowHours) * time.Hour,
	}
	paymentService := &payment.StripePaymentService{
		Bookings: bookingRepo,
	}

	// Mail worker consuming the asynq queue.
	go cron.InitMailWorker(cron.SMTPMailer{})

	// handlers.
	authHandler := handlers.NewAuthHandler(userService)
	photographerHandler := handlers.NewPhotographerHandler(photographerService)
	bookingHandler := handlers.NewBookingHandler(bookingService, paymentService)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackRepo, notifier)
	adminHandler := handlers.NewAdminHandler(userRepo, photographerService, bookingService, feedbackRepo)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		// Auth and account endpoints.
		RegisterHandler:       authHandler.RegisterHandler,
		LoginHandler:          authHandler.LoginHandler,
		MeHandler:             authHandler.MeHandler,
		UpdateProfileHandler:  authHandler.UpdateProfileHandler,
		ChangePasswordHandler: authHandler.ChangePasswordHandler,
		DeactivateHandler:     authHandler.DeactivateHandler,

		// Photographer endpoints.
		GetPhotographerHandler:     photographerHandler.GetPhotographerHandler,
		SearchPhotographersHandler: photographerHandler.SearchPhotographersHandler,
		GetMyProfileHandler:        photographerHandler.GetMyProfileHandler,
		UpdateMyProfileHandler:     photographerHandler.UpdateProfileHandler,
		SetAvailabilityHandler:     photographerHandler.SetAvailabilityHandler,
		AddPortfolioItemHandler:    photographerHandler.AddPortfolioItemHandler,
		RemovePortfolioItemHandler: photographerHandler.RemovePortfolioItemHandler,
		AvailableSlotsHandler:      bookingHandler.AvailableSlotsHandler,

		// Booking endpoints.
		CreateBookingHandler:       bookingHandler.CreateBookingHandler,
		ListBookingsHandler:        bookingHandler.ListBookingsHandler,
		GetBookingHandler:          bookingHandler.GetBookingHandler,
		TransitionStatusHandler:    bookingHandler.TransitionStatusHandler,
		CancelBookingHandler:       bookingHandler.CancelBookingHandler,
		ModifyBookingHandler:       bookingHandler.ModifyBookingHandler,
		AddMessageHandler:          bookingHandler.AddMessageHandler,
		MarkMessagesReadHandler:    bookingHandler.MarkMessagesReadHandler,
		AddReviewHandler:           bookingHandler.AddReviewHandler,
		CreatePaymentIntentHandler: bookingHandler.CreatePaymentIntentHandler,

		// Feedback endpoints.
		SubmitFeedbackHandler: feedbackHandler.SubmitFeedbackHandler,

		// Admin endpoints.
		ListUsersHandler:          adminHandler.ListUsersHandler,
		SetUserActiveHandler:      adminHandler.SetUserActiveHandler,
		VerifyPhotographerHandler: adminHandler.VerifyPhotographerHandler,
		ReassignBookingHandler:    adminHandler.ReassignBookingHandler,
		ListFeedbackHandler:       adminHandler.ListFeedbackHandler,
		MarkFeedbackReadHandler:   adminHandler.MarkFeedbackReadHandler,
		PlatformStatsHandler:      adminHandler.PlatformStatsHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor([]*redis.Client{utils.GetAuthCacheClient()}, database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
