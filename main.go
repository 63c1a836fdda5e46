// File: sainandadeep/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sainandadeep/config"
	"sainandadeep/database"
	bookingRepo "sainandadeep/database/repository/booking"
	reviewRepo "sainandadeep/database/repository/review"
	"sainandadeep/handlers"
	"sainandadeep/middleware"
	"sainandadeep/routes"
	"sainandadeep/services/booking"
	"sainandadeep/services/concierge"
	"sainandadeep/services/review"
	"sainandadeep/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionStore()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.LoadHTMLGlob("templates/*.html")

	// repositories.
	bookRepo := bookingRepo.NewMongoBookingRepo()
	revRepo := reviewRepo.NewMongoReviewRepo()

	// services.
	sessionStore := booking.NewRedisSessionStore(utils.GetSessionClient(), 30*time.Minute)
	bookingService := &booking.DefaultBookingFlowService{
		Store: sessionStore,
		Repo:  bookRepo,
	}

	reviewService := &review.DefaultReviewService{
		Repo:     revRepo,
		Cache:    utils.GetCacheClient(),
		CacheTTL: 2 * time.Minute,
	}

	geminiClient := concierge.NewGeminiClient(config.AppConfig.GeminiAPIKey)
	conciergeService := concierge.NewDefaultConciergeService(geminiClient)

	// handlers.
	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	conciergeHandler := handlers.NewConciergeHandler(conciergeService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Presentation shell.
		Home: handlers.HomeHandler,

		// Catalog / content endpoints.
		GetRooms:     handlers.GetRoomsHandler,
		GetRoomByID:  handlers.GetRoomByIDHandler,
		GetContent:   handlers.GetContentHandler,
		GetOccupancy: handlers.GetOccupancyHandler,

		// Booking flow endpoints.
		StartBookingSession: bookingHandler.StartSession,
		GetBookingSession:   bookingHandler.GetSession,
		ToggleBookingRoom:   bookingHandler.ToggleRoom,
		SubmitDetails:       bookingHandler.SubmitDetails,
		ConfirmPayment:      bookingHandler.ConfirmPayment,
		GetReceipt:          bookingHandler.GetReceipt,
		ResetBookingSession: bookingHandler.ResetSession,

		// Review endpoints.
		GetReviews: reviewHandler.GetReviews,
		PostReview: reviewHandler.PostReview,

		// Concierge endpoint.
		ConciergeChat: conciergeHandler.Chat,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background health checks against the external collaborators.
	utils.StartHealthMonitor([]*redis.Client{utils.GetSessionClient(), utils.GetCacheClient()}, database.MongoClient)

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
