package routes

import (
	"net/http"
	"time"

	"sainandadeep/handlers"
	"sainandadeep/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterWebRoutes registers the server-rendered pages and static assets.
func RegisterWebRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/", hb.Home)
	r.Static("/static", "./static")
}

// RegisterContentRoutes registers the read-only catalog endpoints.
func RegisterContentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/content", hb.GetContent)
		api.GET("/rooms", hb.GetRooms)
		api.GET("/rooms/:id", hb.GetRoomByID)
		api.GET("/occupancy", hb.GetOccupancy)
	}
}

// RegisterBookingRoutes sets up the endpoints for the booking flow.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/booking")
	{
		bookingGroup.POST("/session", hb.StartBookingSession)
		bookingGroup.GET("/session/:sessionID", hb.GetBookingSession)
		bookingGroup.PUT("/session/:sessionID/rooms", hb.ToggleBookingRoom)
		bookingGroup.PUT("/session/:sessionID/details", hb.SubmitDetails)
		bookingGroup.POST("/session/:sessionID/confirm", hb.ConfirmPayment)
		bookingGroup.GET("/session/:sessionID/receipt", hb.GetReceipt)
		bookingGroup.POST("/session/:sessionID/reset", hb.ResetBookingSession)
	}
}

// RegisterReviewRoutes registers review endpoints.
func RegisterReviewRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reviews")
	{
		api.GET("", hb.GetReviews)
		api.POST("", hb.PostReview)
	}
}

// RegisterConciergeRoutes registers the AI concierge endpoint.
func RegisterConciergeRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/concierge")
	{
		api.POST("/chat", hb.ConciergeChat)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Om Sai Ram, I'm Hotel Sai Nandadeep",
			"checks":  utils.GetHealthStatus(),
		})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterWebRoutes(r, hb)
	RegisterContentRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterReviewRoutes(r, hb)
	RegisterConciergeRoutes(r, hb)
	RegisterHealthRoute(r)
}
