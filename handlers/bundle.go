package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups every endpoint handler for route registration.
type HandlerBundle struct {
	// Presentation shell.
	Home gin.HandlerFunc

	// Catalog / content endpoints.
	GetRooms     gin.HandlerFunc
	GetRoomByID  gin.HandlerFunc
	GetContent   gin.HandlerFunc
	GetOccupancy gin.HandlerFunc

	// Booking flow endpoints.
	StartBookingSession gin.HandlerFunc
	GetBookingSession   gin.HandlerFunc
	ToggleBookingRoom   gin.HandlerFunc
	SubmitDetails       gin.HandlerFunc
	ConfirmPayment      gin.HandlerFunc
	GetReceipt          gin.HandlerFunc
	ResetBookingSession gin.HandlerFunc

	// Review endpoints.
	GetReviews gin.HandlerFunc
	PostReview gin.HandlerFunc

	// Concierge endpoint.
	ConciergeChat gin.HandlerFunc
}
