package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sainandadeep/services/catalog"
)

// GetRoomsHandler returns the static room-type catalog.
func GetRoomsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"rooms":  catalog.Rooms,
		"floors": catalog.Floors,
	})
}

// GetRoomByIDHandler returns one catalog room.
func GetRoomByIDHandler(c *gin.Context) {
	room := catalog.RoomByID(c.Param("id"))
	if room == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		return
	}
	c.JSON(http.StatusOK, room)
}

// GetContentHandler returns the marketing content blocks.
func GetContentHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"hotel":       catalog.Hotel,
		"attractions": catalog.Attractions,
		"transport":   catalog.TransportModes,
		"tips":        catalog.PilgrimTips,
		"amenities":   catalog.Amenities,
		"links": gin.H{
			"phone":    catalog.TelLink(),
			"whatsapp": catalog.WhatsAppLink(""),
			"email":    "mailto:" + catalog.Hotel.Email,
		},
	})
}

// GetOccupancyHandler returns the illustrative occupancy calendar. This data
// carries no link to actual bookings; availability is confirmed manually.
func GetOccupancyHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"total_rooms": catalog.TotalHotelRooms,
		"occupancy":   catalog.MockOccupancy(),
	})
}
