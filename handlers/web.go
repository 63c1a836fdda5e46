package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sainandadeep/services/catalog"
)

// HomeHandler renders the marketing page, or the minimal "contact management
// directly" confirmation page when the view query parameter selects it. These
// are the only two views; there is no other routing.
func HomeHandler(c *gin.Context) {
	if c.Query("view") == "availability" {
		c.HTML(http.StatusOK, "contact.html", gin.H{
			"Hotel":        catalog.Hotel,
			"TelLink":      catalog.TelLink(),
			"WhatsAppLink": catalog.WhatsAppLink(""),
		})
		return
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"Hotel":        catalog.Hotel,
		"Rooms":        catalog.Rooms,
		"Floors":       catalog.Floors,
		"Attractions":  catalog.Attractions,
		"Transport":    catalog.TransportModes,
		"Tips":         catalog.PilgrimTips,
		"Amenities":    catalog.Amenities,
		"Testimonials": catalog.SeedTestimonials(),
		"TelLink":      catalog.TelLink(),
		"WhatsAppLink": catalog.WhatsAppLink(""),
	})
}
