package catalog

import (
	"time"

	"sainandadeep/models"
)

// HotelInfo carries the contact facts used across receipts, links and pages.
type HotelInfo struct {
	Name      string `json:"name"`
	Location  string `json:"location"`
	Phone     string `json:"phone"`
	WhatsApp  string `json:"whatsapp"` // international format, digits only
	Email     string `json:"email"`
	PayPalURL string `json:"paypal_url"`
	ManagedBy string `json:"managed_by"`
	Since     int    `json:"since"`
}

var Hotel = HotelInfo{
	Name:      "Hotel Sai Nandadeep",
	Location:  "Near Dwarkamai & Chavadi Temple, Shirdi",
	Phone:     "9405562019",
	WhatsApp:  "919405562019",
	Email:     "yashgondkar0707@gmail.com",
	PayPalURL: "https://www.paypal.com/paypalme/YGondkar",
	ManagedBy: "Gondkar Brothers",
	Since:     2012,
}

// Attraction is a nearby landmark shown on the marketing page.
type Attraction struct {
	Name        string `json:"name"`
	Distance    string `json:"distance"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

var Attractions = []Attraction{
	{
		Name:        "Dwarkamai",
		Distance:    "2 min walk",
		Description: "The sacred mosque where Sai Baba lived for 60 years. Home to the eternal sacred fire (Dhuni).",
		Image:       "https://images.unsplash.com/photo-1561488132-5952c9b48da1?auto=format&fit=crop&w=600&q=80",
	},
	{
		Name:        "Chavadi",
		Distance:    "3 min walk",
		Description: "The place where Baba stayed on alternate nights. It holds deep spiritual significance during the Palanquin procession.",
		Image:       "https://images.unsplash.com/photo-1548013146-72479768bbaa?auto=format&fit=crop&w=600&q=80",
	},
	{
		Name:        "Khandoba Temple",
		Distance:    "5 min walk",
		Description: "The historical site where the priest first welcomed the saint with the words 'Aao Sai' (Welcome Sai).",
		Image:       "https://images.unsplash.com/photo-1590050752117-23a9d7fc91db?auto=format&fit=crop&w=600&q=80",
	},
}

// TransportMode describes one way of reaching the hotel.
type TransportMode struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
	Icon   string `json:"icon"`
	Desc   string `json:"desc"`
}

var TransportModes = []TransportMode{
	{Title: "Shirdi Airport (SKO)", Detail: "15 km (30 mins drive)", Icon: "✈️", Desc: "Direct flights from major cities like Mumbai, Delhi, and Hyderabad."},
	{Title: "Sainagar Shirdi Railway", Detail: "3 km (10 mins drive)", Icon: "🚂", Desc: "Direct trains available. We can arrange pick-up via our travel desk."},
	{Title: "Local Rickshaws", Detail: "Available 24/7", Icon: "🛺", Desc: "Standard rates apply for travel to distant Shirdi attractions."},
}

// Tip is a short advisory for visiting pilgrims.
type Tip struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

var PilgrimTips = []Tip{
	{Title: "Online Darshan", Text: "Book your Darshan and Aarti slots online via the official Sansthan portal to save time."},
	{Title: "Dress Code", Text: "Modest and traditional Indian attire is recommended for temple entry."},
	{Title: "Peak Days", Text: "Thursdays and holidays are busiest. Expect longer wait times for Darshan."},
	{Title: "Footwear", Text: "You must leave footwear at designated stands before entering the temple complex."},
}

// AmenityHighlight is a hotel-level amenity badge.
type AmenityHighlight struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

var Amenities = []AmenityHighlight{
	{Name: "Walk to Temple", Icon: "🚶"},
	{Name: "Travel Desk", Icon: "🚕"},
	{Name: "Triple Bed Rooms", Icon: "🛏️"},
	{Name: "24/7 Security", Icon: "🛡️"},
	{Name: "Free Parking", Icon: "🅿️"},
	{Name: "Hot Water (5-8 AM)", Icon: "🚿"},
}

// SeedTestimonials returns the static review fallback. Timestamps are set at
// call time so the entries render as recent.
func SeedTestimonials() []models.Review {
	now := time.Now()
	return []models.Review{
		{
			ID:        "1",
			Author:    "Rajesh Kulkarni",
			Rating:    5,
			Content:   "Very close to Dwarkamai. We walked to the early morning Kakad Aarti easily. The rooms are basic but very clean and perfect for families.",
			Avatar:    "https://i.pravatar.cc/150?u=rajesh",
			CreatedAt: now,
		},
		{
			ID:        "2",
			Author:    "Anjali Sharma",
			Rating:    5,
			Content:   "Hotel Sai Nandadeep provided exactly what we needed - a clean, affordable place to stay near the temple. The 3-bed arrangement was perfect for us.",
			Avatar:    "https://i.pravatar.cc/150?u=anjali",
			CreatedAt: now,
		},
	}
}
