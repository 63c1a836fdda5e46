package models

// Room represents one bookable room type from the static catalog.
type Room struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       int      `json:"price"` // nightly price in rupees
	Image       string   `json:"image"`
	Amenities   []string `json:"amenities"`
	Capacity    int      `json:"capacity"`
}

// Floor maps a display label to the physical room numbers on that floor.
// Selection is a preference only; final allocation is confirmed by management.
type Floor struct {
	Label       string   `json:"label"`
	RoomNumbers []string `json:"room_numbers"`
}
