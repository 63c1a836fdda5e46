// Package catalog holds the static guesthouse inventory: room types, the
// floor/room-number layout and the marketing content. Everything here is fixed
// at process start; real-time availability is confirmed manually by management.
package catalog

import "sainandadeep/models"

// TotalHotelRooms is the number of physical units across all floors.
const TotalHotelRooms = 8

// Rooms is the bookable room-type catalog.
var Rooms = []models.Room{
	{
		ID:          "1",
		Name:        "Standard Triple Room",
		Description: "A clean and well-maintained room featuring three comfortable single beds, perfect for families or groups of pilgrims. Located just a 2-minute walk from Dwarkamai.",
		Price:       1000,
		Image:       "room_triple.jpg",
		Amenities:   []string{"3 Comfortable Beds", "Attached Bathroom", "Hot Water (5AM-8AM)", "Ceiling Fan", "Daily Housekeeping"},
		Capacity:    3,
	},
	{
		ID:          "2",
		Name:        "Deluxe AC Room",
		Description: "Our premium offering featuring a large comfortable bed and high-quality air conditioning. Ideal for guests looking for extra comfort during their Shirdi pilgrimage.",
		Price:       1500,
		Image:       "room_ac.jpg",
		Amenities:   []string{"Air Conditioning", "Large Double Bed", "LED TV", "Hot Water (5AM-8AM)", "Premium Linen"},
		Capacity:    3,
	},
}

// Floors lists the floor layout in display order, two units per floor.
var Floors = []models.Floor{
	{Label: "1st Floor", RoomNumbers: []string{"101", "102"}},
	{Label: "2nd Floor", RoomNumbers: []string{"201", "202"}},
	{Label: "3rd Floor", RoomNumbers: []string{"301", "302"}},
	{Label: "4th Floor", RoomNumbers: []string{"401", "402"}},
}

// RoomByID returns the catalog room with the given ID, or nil.
func RoomByID(id string) *models.Room {
	for i := range Rooms {
		if Rooms[i].ID == id {
			return &Rooms[i]
		}
	}
	return nil
}

// FloorByLabel returns the floor with the given display label, or nil.
func FloorByLabel(label string) *models.Floor {
	for i := range Floors {
		if Floors[i].Label == label {
			return &Floors[i]
		}
	}
	return nil
}

// FloorHasRoom reports whether roomNumber belongs to the given floor.
func FloorHasRoom(floorLabel, roomNumber string) bool {
	floor := FloorByLabel(floorLabel)
	if floor == nil {
		return false
	}
	for _, rn := range floor.RoomNumbers {
		if rn == roomNumber {
			return true
		}
	}
	return false
}
