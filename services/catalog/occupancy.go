package catalog

import "time"

// MockOccupancy maps "YYYY-MM-DD" to the number of units booked (max 8).
// This is illustrative display data only; it carries no link to actual
// bookings and must not be read as authoritative availability.
func MockOccupancy() map[string]int {
	offsets := map[int]int{
		2:  8, // fully booked
		3:  8,
		5:  4, // partially booked
		7:  8,
		10: 2,
		14: 8,
		15: 8,
		21: 5,
	}
	today := time.Now()
	occupancy := make(map[string]int, len(offsets))
	for days, booked := range offsets {
		date := today.AddDate(0, 0, days).Format("2006-01-02")
		occupancy[date] = booked
	}
	return occupancy
}
