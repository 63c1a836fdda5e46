package booking

import (
	"math"
	"time"
)

const dateLayout = "2006-01-02"

// Nights computes the stay length as ceil((checkOut - checkIn) in days),
// floored at zero. Unparseable or missing dates count as zero nights.
func Nights(checkIn, checkOut string) int {
	start, err := time.Parse(dateLayout, checkIn)
	if err != nil {
		return 0
	}
	end, err := time.Parse(dateLayout, checkOut)
	if err != nil {
		return 0
	}
	days := int(math.Ceil(end.Sub(start).Hours() / 24))
	if days < 0 {
		return 0
	}
	return days
}

// TotalPrice is nights x nightly unit price x number of rooms.
func TotalPrice(nights, unitPrice, roomsCount int) int {
	return nights * unitPrice * roomsCount
}
