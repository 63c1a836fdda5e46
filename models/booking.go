package models

import "time"

// Flow states for a booking session.
const (
	StepDetails = "details"
	StepPayment = "payment"
	StepSuccess = "success"
)

// Payment methods accepted at confirmation time.
const (
	PaymentPayPal = "paypal"
	PaymentCash   = "cash"
)

// BookingDraft is the transient, guest-held input of one booking flow.
// It is mutated field-by-field until details submission and discarded on reset.
type BookingDraft struct {
	GuestName   string   `json:"guest_name"`
	Mobile      string   `json:"mobile"`
	Address     string   `json:"address"`
	CheckIn     string   `json:"check_in"`  // "YYYY-MM-DD"
	CheckOut    string   `json:"check_out"` // "YYYY-MM-DD"
	RoomsCount  int      `json:"rooms_count"`
	Floor       string   `json:"floor"`
	RoomNumbers []string `json:"room_numbers"`
}

// BookingSession is one instance of the details -> payment -> success flow.
// The transaction ID is generated once per instance and reused across retries.
type BookingSession struct {
	ID            string       `json:"id"`
	RoomID        string       `json:"room_id"`
	Step          string       `json:"step"`
	Draft         BookingDraft `json:"draft"`
	TransactionID string       `json:"transaction_id"`
	CreatedAt     time.Time    `json:"created_at"`
}

// Booking is the persisted record written on payment confirmation.
// The service never reads it back; confirmation is manual by management.
type Booking struct {
	ID            string    `bson:"id" json:"id"`
	GuestName     string    `bson:"name" json:"name"`
	MobileNumber  string    `bson:"mobile_number" json:"mobile_number"`
	Address       string    `bson:"address" json:"address"`
	CheckIn       string    `bson:"check_in" json:"check_in"`
	CheckOut      string    `bson:"check_out" json:"check_out"`
	RoomsCount    int       `bson:"rooms_count" json:"rooms_count"`
	RoomType      string    `bson:"room_type" json:"room_type"`
	TotalPrice    int       `bson:"total_price" json:"total_price"`
	PaymentMethod string    `bson:"payment_method" json:"payment_method"`
	TransactionID string    `bson:"transaction_id" json:"transaction_id"`
	Floor         string    `bson:"floor" json:"floor"`
	RoomNumbers   string    `bson:"room_numbers" json:"room_numbers"` // comma-joined, matches the share receipt
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
}
