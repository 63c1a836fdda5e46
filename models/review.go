package models

import "time"

// Review is a guest review, either seeded or persisted via the store.
// Reviews are never mutated or deleted by this service.
type Review struct {
	ID        string    `bson:"id" json:"id,omitempty"`
	Author    string    `bson:"author" json:"author"`
	Rating    int       `bson:"rating" json:"rating"` // 1..5
	Content   string    `bson:"content" json:"content"`
	Avatar    string    `bson:"avatar,omitempty" json:"avatar,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
