package models

import "time"

// Chat roles as sent by the frontend and forwarded to Gemini.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// ChatMessage is one entry of the in-memory conversation log. The full log is
// resent on every call; the concierge holds no state between calls.
type ChatMessage struct {
	Role      string    `json:"role"` // "user" | "model"
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp,omitempty"`
}

// GroundingSource is an optional web source backing a concierge reply.
type GroundingSource struct {
	Title string `json:"title,omitempty"`
	URI   string `json:"uri,omitempty"`
}

// ChatReply is the concierge's answer. Fallback marks the canned apology used
// when the generative call failed.
type ChatReply struct {
	Text     string            `json:"text"`
	Sources  []GroundingSource `json:"sources,omitempty"`
	Fallback bool              `json:"fallback,omitempty"`
}
