package concierge

import (
	"context"

	"sainandadeep/models"
)

// ContentGenerator is the outbound generative-AI call. Stateless per call;
// the full conversation history is resent every time.
type ContentGenerator interface {
	Generate(ctx context.Context, history []models.ChatMessage, message string) (*models.ChatReply, error)
}

// ConciergeService answers one guest message given the prior conversation.
// It never fails: a generation error degrades to the canned apology reply.
type ConciergeService interface {
	Chat(ctx context.Context, history []models.ChatMessage, message string) *models.ChatReply
}
