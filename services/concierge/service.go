package concierge

import (
	"context"
	"fmt"

	"sainandadeep/models"
	"sainandadeep/services/catalog"
	"sainandadeep/utils"

	"go.uber.org/zap"
)

// DefaultConciergeService relays guest messages to the content generator.
type DefaultConciergeService struct {
	Generator ContentGenerator
}

func NewDefaultConciergeService(generator ContentGenerator) *DefaultConciergeService {
	return &DefaultConciergeService{Generator: generator}
}

// ApologyMessage is the fixed reply used when the generative call fails.
func ApologyMessage() string {
	return fmt.Sprintf("I'm sorry, I encountered an error. Please try again or call/WhatsApp us at %s.",
		catalog.Hotel.Phone)
}

// emptyReplyMessage covers a successful call that produced no text.
func emptyReplyMessage() string {
	return fmt.Sprintf("I apologize, I'm having trouble connecting right now. Please call/WhatsApp us at %s or email %s for assistance.",
		catalog.Hotel.Phone, catalog.Hotel.Email)
}

// Chat answers one guest message. A generation failure is logged and degrades
// to the canned apology; the caller always gets exactly one reply to append.
func (s *DefaultConciergeService) Chat(ctx context.Context, history []models.ChatMessage, message string) *models.ChatReply {
	reply, err := s.Generator.Generate(ctx, history, message)
	if err != nil {
		utils.GetLogger().Error("concierge generation failed", zap.Error(err))
		return &models.ChatReply{Text: ApologyMessage(), Fallback: true}
	}
	if reply.Text == "" {
		reply.Text = emptyReplyMessage()
	}
	return reply
}
