// File: services/concierge/geminiClient.go
package concierge

import (
	"context"
	"fmt"
	"strings"

	"sainandadeep/models"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

type GeminiClient struct {
	model *genai.GenerativeModel
}

func NewGeminiClient(apiKey string) *GeminiClient {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		panic(fmt.Sprintf("failed to create Gemini client: %v", err))
	}

	model := client.GenerativeModel("models/gemini-1.5-flash")
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemInstruction)},
	}
	return &GeminiClient{model: model}
}

// Generate sends the prior conversation plus the new guest message and
// returns the model's reply with any cited web sources.
func (g *GeminiClient) Generate(ctx context.Context, history []models.ChatMessage, message string) (*models.ChatReply, error) {
	chat := g.model.StartChat()
	chat.History = make([]*genai.Content, 0, len(history))
	for _, msg := range history {
		chat.History = append(chat.History, &genai.Content{
			Role:  msg.Role,
			Parts: []genai.Part{genai.Text(msg.Text)},
		})
	}

	resp, err := chat.SendMessage(ctx, genai.Text(message))
	if err != nil {
		return nil, fmt.Errorf("gemini generate error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("gemini returned no candidates")
	}

	candidate := resp.Candidates[0]
	var sb strings.Builder
	for _, part := range candidate.Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}

	return &models.ChatReply{
		Text:    sb.String(),
		Sources: groundingSources(candidate),
	}, nil
}

func groundingSources(candidate *genai.Candidate) []models.GroundingSource {
	if candidate.CitationMetadata == nil {
		return nil
	}
	var sources []models.GroundingSource
	for _, cs := range candidate.CitationMetadata.CitationSources {
		if cs == nil || cs.URI == nil || *cs.URI == "" {
			continue
		}
		sources = append(sources, models.GroundingSource{URI: *cs.URI})
	}
	return sources
}
