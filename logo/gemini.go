package logo

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// GeminiGenerator asks a Gemini image model for the logo
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

// NewGeminiGenerator creates a client for the Gemini API
func NewGeminiGenerator(ctx context.Context, apiKey, model string) (*GeminiGenerator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &GeminiGenerator{client: client, model: model}, nil
}

// Generate sends a single request and returns the first inline image
func (g *GeminiGenerator) Generate(ctx context.Context) (Image, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(Prompt), nil)
	if err != nil {
		return Image{}, fmt.Errorf("generate content: %w", err)
	}
	return FirstImage(resp)
}

// FirstImage extracts the first inline image part of a response
func FirstImage(resp *genai.GenerateContentResponse) (Image, error) {
	if resp == nil {
		return Image{}, ErrNoImage
	}
	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part != nil && part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return Image{Data: part.InlineData.Data, MIMEType: part.InlineData.MIMEType}, nil
			}
		}
	}
	return Image{}, ErrNoImage
}
