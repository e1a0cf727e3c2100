package summarizer

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

type geminiModel struct {
	client *genai.Client
	model  string
}

// NewGeminiModel builds the Gemini client once; the returned Model is reused
// for every request.
func NewGeminiModel(ctx context.Context, apiKey, model string) (Model, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}
	return &geminiModel{client: client, model: model}, nil
}

func (m *geminiModel) Generate(ctx context.Context, prompt string) (string, error) {
	result, err := m.client.Models.GenerateContent(ctx, m.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	return responseText(result)
}

func responseText(result *genai.GenerateContentResponse) (string, error) {
	if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
		var text string
		for _, part := range result.Candidates[0].Content.Parts {
			if part != nil && part.Text != "" {
				text += part.Text
			}
		}
		return text, nil
	}
	return "", errors.New("empty response from Gemini")
}
