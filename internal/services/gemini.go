package services

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

type GeminiConfig struct {
	APIKey string
	Model  string
}

type geminiService struct {
	client *genai.Client
	model  string
}

// NewGeminiService builds the alternate provider on the Gemini API.
func NewGeminiService(ctx context.Context, cfg GeminiConfig) (LLMService, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: missing API key", ErrAuth)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiService{
		client: client,
		model:  cfg.Model,
	}, nil
}

// GenerateText implements LLMService.
func (g *geminiService) GenerateText(ctx context.Context, systemInstruction, prompt string) (string, error) {
	temperature := float32(0.4)
	config := &genai.GenerateContentConfig{
		Temperature:       &temperature,
		MaxOutputTokens:   4096,
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), config)
	if err != nil {
		return "", mapGeminiError(err)
	}

	if resp == nil {
		return "", fmt.Errorf("%w: no response generated", ErrTransport)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("%w: no text content in response", ErrTransport)
	}

	return text, nil
}

func mapGeminiError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case 401, 403:
			return fmt.Errorf("%w: %v", ErrAuth, err)
		case 429:
			return fmt.Errorf("%w: %v", ErrRateLimit, err)
		}
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}
	return fmt.Errorf("%w: %v", ErrTransport, err)
}
