package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// LLMService sends a prompt to a text-generation endpoint and returns the raw
// completion.
type LLMService interface {
	GenerateText(ctx context.Context, systemInstruction, prompt string) (string, error)
}

type GroqConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

type groqService struct {
	client *openai.Client
	model  string
}

// NewGroqService builds a client for Groq's OpenAI-compatible chat endpoint.
// Retries are disabled: one request per analysis, the caller owns the timeout.
func NewGroqService(cfg GroqConfig) (LLMService, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: missing API key", ErrAuth)
	}

	client := openai.NewClient(
		option.WithAPIKey(cfg.APIKey),
		option.WithBaseURL(cfg.BaseURL),
		option.WithMaxRetries(0),
	)

	return &groqService{
		client: client,
		model:  cfg.Model,
	}, nil
}

// GenerateText implements LLMService.
func (g *groqService) GenerateText(ctx context.Context, systemInstruction, prompt string) (string, error) {
	resp, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: openai.F([]openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemInstruction),
			openai.UserMessage(prompt),
		}),
		Model:       openai.F(openai.ChatModel(g.model)),
		Temperature: openai.F(0.4),
		MaxTokens:   openai.F(int64(4096)),
	})
	if err != nil {
		return "", mapCompletionError(err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("%w: empty completion", ErrTransport)
	}

	return resp.Choices[0].Message.Content, nil
}

// mapCompletionError folds endpoint failures into the three client error
// kinds: bad credential, throttling, everything else.
func mapCompletionError(err error) error {
	var apierr *openai.Error
	if errors.As(err, &apierr) {
		switch apierr.StatusCode {
		case 401, 403:
			return fmt.Errorf("%w: %v", ErrAuth, err)
		case 429:
			return fmt.Errorf("%w: %v", ErrRateLimit, err)
		}
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}
	// Network errors, timeouts, cancelled contexts
	return fmt.Errorf("%w: %v", ErrTransport, err)
}
