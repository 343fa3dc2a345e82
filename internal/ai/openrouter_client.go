package ai

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/fixline/lead-assist/internal/logging"
)

const defaultBaseURL = "https://openrouter.ai/api/v1"

// OpenRouter speaks the OpenAI chat-completions protocol, so the stock
// client works with a swapped base URL.
type OpenRouterClient struct {
	client *openai.Client
	model  string
}

func NewOpenRouterClient() *OpenRouterClient {
	apiKey := strings.TrimSpace(os.Getenv("OPENROUTER_API_KEY"))
	if apiKey == "" {
		logging.L().Fatal("OPENROUTER_API_KEY not set")
	}

	model := os.Getenv("OPENROUTER_MODEL")
	if model == "" {
		model = "openai/gpt-4o-mini"
	}

	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = defaultBaseURL
	if base := os.Getenv("OPENROUTER_BASE_URL"); base != "" {
		cfg.BaseURL = base
	}

	return &OpenRouterClient{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (c *OpenRouterClient) Complete(
	ctx context.Context,
	system string,
	messages []Message,
) (string, error) {

	msgs := make([]openai.ChatCompletionMessage, 0, len(messages)+1)
	if system != "" {
		msgs = append(msgs, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: system,
		})
	}
	for _, m := range messages {
		msgs = append(msgs, openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Text,
		})
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: 0.2,
		Messages:    msgs,
	})
	if err != nil {
		return "", fmt.Errorf("openrouter request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("openrouter returned no choices")
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", errors.New("openrouter returned empty content")
	}

	logging.L().Debug("raw provider response", zap.String("content", short(content)))

	return content, nil
}

func short(s string) string {
	if len(s) > 180 {
		return s[:180] + "..."
	}
	return s
}
