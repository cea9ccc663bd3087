package llm

import (
	"chatthinker/app/config"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/samber/do"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

const (
	defaultTemperature = 0.7
	maxGenDuration     = 30 * time.Second
	maxTokens          = 1000
)

// Client talks to an OpenAI-compatible completion endpoint: one prompt in,
// one text blob out. No streaming, no tool use.
type Client struct {
	cfg   *config.Config
	model llms.Model
}

func NewClient(di *do.Injector) (*Client, error) {
	cfg := do.MustInvoke[*config.Config](di)

	model, err := openai.New(
		openai.WithToken(cfg.OpenAI.Token),
		openai.WithBaseURL(cfg.OpenAI.BaseURL),
		openai.WithModel(cfg.OpenAI.Model),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create openai client: %w", err)
	}

	return &Client{
		cfg:   cfg,
		model: model,
	}, nil
}

func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, maxGenDuration)
	defer cancel()

	result, err := llms.GenerateFromSinglePrompt(ctx, c.model, prompt,
		llms.WithTemperature(defaultTemperature),
		llms.WithMaxTokens(maxTokens),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create completion: %w", err)
	}

	result = strings.TrimSpace(result)
	if result == "" {
		return "", fmt.Errorf("no completion found")
	}

	return result, nil
}
