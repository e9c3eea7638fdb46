package claude

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/akolanti/DDRGenerator/internal/config"
	"github.com/akolanti/DDRGenerator/internal/customHttpClient"
	"github.com/akolanti/DDRGenerator/internal/synth/llm"
	"github.com/akolanti/DDRGenerator/pkg/logger_i"
	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

type llmClient struct {
	client      anthropic.Client
	modelName   string
	temperature float64
	maxTokens   int64
	logger      *logger_i.Logger
}

func NewClaudeClient(cfg config.SynthConfig) (llm.Provider, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("synth.api_key is required for provider anthropic")
	}
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
		option.WithHTTPClient(customHttpClient.NewClient(cfg.Timeout)),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(strings.TrimRight(cfg.BaseURL, "/")))
	}

	// the messages API rejects requests without max_tokens
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = config.AnthropicMaxTokens
	}
	return &llmClient{
		client:      anthropic.NewClient(opts...),
		modelName:   cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   maxTokens,
		logger:      logger_i.NewLogger("llm_anthropic"),
	}, nil
}

func (c *llmClient) Name() string { return "anthropic" }

func (c *llmClient) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.modelName),
		MaxTokens: c.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
		Temperature: anthropic.Float(c.temperature),
	})
	if err != nil {
		c.logger.WithTrace(ctx).Error("anthropic message failed", "model", c.modelName, "error", err)
		return "", fmt.Errorf("anthropic message: %w", err)
	}

	var full strings.Builder
	for _, block := range resp.Content {
		if block.Type != "text" || block.Text == "" {
			continue
		}
		full.WriteString(block.Text)
	}
	return full.String(), nil
}
