package openaiCompat

import (
	"context"
	"errors"
	"fmt"

	"github.com/akolanti/DDRGenerator/internal/config"
	"github.com/akolanti/DDRGenerator/internal/customHttpClient"
	"github.com/akolanti/DDRGenerator/internal/synth/llm"
	"github.com/akolanti/DDRGenerator/pkg/logger_i"
	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
)

// llmClient talks to any OpenAI-compatible chat completions endpoint (OpenAI, Groq).
type llmClient struct {
	client      openai.Client
	name        string
	modelName   string
	temperature float64
	maxTokens   int64
	logger      *logger_i.Logger
}

func NewOpenAICompatClient(cfg config.SynthConfig) (llm.Provider, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("synth.api_key is required for provider " + cfg.Provider)
	}
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
		option.WithHTTPClient(customHttpClient.NewClient(cfg.Timeout)),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &llmClient{
		client:      openai.NewClient(opts...),
		name:        cfg.Provider,
		modelName:   cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		logger:      logger_i.NewLogger("llm_" + cfg.Provider),
	}, nil
}

func (c *llmClient) Name() string { return c.name }

func (c *llmClient) Generate(ctx context.Context, prompt string) (string, error) {
	log := c.logger.WithTrace(ctx)

	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.modelName),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Temperature: openai.Float(c.temperature),
	}
	if c.maxTokens > 0 {
		params.MaxTokens = openai.Int(c.maxTokens)
	}

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		log.Error("chat completion failed", "model", c.modelName, "error", err)
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("empty response from model")
	}
	log.Debug("chat completion finished", "model", c.modelName, "finish reason", resp.Choices[0].FinishReason)
	return resp.Choices[0].Message.Content, nil
}
