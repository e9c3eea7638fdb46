package gemini

import (
	"context"
	"errors"
	"fmt"

	"github.com/akolanti/DDRGenerator/internal/config"
	"github.com/akolanti/DDRGenerator/internal/customHttpClient"
	"github.com/akolanti/DDRGenerator/internal/synth/llm"
	"github.com/akolanti/DDRGenerator/pkg/logger_i"
	"google.golang.org/genai"
)

type llmClient struct {
	client      *genai.Client
	modelName   string
	temperature float32
	maxTokens   int32
	logger      *logger_i.Logger
}

func NewGeminiClient(ctx context.Context, cfg config.SynthConfig) (llm.Provider, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("synth.api_key is required for provider gemini")
	}
	clientConfig := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: customHttpClient.NewClient(cfg.Timeout),
	}
	if cfg.BaseURL != "" {
		clientConfig.HTTPOptions.BaseURL = cfg.BaseURL
	}
	c, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	logger := logger_i.NewLogger("llm_gemini")
	logger.Info("Gemini client created", "model", cfg.Model)

	return &llmClient{
		client:      c,
		modelName:   cfg.Model,
		temperature: float32(cfg.Temperature),
		maxTokens:   int32(cfg.MaxTokens),
		logger:      logger,
	}, nil
}

func (c *llmClient) Name() string { return "gemini" }

func (c *llmClient) Generate(ctx context.Context, prompt string) (string, error) {
	contentConfig := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(c.temperature),
	}
	if c.maxTokens > 0 {
		contentConfig.MaxOutputTokens = c.maxTokens
	}

	result, err := c.client.Models.GenerateContent(
		ctx,
		c.modelName,
		genai.Text(prompt),
		contentConfig,
	)
	if err != nil {
		c.logger.WithTrace(ctx).Error("gemini generate failed", "model", c.modelName, "error", err)
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	if result == nil {
		return "", errors.New("empty response from model")
	}
	return result.Text(), nil
}
