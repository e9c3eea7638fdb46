package synth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/akolanti/DDRGenerator/internal/config"
	"github.com/akolanti/DDRGenerator/internal/domain/reportModel"
	"github.com/akolanti/DDRGenerator/internal/synth/llm"
	"github.com/akolanti/DDRGenerator/internal/synth/llm/claude"
	"github.com/akolanti/DDRGenerator/internal/synth/llm/gemini"
	"github.com/akolanti/DDRGenerator/internal/synth/llm/openaiCompat"
	"github.com/akolanti/DDRGenerator/pkg/logger_i"
)

// ReportSynthesizer asks the hosted model for the DDR body. The answer is returned untouched.
type ReportSynthesizer interface {
	Synthesize(ctx context.Context, inspection string, thermal string) (string, error)
}

type synthesizer struct {
	provider llm.Provider
	cfg      config.SynthConfig
	logger   *logger_i.Logger
}

func NewSynthesizer(provider llm.Provider, cfg config.SynthConfig) ReportSynthesizer {
	return &synthesizer{
		provider: provider,
		cfg:      cfg,
		logger:   logger_i.NewLogger("Synthesizer"),
	}
}

func (s *synthesizer) Synthesize(ctx context.Context, inspection string, thermal string) (string, error) {
	log := s.logger.WithTrace(ctx).With("provider", s.provider.Name())

	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	prompt := BuildPrompt(inspection, thermal)
	log.Debug("Sending prompt", "chars", len(prompt))

	answer, err := s.provider.Generate(ctx, prompt)
	if err != nil {
		log.Error("Synthesis failed", "error", err)
		return "", &reportModel.GenerationError{Provider: s.provider.Name(), Err: err}
	}
	if strings.TrimSpace(answer) == "" {
		log.Error("Synthesis returned an empty report")
		return "", &reportModel.GenerationError{Provider: s.provider.Name(), Err: errors.New("empty response")}
	}
	return answer, nil
}

// NewProvider builds the configured model client.
func NewProvider(ctx context.Context, cfg config.SynthConfig) (llm.Provider, error) {
	switch cfg.Provider {
	case "groq", "openai":
		return openaiCompat.NewOpenAICompatClient(cfg)
	case "gemini":
		return gemini.NewGeminiClient(ctx, cfg)
	case "anthropic":
		return claude.NewClaudeClient(cfg)
	default:
		return nil, fmt.Errorf("unsupported synth provider %q", cfg.Provider)
	}
}
