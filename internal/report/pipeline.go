package report

import (
	"context"

	"github.com/akolanti/DDRGenerator/internal/assess"
	"github.com/akolanti/DDRGenerator/internal/config"
	"github.com/akolanti/DDRGenerator/internal/domain/reportModel"
	"github.com/akolanti/DDRGenerator/internal/extract"
	"github.com/akolanti/DDRGenerator/internal/render"
	"github.com/akolanti/DDRGenerator/internal/synth"
)

// NewServiceFromConfig wires the default pipeline around the given stores.
func NewServiceFromConfig(ctx context.Context, cfg *config.Config, reports reportModel.ReportStore, artifacts reportModel.ArtifactStore) (Service, error) {
	provider, err := synth.NewProvider(ctx, cfg.Synth)
	if err != nil {
		return nil, err
	}
	return NewService(ServiceConfig{
		Extractor:    extract.NewExtractor(cfg.Extract),
		Classifier:   assess.NewClassifier(cfg.Rules),
		Completeness: assess.NewCompletenessChecker(cfg.Rules.MinContentLength),
		Synthesizer:  synth.NewSynthesizer(provider, cfg.Synth),
		Writer:       render.NewDocumentWriter(cfg.Render),
		Reports:      reports,
		Artifacts:    artifacts,
	}), nil
}
