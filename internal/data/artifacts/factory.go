package artifacts

import (
	"context"
	"fmt"
	"strings"

	"github.com/akolanti/DDRGenerator/internal/config"
	"github.com/akolanti/DDRGenerator/internal/domain/reportModel"
)

// NewArtifactStore builds the configured backend. There is no fallback backend.
func NewArtifactStore(ctx context.Context, cfg config.ArtifactsConfig) (reportModel.ArtifactStore, func() error, error) {
	noop := func() error { return nil }
	switch cfg.Backend {
	case "local", "":
		s, err := NewLocalStore(cfg.LocalDir)
		if err != nil {
			return nil, noop, err
		}
		return s, noop, nil
	case "s3":
		s, err := NewS3Store(cfg.S3)
		if err != nil {
			return nil, noop, err
		}
		return s, noop, nil
	case "gcs":
		s, err := NewGCSStore(ctx, cfg.GCS)
		if err != nil {
			return nil, noop, err
		}
		return s, s.Close, nil
	default:
		return nil, noop, fmt.Errorf("unsupported artifacts.backend %q", cfg.Backend)
	}
}

func validateKey(reportId, name string) error {
	for _, part := range []string{reportId, name} {
		if part == "" || part == "." || part == ".." || strings.ContainsAny(part, `/\`) {
			return fmt.Errorf("invalid artifact key %q/%q", reportId, name)
		}
	}
	return nil
}
