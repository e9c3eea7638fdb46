package artifacts

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"

	"cloud.google.com/go/storage"
	"github.com/akolanti/DDRGenerator/internal/config"
	"github.com/akolanti/DDRGenerator/internal/domain/reportModel"
	"github.com/akolanti/DDRGenerator/pkg/logger_i"
	"google.golang.org/api/option"
)

type GCSStore struct {
	client *storage.Client
	bucket *storage.BucketHandle
	prefix string
	logger *logger_i.Logger
}

func NewGCSStore(ctx context.Context, cfg config.GCSConfig) (*GCSStore, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("artifacts.gcs.bucket is required")
	}
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}
	return &GCSStore{
		client: client,
		bucket: client.Bucket(cfg.Bucket),
		prefix: cfg.Prefix,
		logger: logger_i.NewLogger("GCS ArtifactStore"),
	}, nil
}

func (s *GCSStore) Close() error {
	return s.client.Close()
}

func (s *GCSStore) PutArtifact(ctx context.Context, reportId string, name string, contentType string, data []byte) error {
	if err := validateKey(reportId, name); err != nil {
		return err
	}
	object := path.Join(s.prefix, reportId, name)
	writer := s.bucket.Object(object).NewWriter(ctx)
	writer.ContentType = contentType

	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write to GCS: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize GCS write: %w", err)
	}
	s.logger.WithTrace(ctx).Debug("Artifact uploaded", "object", object)
	return nil
}

func (s *GCSStore) GetArtifact(ctx context.Context, reportId string, name string) ([]byte, error) {
	if err := validateKey(reportId, name); err != nil {
		return nil, err
	}
	reader, err := s.bucket.Object(path.Join(s.prefix, reportId, name)).NewReader(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return nil, reportModel.ErrArtifactNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("gcs read %s: %w", name, err)
	}
	defer reader.Close()
	return io.ReadAll(reader)
}
