package artifacts

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"

	"github.com/akolanti/DDRGenerator/internal/config"
	"github.com/akolanti/DDRGenerator/internal/customHttpClient"
	"github.com/akolanti/DDRGenerator/internal/domain/reportModel"
	"github.com/akolanti/DDRGenerator/pkg/logger_i"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3Store works against AWS S3 and S3 compatible endpoints such as MinIO or R2.
type S3Store struct {
	client *s3.Client
	bucket string
	prefix string
	logger *logger_i.Logger
}

func NewS3Store(cfg config.S3Config) (*S3Store, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("artifacts.s3.bucket is required")
	}
	awsCfg := aws.Config{
		Region:     cfg.Region,
		HTTPClient: customHttpClient.NewClient(0),
	}
	if cfg.AccessKey != "" {
		awsCfg.Credentials = credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})
	return &S3Store{
		client: client,
		bucket: cfg.Bucket,
		prefix: cfg.Prefix,
		logger: logger_i.NewLogger("S3 ArtifactStore"),
	}, nil
}

func (s *S3Store) key(reportId, name string) string {
	return path.Join(s.prefix, reportId, name)
}

func (s *S3Store) PutArtifact(ctx context.Context, reportId string, name string, contentType string, data []byte) error {
	if err := validateKey(reportId, name); err != nil {
		return err
	}
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(s.key(reportId, name)),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		return fmt.Errorf("s3 put %s: %w", name, err)
	}
	s.logger.WithTrace(ctx).Debug("Artifact uploaded", "bucket", s.bucket, "key", s.key(reportId, name))
	return nil
}

func (s *S3Store) GetArtifact(ctx context.Context, reportId string, name string) ([]byte, error) {
	if err := validateKey(reportId, name); err != nil {
		return nil, err
	}
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(reportId, name)),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, reportModel.ErrArtifactNotFound
		}
		return nil, fmt.Errorf("s3 get %s: %w", name, err)
	}
	defer out.Body.Close()
	return io.ReadAll(out.Body)
}
