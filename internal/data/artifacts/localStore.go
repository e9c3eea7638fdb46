package artifacts

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/akolanti/DDRGenerator/internal/domain/reportModel"
	"github.com/akolanti/DDRGenerator/pkg/logger_i"
)

// LocalStore writes artifacts to <dir>/<reportId>/<name>.
type LocalStore struct {
	dir    string
	logger *logger_i.Logger
}

func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create artifact dir: %w", err)
	}
	return &LocalStore{dir: dir, logger: logger_i.NewLogger("Local ArtifactStore")}, nil
}

func (s *LocalStore) PutArtifact(ctx context.Context, reportId string, name string, contentType string, data []byte) error {
	if err := validateKey(reportId, name); err != nil {
		return err
	}
	reportDir := filepath.Join(s.dir, reportId)
	if err := os.MkdirAll(reportDir, 0o755); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}

	// write then rename so a reader never sees a half written file
	tmp, err := os.CreateTemp(reportDir, "."+name+".*")
	if err != nil {
		return fmt.Errorf("create temp artifact: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("write artifact: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("close artifact: %w", err)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(reportDir, name)); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("finalize artifact: %w", err)
	}
	s.logger.WithTrace(ctx).Debug("Artifact written", "reportId", reportId, "name", name, "bytes", len(data))
	return nil
}

func (s *LocalStore) GetArtifact(ctx context.Context, reportId string, name string) ([]byte, error) {
	if err := validateKey(reportId, name); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filepath.Join(s.dir, reportId, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, reportModel.ErrArtifactNotFound
	}
	return data, err
}
