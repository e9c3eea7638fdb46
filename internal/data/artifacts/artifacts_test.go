package artifacts

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/akolanti/DDRGenerator/internal/config"
	"github.com/akolanti/DDRGenerator/internal/domain/reportModel"
)

func TestLocalStore_PutGet(t *testing.T) {
	dir := t.TempDir()
	s, err := NewLocalStore(dir)
	if err != nil {
		t.Fatalf("NewLocalStore: %v", err)
	}
	ctx := context.Background()

	if err := s.PutArtifact(ctx, "r1", "DDR_Report.txt", "text/plain", []byte("hello")); err != nil {
		t.Fatalf("PutArtifact: %v", err)
	}
	got, err := s.GetArtifact(ctx, "r1", "DDR_Report.txt")
	if err != nil {
		t.Fatalf("GetArtifact: %v", err)
	}
	if string(got) != "hello" {
		t.Errorf("got %q, want hello", got)
	}
	if _, err := os.Stat(filepath.Join(dir, "r1", "DDR_Report.txt")); err != nil {
		t.Errorf("artifact not at expected path: %v", err)
	}

	entries, _ := os.ReadDir(filepath.Join(dir, "r1"))
	if len(entries) != 1 {
		t.Errorf("temp files left behind: %d entries", len(entries))
	}
}

func TestLocalStore_ReportsDoNotOverwriteEachOther(t *testing.T) {
	s, _ := NewLocalStore(t.TempDir())
	ctx := context.Background()

	_ = s.PutArtifact(ctx, "first", "DDR_Report.pdf", "application/pdf", []byte("one"))
	_ = s.PutArtifact(ctx, "second", "DDR_Report.pdf", "application/pdf", []byte("two"))

	first, _ := s.GetArtifact(ctx, "first", "DDR_Report.pdf")
	second, _ := s.GetArtifact(ctx, "second", "DDR_Report.pdf")
	if !bytes.Equal(first, []byte("one")) || !bytes.Equal(second, []byte("two")) {
		t.Errorf("artifacts collided: %q %q", first, second)
	}
}

func TestLocalStore_NotFound(t *testing.T) {
	s, _ := NewLocalStore(t.TempDir())

	_, err := s.GetArtifact(context.Background(), "missing", "DDR_Report.txt")
	if !errors.Is(err, reportModel.ErrArtifactNotFound) {
		t.Errorf("expected ErrArtifactNotFound, got %v", err)
	}
}

func TestValidateKey(t *testing.T) {
	tests := []struct {
		reportId string
		name     string
		valid    bool
	}{
		{"abc", "DDR_Report.txt", true},
		{"../etc", "passwd", false},
		{"abc", "../x", false},
		{"..", "x", false},
		{"", "x", false},
		{"abc", `a\b`, false},
	}
	for _, tt := range tests {
		err := validateKey(tt.reportId, tt.name)
		if (err == nil) != tt.valid {
			t.Errorf("validateKey(%q, %q) err = %v; valid want %v", tt.reportId, tt.name, err, tt.valid)
		}
	}
}

func TestNewArtifactStore(t *testing.T) {
	ctx := context.Background()

	s, closeFn, err := NewArtifactStore(ctx, config.ArtifactsConfig{Backend: "local", LocalDir: t.TempDir()})
	if err != nil {
		t.Fatalf("local backend: %v", err)
	}
	defer closeFn()
	if _, ok := s.(*LocalStore); !ok {
		t.Errorf("expected *LocalStore, got %T", s)
	}

	if _, _, err := NewArtifactStore(ctx, config.ArtifactsConfig{Backend: "s3"}); err == nil {
		t.Errorf("expected error for s3 without bucket")
	}
	if _, _, err := NewArtifactStore(ctx, config.ArtifactsConfig{Backend: "ftp"}); err == nil {
		t.Errorf("expected error for unknown backend")
	}

	s3Store, _, err := NewArtifactStore(ctx, config.ArtifactsConfig{Backend: "s3", S3: config.S3Config{
		Bucket: "ddr", Region: "us-east-1", Endpoint: "http://localhost:9000", AccessKey: "k", SecretKey: "s", Prefix: "reports",
	}})
	if err != nil {
		t.Fatalf("s3 backend: %v", err)
	}
	if got := s3Store.(*S3Store).key("r1", "DDR_Report.pdf"); got != "reports/r1/DDR_Report.pdf" {
		t.Errorf("s3 key = %q", got)
	}
}
