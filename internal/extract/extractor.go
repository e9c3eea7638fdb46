package extract

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/akolanti/DDRGenerator/internal/config"
	"github.com/akolanti/DDRGenerator/internal/domain/reportModel"
	"github.com/akolanti/DDRGenerator/internal/metrics"
	"github.com/akolanti/DDRGenerator/pkg/logger_i"
)

// Extractor turns an uploaded document into plain text.
// An empty string is a valid result and means "no usable text".
type Extractor interface {
	Extract(ctx context.Context, source string, doc reportModel.SourceDocument) (string, error)
}

type extractor struct {
	tempDir     string
	pageTimeout time.Duration
	logger      *logger_i.Logger
}

func NewExtractor(cfg config.ExtractConfig) Extractor {
	timeout := cfg.PageTimeout
	if timeout <= 0 {
		timeout = config.PageExtractionTimeout
	}
	return &extractor{
		tempDir:     cfg.TempDir,
		pageTimeout: timeout,
		logger:      logger_i.NewLogger("Extractor"),
	}
}

func (e *extractor) Extract(ctx context.Context, source string, doc reportModel.SourceDocument) (string, error) {
	log := e.logger.WithTrace(ctx).With("source", source, "file", doc.Name)

	docType := getDocType(doc.Name, doc.Data)
	log.Debug("Extracting document", "type", docType, "bytes", len(doc.Data))
	if docType == reportModel.ERR {
		return "", &reportModel.ExtractionError{Source: source, Err: fmt.Errorf("unsupported file type %q", filepath.Ext(doc.Name))}
	}

	// parsing needs a file on disk, the directory goes away on every path
	workDir, err := os.MkdirTemp(e.tempDir, "ddr-extract-*")
	if err != nil {
		return "", &reportModel.ExtractionError{Source: source, Err: fmt.Errorf("create temp dir: %w", err)}
	}
	defer func() {
		if err := os.RemoveAll(workDir); err != nil {
			log.Error("Failed to remove temp dir", "path", workDir, "error", err)
		}
	}()

	path := filepath.Join(workDir, "source"+extensionFor(docType, doc.Name))
	if err := os.WriteFile(path, doc.Data, 0o600); err != nil {
		return "", &reportModel.ExtractionError{Source: source, Err: fmt.Errorf("write temp file: %w", err)}
	}

	var pages []rawPage
	switch docType {
	case reportModel.PDF:
		e.preflight(log, path)
		pages, err = e.extractPDF(ctx, log, path)
	default:
		pages, err = extractDocxTxtRtf(path)
	}
	if err != nil {
		return "", &reportModel.ExtractionError{Source: source, Err: err}
	}

	text := joinPages(pages)
	log.Debug("Extraction finished", "pages with text", len(pages), "chars", len(text))
	return text, nil
}

func (e *extractor) preflight(log *logger_i.Logger, path string) {
	count, err := declaredPageCount(path)
	if err != nil {
		log.Warn("PDF preflight failed, continuing with text extraction", "error", err)
		return
	}
	metrics.ObserveSourcePages(count)
	log.Debug("PDF preflight", "declared pages", count)
}

// joinPages keeps each page's text followed by a newline, then trims the whole result.
func joinPages(pages []rawPage) string {
	var sb strings.Builder
	for _, p := range pages {
		if p.Content == "" {
			continue
		}
		sb.WriteString(p.Content)
		sb.WriteString("\n")
	}
	return strings.TrimSpace(sb.String())
}

func getDocType(name string, data []byte) reportModel.DocType {
	if bytes.HasPrefix(bytes.TrimLeft(data, "\x00\t\r\n "), []byte("%PDF-")) {
		return reportModel.PDF
	}
	ext := strings.ToLower(filepath.Ext(name))
	switch ext {
	case ".pdf":
		return reportModel.PDF
	case ".docx", ".odt", ".rtf":
		return reportModel.DOCX
	case ".txt":
		return reportModel.TXT
	default:
		return reportModel.ERR
	}
}

func extensionFor(docType reportModel.DocType, name string) string {
	if docType == reportModel.PDF {
		return ".pdf"
	}
	return strings.ToLower(filepath.Ext(name))
}
