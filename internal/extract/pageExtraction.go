package extract

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/akolanti/DDRGenerator/internal/metrics"
	"github.com/akolanti/DDRGenerator/pkg/logger_i"
	"github.com/dslipak/pdf"
	"github.com/lu4p/cat"
	"github.com/pdfcpu/pdfcpu/pkg/api"
)

type rawPage struct {
	Number  int    `json:"number"`
	Content string `json:"content"`
}

var disableConfigDir sync.Once

func (e *extractor) extractPDF(ctx context.Context, log *logger_i.Logger, path string) ([]rawPage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat pdf: %w", err)
	}

	reader, err := openReader(f, info.Size())
	if err != nil {
		log.Error("failed opening of pdf file", "error", err)
		return nil, fmt.Errorf("failed to open pdf: %w", err)
	}

	var pages []rawPage
	numPages := reader.NumPage()
	log.Debug("extractPDF", "number of pages", numPages)
	for i := 1; i <= numPages; i++ {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		page := reader.Page(i)
		if page.V.IsNull() {
			log.Debug("extractPDF", "null page", i)
			continue
		}

		content, err := protectExtract(page, e.pageTimeout)
		if err != nil {
			// a broken page is skipped, the rest of the document still counts
			log.Warn("Error parsing page content", "page", i, "error", err)
			metrics.IncrementPageFailures()
			continue
		}
		if !hasText(content) {
			continue
		}

		pages = append(pages, rawPage{
			Number:  i,
			Content: content,
		})
	}
	return pages, nil
}

// openReader guards against parser panics on malformed cross reference tables.
func openReader(f *os.File, size int64) (reader *pdf.Reader, err error) {
	defer func() {
		if r := recover(); r != nil {
			reader = nil
			err = fmt.Errorf("malformed pdf: %v", r)
		}
	}()
	return pdf.NewReader(f, size)
}

func protectExtract(page pdf.Page, timeout time.Duration) (string, error) {
	type result struct {
		content string
		err     error
	}
	resChan := make(chan result, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				resChan <- result{"", fmt.Errorf("page parser panic: %v", r)}
			}
		}()
		content, err := page.GetPlainText(nil)
		resChan <- result{content, err}
	}()
	select {
	case r := <-resChan:
		return r.content, r.err
	case <-time.After(timeout):
		return "", errors.New("timeout")
	}
}

func declaredPageCount(path string) (int, error) {
	disableConfigDir.Do(api.DisableConfigDir)
	return api.PageCountFile(path)
}

// extractDocxTxtRtf reads .odt, .docx, .rtf or plaintext files as a single page
func extractDocxTxtRtf(path string) ([]rawPage, error) {
	text, err := cat.File(path)
	if err != nil {
		return nil, fmt.Errorf("failed to extract document: %w", err)
	}
	return []rawPage{
		{
			Number:  1,
			Content: text,
		},
	}, nil
}

// hasText reports whether a page contributes to the document. The page text
// itself is kept as extracted.
func hasText(content string) bool {
	return strings.TrimSpace(content) != ""
}
