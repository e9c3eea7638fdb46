package render

import (
	"bytes"
	"strings"

	"github.com/akolanti/DDRGenerator/internal/config"
	"github.com/akolanti/DDRGenerator/internal/domain/reportModel"
)

type RenderedDocument struct {
	Data      []byte
	PageCount int
}

// DocumentWriter turns report text into a paginated PDF.
type DocumentWriter interface {
	Write(text string) (RenderedDocument, error)
}

type documentWriter struct {
	geometry Geometry
	layout   PageLayoutEngine
	backend  Backend
}

func NewDocumentWriter(cfg config.RenderConfig) DocumentWriter {
	g := GeometryFromConfig(cfg)
	return NewDocumentWriterWith(g, NewLineLayout(g), NewFpdfBackend(cfg.FontFamily, cfg.FontSize))
}

func NewDocumentWriterWith(g Geometry, layout PageLayoutEngine, backend Backend) DocumentWriter {
	return &documentWriter{geometry: g, layout: layout, backend: backend}
}

func (d *documentWriter) Write(text string) (RenderedDocument, error) {
	pages := d.layout.Layout(strings.Split(text, "\n"))

	var buf bytes.Buffer
	if err := d.backend.Render(pages, d.geometry, &buf); err != nil {
		return RenderedDocument{}, &reportModel.RenderError{Err: err}
	}
	return RenderedDocument{Data: buf.Bytes(), PageCount: len(pages)}, nil
}
