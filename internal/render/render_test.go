package render

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/akolanti/DDRGenerator/internal/config"
	"github.com/akolanti/DDRGenerator/internal/domain/reportModel"
	"github.com/dslipak/pdf"
)

type MockBackend struct {
	OnRender func(pages []Page, g Geometry, w io.Writer) error
}

func (m *MockBackend) Render(pages []Page, g Geometry, w io.Writer) error {
	if m.OnRender != nil {
		return m.OnRender(pages, g, w)
	}
	return nil
}

func defaultGeometry() Geometry {
	return GeometryFromConfig(config.Default().Render)
}

func numberedLines(n int) []string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %d", i+1)
	}
	return lines
}

func TestLinesPerPage_Default(t *testing.T) {
	if got := defaultGeometry().LinesPerPage(); got != 48 {
		t.Errorf("LinesPerPage() = %d; want 48", got)
	}
}

func TestLayout_PageCount(t *testing.T) {
	g := defaultGeometry()
	k := g.LinesPerPage()
	engine := NewLineLayout(g)

	tests := []struct {
		lines int
		pages int
	}{
		{1, 1},
		{k - 1, 1},
		{k, 1},
		{k + 1, 2},
		{2 * k, 2},
		{2*k + 1, 3},
		{200, 5},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d lines", tt.lines), func(t *testing.T) {
			pages := engine.Layout(numberedLines(tt.lines))
			if len(pages) != tt.pages {
				t.Errorf("got %d pages, want %d", len(pages), tt.pages)
			}
		})
	}
}

func TestLayout_OrderAndPositions(t *testing.T) {
	g := defaultGeometry()
	k := g.LinesPerPage()
	pages := NewLineLayout(g).Layout(numberedLines(k + 3))

	var all []Line
	for _, p := range pages {
		all = append(all, p.Lines...)
	}
	for i, l := range all {
		if l.Text != fmt.Sprintf("line %d", i+1) {
			t.Fatalf("line %d out of order: %q", i, l.Text)
		}
		if l.X != g.LeftOffset {
			t.Errorf("line %d x = %v; want %v", i, l.X, g.LeftOffset)
		}
	}

	if first := pages[0].Lines[0].Y; first != g.Height-g.TopMargin {
		t.Errorf("first line y = %v; want %v", first, g.Height-g.TopMargin)
	}
	if second := pages[0].Lines[1].Y; second != g.Height-g.TopMargin-g.LineHeight {
		t.Errorf("second line y = %v", second)
	}
	if restart := pages[1].Lines[0].Y; restart != g.Height-g.TopMargin {
		t.Errorf("new page must reset the cursor, got y = %v", restart)
	}
	for _, l := range pages[0].Lines {
		if l.Y < g.BottomMargin {
			t.Errorf("line placed below bottom margin at y = %v", l.Y)
		}
	}
}

func TestLayout_Truncation(t *testing.T) {
	g := defaultGeometry()
	engine := NewLineLayout(g)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"exactly max", strings.Repeat("a", 90), strings.Repeat("a", 90)},
		{"one over", strings.Repeat("a", 91), strings.Repeat("a", 90)},
		{"short", "short", "short"},
		{"multibyte", strings.Repeat("é", 95), strings.Repeat("é", 90)},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pages := engine.Layout([]string{tt.in})
			if got := pages[0].Lines[0].Text; got != tt.want {
				t.Errorf("got %d chars, want %d", len([]rune(got)), len([]rune(tt.want)))
			}
		})
	}
}

func TestWrite_ProducesReadablePDF(t *testing.T) {
	w := NewDocumentWriter(config.Default().Render)
	text := strings.Join(numberedLines(100), "\n")

	doc, err := w.Write(text)
	if err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	if doc.PageCount != 3 {
		t.Errorf("PageCount = %d; want 3", doc.PageCount)
	}
	if !bytes.HasPrefix(doc.Data, []byte("%PDF-")) {
		t.Fatalf("output is not a pdf")
	}

	reader, err := pdf.NewReader(bytes.NewReader(doc.Data), int64(len(doc.Data)))
	if err != nil {
		t.Fatalf("generated pdf does not parse: %v", err)
	}
	if reader.NumPage() != 3 {
		t.Errorf("NumPage() = %d; want 3", reader.NumPage())
	}
}

func TestWrite_NonLatinText(t *testing.T) {
	w := NewDocumentWriter(config.Default().Render)

	doc, err := w.Write("Severity: HIGH 🔴\nCafé wall – damp")
	if err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	if doc.PageCount != 1 {
		t.Errorf("PageCount = %d; want 1", doc.PageCount)
	}
}

func TestWrite_BackendFailure(t *testing.T) {
	backend := &MockBackend{
		OnRender: func(pages []Page, g Geometry, w io.Writer) error {
			return errors.New("disk full")
		},
	}
	g := defaultGeometry()
	w := NewDocumentWriterWith(g, NewLineLayout(g), backend)

	_, err := w.Write("report")

	var renderErr *reportModel.RenderError
	if !errors.As(err, &renderErr) {
		t.Fatalf("expected RenderError, got %v", err)
	}
	if !strings.Contains(err.Error(), "disk full") {
		t.Errorf("cause lost: %v", err)
	}
}

func TestWrite_PassesGeometryToBackend(t *testing.T) {
	g := defaultGeometry()
	var gotPages int
	backend := &MockBackend{
		OnRender: func(pages []Page, got Geometry, w io.Writer) error {
			gotPages = len(pages)
			if got != g {
				t.Errorf("backend geometry = %+v; want %+v", got, g)
			}
			return nil
		},
	}

	doc, err := NewDocumentWriterWith(g, NewLineLayout(g), backend).Write("a\nb\nc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPages != 1 || doc.PageCount != 1 {
		t.Errorf("pages = %d, PageCount = %d; want 1", gotPages, doc.PageCount)
	}
}
