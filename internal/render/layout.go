package render

import (
	"math"

	"github.com/akolanti/DDRGenerator/internal/config"
)

// Geometry is measured in PDF points with the origin at the bottom-left corner.
type Geometry struct {
	Width        float64
	Height       float64
	TopMargin    float64
	BottomMargin float64
	LeftOffset   float64
	LineHeight   float64
	MaxLineChars int
}

func GeometryFromConfig(cfg config.RenderConfig) Geometry {
	return Geometry{
		Width:        cfg.PageWidth,
		Height:       cfg.PageHeight,
		TopMargin:    cfg.TopMargin,
		BottomMargin: cfg.BottomMargin,
		LeftOffset:   cfg.LeftOffset,
		LineHeight:   cfg.LineHeight,
		MaxLineChars: cfg.MaxLineChars,
	}
}

// LinesPerPage is how many lines fit before the cursor drops below the bottom margin.
func (g Geometry) LinesPerPage() int {
	usable := g.Height - g.TopMargin - g.BottomMargin
	if usable < 0 || g.LineHeight <= 0 {
		return 1
	}
	return int(math.Floor(usable/g.LineHeight)) + 1
}

type Line struct {
	Text string
	X    float64
	Y    float64
}

type Page struct {
	Lines []Line
}

// PageLayoutEngine places text lines onto pages. It never wraps.
type PageLayoutEngine interface {
	Layout(lines []string) []Page
}

type lineLayout struct {
	geometry Geometry
}

func NewLineLayout(g Geometry) PageLayoutEngine {
	return &lineLayout{geometry: g}
}

// Layout always returns at least one page so an empty report still renders.
func (l *lineLayout) Layout(lines []string) []Page {
	g := l.geometry
	top := g.Height - g.TopMargin

	pages := []Page{{}}
	y := top
	for _, text := range lines {
		if y < g.BottomMargin {
			pages = append(pages, Page{})
			y = top
		}
		current := &pages[len(pages)-1]
		current.Lines = append(current.Lines, Line{
			Text: truncate(text, g.MaxLineChars),
			X:    g.LeftOffset,
			Y:    y,
		})
		y -= g.LineHeight
	}
	return pages
}

// truncate cuts by characters, not bytes, so multi-byte text is never split mid-rune.
func truncate(s string, max int) string {
	if max <= 0 {
		return s
	}
	count := 0
	for i := range s {
		if count == max {
			return s[:i]
		}
		count++
	}
	return s
}
