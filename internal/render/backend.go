package render

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
)

// Backend serializes laid out pages. Coordinates in Page are bottom-left based.
type Backend interface {
	Render(pages []Page, g Geometry, w io.Writer) error
}

type fpdfBackend struct {
	fontFamily string
	fontSize   float64
}

func NewFpdfBackend(fontFamily string, fontSize float64) Backend {
	if fontFamily == "" {
		fontFamily = "Helvetica"
	}
	if fontSize <= 0 {
		fontSize = 12
	}
	return &fpdfBackend{fontFamily: fontFamily, fontSize: fontSize}
}

func (b *fpdfBackend) Render(pages []Page, g Geometry, w io.Writer) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf backend panic: %v", r)
		}
	}()

	doc := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: g.Width, Ht: g.Height},
	})
	doc.SetAutoPageBreak(false, 0)
	doc.SetMargins(0, 0, 0)
	doc.SetFont(b.fontFamily, "", b.fontSize)
	// core fonts are cp1252, anything outside it is replaced
	tr := doc.UnicodeTranslatorFromDescriptor("")

	for _, page := range pages {
		doc.AddPage()
		for _, line := range page.Lines {
			if line.Text == "" {
				continue
			}
			doc.Text(line.X, g.Height-line.Y, tr(line.Text))
		}
	}
	if doc.Err() {
		return fmt.Errorf("build pdf: %w", doc.Error())
	}
	return doc.Output(w)
}
