package handlers

import (
	"bytes"
	"html/template"

	"github.com/akolanti/DDRGenerator/internal/domain/reportModel"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	htmlrenderer "github.com/yuin/goldmark/renderer/html"
)

// raw HTML in model output is dropped, goldmark is not configured WithUnsafe
var markdownEngine = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		extension.Typographer,
	),
	goldmark.WithRendererOptions(
		htmlrenderer.WithHardWraps(),
		htmlrenderer.WithXHTML(),
	),
)

var previewTemplate = template.Must(template.New("preview").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>DDR Report {{.Id}}</title>
<style>
body { font-family: system-ui, sans-serif; max-width: 860px; margin: 2rem auto; padding: 0 1rem; line-height: 1.5; }
.meta { display: flex; gap: 2rem; padding: .75rem 1rem; background: #f4f4f5; border-radius: 6px; }
</style>
</head>
<body>
<div class="meta">
<div><strong>Severity:</strong> {{.Severity}}</div>
<div><strong>Completeness:</strong> {{.Completeness}}</div>
</div>
<article>{{.Body}}</article>
</body>
</html>
`))

type previewData struct {
	Id           string
	Severity     string
	Completeness string
	Body         template.HTML
}

func renderPreview(rep reportModel.Report) ([]byte, error) {
	var body bytes.Buffer
	if err := markdownEngine.Convert([]byte(rep.Text), &body); err != nil {
		return nil, err
	}

	var page bytes.Buffer
	err := previewTemplate.Execute(&page, previewData{
		Id:           rep.Id,
		Severity:     rep.Severity.Display(),
		Completeness: rep.Completeness.Display(),
		Body:         template.HTML(body.String()),
	})
	return page.Bytes(), err
}
