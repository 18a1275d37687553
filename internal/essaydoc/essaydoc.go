// Package essaydoc renders essay drafts and questionnaires, which the
// assistant produces as Markdown, into standalone HTML documents suitable
// for printing.
package essaydoc

import (
	"bytes"
	"fmt"
	"html"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	ghtml "github.com/yuin/goldmark/renderer/html"
)

// documentTemplate wraps goldmark's fragment output in a complete HTML5
// document with print-friendly typography.
const documentTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
body {
  font-family: Georgia, "Times New Roman", serif;
  font-size: 12pt;
  line-height: 1.6;
  max-width: 42em;
  margin: 0 auto;
  padding: 2em;
  color: #1a1a1a;
}
h1 { font-size: 1.5em; }
h2 { font-size: 1.2em; }
blockquote { border-left: 3px solid #ccc; margin-left: 0; padding-left: 1em; color: #555; }
@page { size: letter; margin: 1in; }
</style>
</head>
<body>
%s
</body>
</html>`

// Renderer converts Markdown essay content to printable HTML.
type Renderer struct {
	md goldmark.Markdown
}

func NewRenderer() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(
				ghtml.WithHardWraps(),
				ghtml.WithXHTML(),
			),
		),
	}
}

// Render converts content to a standalone HTML document titled title.
func (r *Renderer) Render(title, content string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(content), &buf); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}
	if title == "" {
		title = "Essay"
	}
	return fmt.Sprintf(documentTemplate, html.EscapeString(title), buf.String()), nil
}
