package uniapply

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/uniapply/uniapply/internal/assets"
)

// fontsHref is the webfont reference embedded in the exported document; the
// only external dependency the export carries.
const fontsHref = "https://fonts.googleapis.com/css2?family=EB+Garamond:wght@400;600;700&family=Inter:wght@400;600&display=swap"

var exportTmpl = template.Must(template.New("export").Funcs(template.FuncMap{
	"inline": inlineHTML,
}).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Name}} - Resume</title>
<link rel="preconnect" href="https://fonts.googleapis.com">
<link href="{{.FontsHref}}" rel="stylesheet">
<style>{{.CSS}}</style>
</head>
<body>
<header class="resume-header">
<h1>{{inline .Name}}</h1>
<p>{{inline .Contact}}</p>
</header>
{{- range .Sections}}
<section class="resume-section">
<h2>{{.Title}}</h2>
{{- range .Entries}}
<div class="resume-entry">
<div class="entry-row"><span class="entry-heading">{{inline .Heading}}</span><span class="entry-right">{{inline .Right1}}</span></div>
{{- if .Subheading}}
<div class="entry-row entry-sub"><span class="entry-subheading">{{inline .Subheading}}</span><span class="entry-right">{{inline .Right2}}</span></div>
{{- end}}
{{- if .Bullets}}
<ul class="entry-bullets">
{{- range .Bullets}}
<li>{{inline .}}</li>
{{- end}}
</ul>
{{- end}}
</div>
{{- end}}
</section>
{{- end}}
</body>
</html>
`))

// exportData is the template view for the standalone export document.
type exportData struct {
	Name      string
	Contact   string
	Sections  []Section
	CSS       template.CSS
	FontsHref template.URL
}

// ExportRenderer produces the standalone, print-ready HTML document for a
// parsed resume. The output is self-contained apart from a webfont link and
// deterministic: the same tree always renders byte-identical markup.
type ExportRenderer struct {
	css string
}

// NewExportRenderer creates an ExportRenderer with the embedded print
// stylesheet.
func NewExportRenderer() (*ExportRenderer, error) {
	css, err := assets.LoadStyle("print")
	if err != nil {
		return nil, fmt.Errorf("loading print style: %w", err)
	}
	return &ExportRenderer{css: css}, nil
}

// Render produces the complete export document for doc.
func (r *ExportRenderer) Render(doc *Document) string {
	data := exportData{
		Name:      doc.Name,
		Contact:   doc.Contact,
		Sections:  doc.Sections,
		CSS:       template.CSS(r.css),
		FontsHref: template.URL(fontsHref),
	}
	if data.Name == "" {
		data.Name = placeholderName
	}
	if data.Contact == "" {
		data.Contact = placeholderContact
	}

	var b strings.Builder
	_ = exportTmpl.Execute(&b, data)
	return b.String()
}
