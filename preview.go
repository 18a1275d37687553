package uniapply

import (
	"html"
	"html/template"
	"strings"
)

// Placeholder text shown when the document has no header content yet.
const (
	placeholderName    = "YOUR NAME"
	placeholderContact = "email@example.com | Phone | Location"
)

// inlineHTML escapes a field value for HTML output while letting the <b> and
// <i> tags produced by the cleaner through as formatting. Everything else in
// user content stays escaped, and already-converted tags are never encoded a
// second time.
func inlineHTML(s string) template.HTML {
	esc := html.EscapeString(s)
	for _, tag := range []string{"b", "i"} {
		esc = strings.ReplaceAll(esc, "&lt;"+tag+"&gt;", "<"+tag+">")
		esc = strings.ReplaceAll(esc, "&lt;/"+tag+"&gt;", "</"+tag+">")
	}
	return template.HTML(esc)
}

var previewTmpl = template.Must(template.New("preview").Funcs(template.FuncMap{
	"inline": inlineHTML,
}).Parse(`<div class="resume-preview">
<header class="resume-header">
<h1>{{inline .Name}}</h1>
<p>{{inline .Contact}}</p>
</header>
{{- if .Sections}}
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
{{- else}}
<p class="resume-placeholder">Start editing to build your resume preview.</p>
{{- end}}
</div>
`))

// previewData is the template view of a Document with header fallbacks applied.
type previewData struct {
	Name     string
	Contact  string
	Sections []Section
}

// RenderPreview maps a parsed Document to the HTML fragment backing the live
// editor preview. Pure and synchronous: the same tree always yields the same
// fragment. Empty name/contact fall back to placeholder text, and a document
// with no sections renders a single placeholder message.
func RenderPreview(doc *Document) string {
	data := previewData{
		Name:     doc.Name,
		Contact:  doc.Contact,
		Sections: doc.Sections,
	}
	if data.Name == "" {
		data.Name = placeholderName
	}
	if data.Contact == "" {
		data.Contact = placeholderContact
	}

	var b strings.Builder
	// The template is static and the data is plain values; execution cannot
	// fail once the template parses.
	_ = previewTmpl.Execute(&b, data)
	return b.String()
}
