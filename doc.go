// Package uniapply implements the resume document core of the uniapply
// study-abroad application assistant: a parser for the constrained LaTeX
// subset used by the resume templates, renderers for a live HTML preview
// and a print-ready export, and PDF generation via headless Chrome.
//
// # Quick Start
//
// Parse source text and render a preview:
//
//	doc := uniapply.Parse(source)
//	fragment := uniapply.RenderPreview(doc)
//
// Generate a print-ready PDF:
//
//	svc, err := uniapply.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer svc.Close()
//
//	pdf, err := svc.ExportPDF(ctx, source)
//
// # Pipeline
//
//  1. Parse: line-oriented scan of the LaTeX source into a Document tree
//     (sections, entries, bullets). Tolerates malformed input; never panics.
//  2. Preview: pure HTML fragment for the live editor pane.
//  3. Export: standalone HTML document with inline print CSS.
//  4. PDF: the export HTML printed by headless Chrome (go-rod).
//
// Two template dialects are recognized: the macro-based dialect
// (\resumeSubheading, \resumeItem, \resumeItemWithTitle) and the older
// minimal dialect (\name, \contact, \textbf ... \hfill line pairs). Both may
// appear in the same document; rules are tried in a fixed order per line.
//
// # Browser Requirements
//
// PDF generation requires Chrome/Chromium. The go-rod library automatically
// downloads a managed Chromium instance on first run. For containers and CI,
// set ROD_NO_SANDBOX=1 or ROD_BROWSER_BIN to a pre-installed binary.
package uniapply
