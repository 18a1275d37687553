package uniapply

import (
	"context"
	"fmt"
	"strings"
)

// Service orchestrates the resume pipeline: parse, preview, export, PDF.
// Create with New, use the render methods, and Close when done.
type Service struct {
	cfg      serviceConfig
	exporter *ExportRenderer
	printer  pdfPrinter
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithTimeout).
func New(opts ...Option) (*Service, error) {
	s := &Service{
		cfg: serviceConfig{
			timeout:     defaultTimeout,
			settleDelay: defaultSettleDelay,
		},
	}

	for _, opt := range opts {
		opt(s)
	}

	exporter, err := NewExportRenderer()
	if err != nil {
		return nil, fmt.Errorf("initializing export renderer: %w", err)
	}
	s.exporter = exporter

	// Create printer if not injected (e.g., by tests). The browser itself
	// launches lazily on first print, so preview-only use never needs Chrome.
	if s.printer == nil {
		s.printer = newRodPrinter(s.cfg.timeout, s.cfg.settleDelay)
	}

	return s, nil
}

// Preview parses source and renders the live-preview HTML fragment.
func (s *Service) Preview(source string) string {
	return RenderPreview(Parse(source))
}

// ExportHTML parses source and renders the standalone print-ready document.
func (s *Service) ExportHTML(source string) (string, error) {
	if strings.TrimSpace(source) == "" {
		return "", ErrEmptySource
	}
	return s.exporter.Render(Parse(source)), nil
}

// ExportPDF parses source, renders the export document, and prints it to PDF
// via headless Chrome. The context bounds the whole operation; a browser or
// page failure is returned as-is and never retried here.
func (s *Service) ExportPDF(ctx context.Context, source string) ([]byte, error) {
	htmlContent, err := s.ExportHTML(source)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.timeout)
	defer cancel()

	pdf, err := s.printer.PrintHTML(ctx, htmlContent)
	if err != nil {
		return nil, fmt.Errorf("printing resume: %w", err)
	}
	return pdf, nil
}

// PrintHTML prints an arbitrary standalone HTML document to PDF using the
// service's browser. Used by the essay export path, which builds its own
// markup from rendered markdown.
func (s *Service) PrintHTML(ctx context.Context, htmlContent string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.timeout)
	defer cancel()
	return s.printer.PrintHTML(ctx, htmlContent)
}

// Close releases resources (the headless Chrome browser).
func (s *Service) Close() error {
	if s.printer != nil {
		return s.printer.Close()
	}
	return nil
}
