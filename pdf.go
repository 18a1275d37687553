package uniapply

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// pdfPrinter abstracts HTML-to-PDF printing to allow a fake in tests.
type pdfPrinter interface {
	PrintHTML(ctx context.Context, htmlContent string) ([]byte, error)
	Close() error
}

// Compile-time interface check.
var _ pdfPrinter = (*rodPrinter)(nil)

// PDF page dimensions in inches (US Letter, matching the print stylesheet).
const (
	paperWidthInches  = 8.5
	paperHeightInches = 11
	marginInches      = 0.75
)

// rodPrinter prints HTML to PDF using headless Chrome via go-rod.
// Rod automatically downloads Chromium on first run if not found.
type rodPrinter struct {
	browser     *rod.Browser
	timeout     time.Duration
	settleDelay time.Duration
}

// newRodPrinter creates a rodPrinter with the given timeout and settle delay.
func newRodPrinter(timeout, settleDelay time.Duration) *rodPrinter {
	return &rodPrinter{timeout: timeout, settleDelay: settleDelay}
}

// ensureBrowser lazily launches and connects to the browser.
func (p *rodPrinter) ensureBrowser() error {
	if p.browser != nil {
		return nil
	}

	l := launcher.New()

	// Use pre-installed browser if specified (Docker/containerized environments)
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}

	// NoSandbox required for CI and containerized environments
	if os.Getenv("CI") == "true" || os.Getenv("ROD_BROWSER_BIN") != "" {
		l = l.NoSandbox(true)
	}

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	p.browser = rod.New().ControlURL(u)
	if err := p.browser.Connect(); err != nil {
		p.browser = nil
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	return nil
}

// Close releases browser resources.
func (p *rodPrinter) Close() error {
	if p.browser != nil {
		err := p.browser.Close()
		p.browser = nil
		return err
	}
	return nil
}

// PrintHTML loads the document in headless Chrome and prints it to PDF.
// The settle delay between page load and printing gives the webfont time to
// arrive, so the printed output matches the on-screen layout. A failure to
// create the page is terminal for this attempt; the caller decides whether
// to re-invoke.
func (p *rodPrinter) PrintHTML(ctx context.Context, htmlContent string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := p.ensureBrowser(); err != nil {
		return nil, err
	}

	tmpPath, cleanup, err := writeTempFile(htmlContent)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	page, err := p.browser.Page(proto.TargetCreateTarget{URL: "file://" + tmpPath})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer page.Close()

	timeout := p.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return nil, context.DeadlineExceeded
		}
	}

	if err := page.Timeout(timeout).WaitLoad(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	if p.settleDelay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(p.settleDelay):
		}
	}

	reader, err := page.PDF(&proto.PagePrintToPDF{
		PaperWidth:      floatPtr(paperWidthInches),
		PaperHeight:     floatPtr(paperHeightInches),
		MarginTop:       floatPtr(marginInches),
		MarginBottom:    floatPtr(marginInches),
		MarginLeft:      floatPtr(marginInches),
		MarginRight:     floatPtr(marginInches),
		PrintBackground: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}

	pdfBuf, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: reading PDF stream: %v", ErrPDFGeneration, err)
	}

	return pdfBuf, nil
}

// writeTempFile writes content to a temp .html file and returns its path and
// a cleanup func.
func writeTempFile(content string) (string, func(), error) {
	tmp, err := os.CreateTemp("", "uniapply-*.html")
	if err != nil {
		return "", nil, fmt.Errorf("creating temp file: %w", err)
	}
	path := tmp.Name()
	cleanup := func() { os.Remove(path) }

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		cleanup()
		return "", nil, fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("closing temp file: %w", err)
	}
	return path, cleanup, nil
}

// floatPtr returns a pointer to a float64 value.
func floatPtr(v float64) *float64 {
	return &v
}
