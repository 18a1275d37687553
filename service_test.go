package uniapply

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

// fakePrinter records printed HTML without launching a browser.
type fakePrinter struct {
	printed []string
	err     error
	closed  bool
}

func (f *fakePrinter) PrintHTML(ctx context.Context, htmlContent string) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.printed = append(f.printed, htmlContent)
	return []byte("%PDF-fake"), nil
}

func (f *fakePrinter) Close() error {
	f.closed = true
	return nil
}

func newTestService(t *testing.T, fake *fakePrinter) *Service {
	t.Helper()
	svc, err := New(WithTimeout(5 * time.Second))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	svc.printer = fake
	return svc
}

func TestService_ExportPDF(t *testing.T) {
	t.Parallel()

	fake := &fakePrinter{}
	svc := newTestService(t, fake)
	defer svc.Close()

	pdf, err := svc.ExportPDF(context.Background(), sampleSource())
	if err != nil {
		t.Fatalf("ExportPDF: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatal("empty PDF")
	}
	if len(fake.printed) != 1 || !strings.Contains(fake.printed[0], "<!DOCTYPE html>") {
		t.Errorf("printer received %d documents", len(fake.printed))
	}
}

func TestService_ExportPDF_EmptySource(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &fakePrinter{})
	defer svc.Close()

	if _, err := svc.ExportPDF(context.Background(), "   \n"); !errors.Is(err, ErrEmptySource) {
		t.Errorf("err = %v, want ErrEmptySource", err)
	}
}

// A failed print surfaces the browser error to the caller unchanged; the
// service never retries on its own.
func TestService_ExportPDF_PrinterFailure(t *testing.T) {
	t.Parallel()

	fake := &fakePrinter{err: ErrBrowserConnect}
	svc := newTestService(t, fake)
	defer svc.Close()

	_, err := svc.ExportPDF(context.Background(), sampleSource())
	if !errors.Is(err, ErrBrowserConnect) {
		t.Errorf("err = %v, want ErrBrowserConnect", err)
	}
	if len(fake.printed) != 0 {
		t.Errorf("printer should not have produced output")
	}
}

func TestService_Preview(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &fakePrinter{})
	defer svc.Close()

	got := svc.Preview(`\section{SKILLS}` + "\n" + `\resumeItem{Go}`)
	if !strings.Contains(got, "<h2>SKILLS</h2>") || !strings.Contains(got, "<li>Go</li>") {
		t.Errorf("preview = %s", got)
	}
}

func TestService_Close(t *testing.T) {
	t.Parallel()

	fake := &fakePrinter{}
	svc := newTestService(t, fake)
	if err := svc.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if !fake.closed {
		t.Error("printer not closed")
	}
}

func TestWithTimeout_PanicsOnNonPositive(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	WithTimeout(0)
}
