// Package extract pulls plain text out of uploaded background documents so
// the profile pipeline can work from a single string regardless of the
// original file format.
package extract

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fumiama/go-docx"
	pdflib "github.com/ledongthuc/pdf"
)

// ErrUnsupported indicates the file extension has no text extractor.
var ErrUnsupported = errors.New("extract: unsupported file type")

// Supported reports whether Text can handle the given filename.
func Supported(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".txt", ".md", ".pdf", ".docx":
		return true
	}
	return false
}

// Text extracts the plain text content of r, dispatching on the filename's
// extension.
func Text(r io.Reader, filename string) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".txt", ".md":
		b, err := io.ReadAll(r)
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", filename, err)
		}
		return string(b), nil
	case ".pdf":
		return pdfText(r)
	case ".docx":
		return docxText(r)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupported, filepath.Ext(filename))
	}
}

// pdfText extracts text from a PDF. The pdf library needs a ReadSeeker with a
// known size, so the stream is spooled to a temp file first.
func pdfText(r io.Reader) (string, error) {
	path, err := spool(r, "*.pdf")
	if err != nil {
		return "", err
	}
	defer os.Remove(path)

	f, reader, err := pdflib.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening pdf: %w", err)
	}
	defer f.Close()

	var buf strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if buf.Len() > 0 {
			buf.WriteString("\n")
		}
		buf.WriteString(text)
	}
	return buf.String(), nil
}

// docxText extracts the paragraph text of a .docx document.
func docxText(r io.Reader) (string, error) {
	path, err := spool(r, "*.docx")
	if err != nil {
		return "", err
	}
	defer os.Remove(path)

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening temp file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("stat temp file: %w", err)
	}

	doc, err := docx.Parse(f, info.Size())
	if err != nil {
		return "", fmt.Errorf("parsing docx: %w", err)
	}

	var buf strings.Builder
	for _, item := range doc.Document.Body.Items {
		para, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}
		text := paragraphText(para)
		if text == "" {
			continue
		}
		if buf.Len() > 0 {
			buf.WriteString("\n")
		}
		buf.WriteString(text)
	}
	return buf.String(), nil
}

func paragraphText(para *docx.Paragraph) string {
	var buf strings.Builder
	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			if t, ok := rc.(*docx.Text); ok {
				buf.WriteString(t.Text)
			}
		}
	}
	return strings.TrimSpace(buf.String())
}

// spool copies r to a temp file and returns its path. The caller removes it.
func spool(r io.Reader, pattern string) (string, error) {
	tmp, err := os.CreateTemp("", "uniapply-upload-"+pattern)
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("closing temp file: %w", err)
	}
	return tmp.Name(), nil
}
