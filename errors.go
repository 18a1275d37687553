package uniapply

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptySource    = errors.New("resume source cannot be empty")
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
)
