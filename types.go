package uniapply

import "time"

// Document is the root of the parsed resume tree. It is rebuilt from scratch
// on every Parse call and owns its sections in document order.
type Document struct {
	Name     string
	Contact  string
	Sections []Section
}

// Section groups entries under a raw (uncleaned) title.
type Section struct {
	Title   string
	Entries []Entry
}

// Entry is one resume line-item: a job, degree, or activity. Text fields hold
// cleaned inline HTML (bold/italic converted, LaTeX control sequences removed).
// Right1 aligns opposite Heading, Right2 opposite Subheading.
type Entry struct {
	Heading    string
	Subheading string
	Right1     string
	Right2     string
	Bullets    []string
}

// Empty reports whether the document carries no content at all.
func (d *Document) Empty() bool {
	return d.Name == "" && d.Contact == "" && len(d.Sections) == 0
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	timeout     time.Duration
	settleDelay time.Duration
}

// Defaults for PDF generation.
const (
	defaultTimeout = 30 * time.Second

	// defaultSettleDelay gives the webfont and layout time to settle before
	// the page is handed to Chrome's print pipeline.
	defaultSettleDelay = 300 * time.Millisecond
)

// WithTimeout sets the PDF generation timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("uniapply: WithTimeout duration must be positive")
	}
	return func(s *Service) {
		s.cfg.timeout = d
	}
}

// WithSettleDelay sets the delay between page load and printing.
// Panics if d < 0.
func WithSettleDelay(d time.Duration) Option {
	if d < 0 {
		panic("uniapply: WithSettleDelay duration must not be negative")
	}
	return func(s *Service) {
		s.cfg.settleDelay = d
	}
}
