// Package autofill simulates one-click population of a university
// application form from the stored user profile. The simulation walks a
// fixed sequence of form sections, emitting a progress event per step.
package autofill

import (
	"context"
	"strings"
	"time"

	"github.com/uniapply/uniapply/internal/domain"
)

// Form holds the application fields the simulation fills in.
type Form struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	Education  string `json:"education"`
	GPA        string `json:"gpa"`
	Major      string `json:"major"`
	Activities string `json:"activities"`
	Essay      string `json:"essay"`
}

// Event reports progress while the form is being filled.
type Event struct {
	Message  string    `json:"message"`
	Progress int       `json:"progress"`
	At       time.Time `json:"at"`
}

// Placeholder values used when the profile has no verified data for a field.
const (
	mockEmail     = "user@example.com"
	mockPhone     = "+1 (555) 0123-4567"
	mockEducation = "University of Technology"
	defaultEssay  = "Driven by a passion for technology and innovation, I have always sought to understand the mechanisms that shape our world..."
)

// Simulator runs the auto-fill sequence with a configurable per-step delay.
// A zero delay runs the sequence instantly, which tests rely on.
type Simulator struct {
	stepDelay time.Duration
}

func New(stepDelay time.Duration) *Simulator {
	return &Simulator{stepDelay: stepDelay}
}

// Run fills a Form from the profile, invoking emit after each step. The
// essay argument carries the user's latest personal statement; when empty a
// stock draft is inserted. Run returns early if ctx is cancelled.
func (s *Simulator) Run(ctx context.Context, p *domain.Profile, essay string, emit func(Event)) (*Form, error) {
	form := &Form{}
	progress := 0

	step := func(message string, pct int, fill func()) error {
		if err := s.sleep(ctx); err != nil {
			return err
		}
		if fill != nil {
			fill()
		}
		progress = pct
		if emit != nil {
			emit(Event{Message: message, Progress: progress, At: time.Now()})
		}
		return nil
	}

	if err := step("Checking Knowledge Base for verified data...", 0, nil); err != nil {
		return nil, err
	}

	name := p.Name
	if name == "" {
		name = "Unknown"
	}
	if err := step("Found User Profile: "+name, 10, nil); err != nil {
		return nil, err
	}

	if err := step("Populating Personal Information...", 30, func() {
		first, last, _ := strings.Cut(p.Name, " ")
		form.FirstName = first
		form.LastName = last
		form.Email = mockEmail
		form.Phone = mockPhone
	}); err != nil {
		return nil, err
	}

	if err := step("Syncing Academic Records...", 60, func() {
		form.Education = mockEducation
		form.GPA = p.GPA
		form.Major = p.Major
	}); err != nil {
		return nil, err
	}

	if err := step("Formatting Extracurricular Activities...", 80, func() {
		form.Activities = strings.Join(p.Experiences, "\n")
	}); err != nil {
		return nil, err
	}

	if err := step("Inserting Personal Statement (Draft v3)...", 100, func() {
		if essay != "" {
			form.Essay = essay
		} else {
			form.Essay = defaultEssay
		}
	}); err != nil {
		return nil, err
	}

	if err := step("Validation Complete. Ready for submission.", 100, nil); err != nil {
		return nil, err
	}
	return form, nil
}

func (s *Simulator) sleep(ctx context.Context) error {
	if s.stepDelay <= 0 {
		return ctx.Err()
	}
	select {
	case <-time.After(s.stepDelay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
