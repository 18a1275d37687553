package autofill

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uniapply/uniapply/internal/domain"
)

func TestRun_FillsFormFromProfile(t *testing.T) {
	profile := &domain.Profile{
		Name:        "Jane Marie Doe",
		GPA:         "3.8",
		Major:       "Computer Science",
		Experiences: []string{"robotics club", "research internship"},
	}

	var events []Event
	sim := New(0)
	form, err := sim.Run(context.Background(), profile, "My personal statement.", func(e Event) {
		events = append(events, e)
	})
	require.NoError(t, err)

	assert.Equal(t, "Jane", form.FirstName)
	assert.Equal(t, "Marie Doe", form.LastName)
	assert.Equal(t, mockEmail, form.Email)
	assert.Equal(t, "3.8", form.GPA)
	assert.Equal(t, "Computer Science", form.Major)
	assert.Equal(t, "robotics club\nresearch internship", form.Activities)
	assert.Equal(t, "My personal statement.", form.Essay)

	require.Len(t, events, 7)
	assert.Equal(t, "Checking Knowledge Base for verified data...", events[0].Message)
	assert.Equal(t, "Found User Profile: Jane Marie Doe", events[1].Message)
	assert.Equal(t, 100, events[len(events)-1].Progress)

	// Progress never decreases.
	last := 0
	for _, e := range events {
		assert.GreaterOrEqual(t, e.Progress, last)
		last = e.Progress
	}
}

func TestRun_EmptyProfileUsesPlaceholders(t *testing.T) {
	sim := New(0)
	form, err := sim.Run(context.Background(), &domain.Profile{}, "", nil)
	require.NoError(t, err)

	assert.Empty(t, form.FirstName)
	assert.Equal(t, mockEducation, form.Education)
	assert.Equal(t, defaultEssay, form.Essay)
	assert.Empty(t, form.Activities)
}

func TestRun_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sim := New(50 * time.Millisecond)
	_, err := sim.Run(ctx, &domain.Profile{Name: "Jane"}, "", nil)
	assert.ErrorIs(t, err, context.Canceled)
}
