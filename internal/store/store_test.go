package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uniapply/uniapply/internal/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestResumeRepo_SaveOverwrites(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.Resumes.Load(ctx, "u1")
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Resumes.Save(ctx, &domain.Resume{
		UserID: "u1", Title: "My Resume", LaTeX: `\name{Jane}`,
	}))
	require.NoError(t, s.Resumes.Save(ctx, &domain.Resume{
		UserID: "u1", Title: "My Resume", LaTeX: `\name{Jane Doe}`,
	}))

	got, err := s.Resumes.Load(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, `\name{Jane Doe}`, got.LaTeX)
	assert.False(t, got.UpdatedAt.IsZero())

	// Other users are unaffected.
	_, err = s.Resumes.Load(ctx, "u2")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProfileRepo_RoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	// Missing profile is an empty profile, not an error.
	p, err := s.Profiles.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", p.UserID)
	assert.Empty(t, p.Name)

	want := &domain.Profile{
		UserID:          "u1",
		Name:            "Jane Doe",
		GPA:             "3.9",
		Major:           "CS",
		TargetMajor:     "CS",
		Experiences:     []string{"intern at Acme", "robotics club"},
		ApplicationType: "Undergraduate",
		RawText:         "free-form intake text",
	}
	require.NoError(t, s.Profiles.Upsert(ctx, want))

	got, err := s.Profiles.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestEssayRepo_SaveListGet(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first := &domain.Essay{
		ID:        uuid.NewString(),
		UserID:    "u1",
		Prompt:    "Why us?",
		Content:   "Because...",
		WordCount: 650,
		UpdatedAt: time.Now().UTC().Add(-time.Hour),
	}
	second := &domain.Essay{
		ID:        uuid.NewString(),
		UserID:    "u1",
		Prompt:    "Describe a challenge",
		Content:   "Once...",
		WordCount: 500,
		Score: &domain.EssayScore{
			Vocabulary: 80, Fluency: 85, Structure: 78,
			Critique: []string{"tighten the opening"},
		},
	}
	require.NoError(t, s.Essays.Save(ctx, first))
	require.NoError(t, s.Essays.Save(ctx, second))

	essays, err := s.Essays.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, essays, 2)
	// Most recently updated first.
	assert.Equal(t, second.ID, essays[0].ID)
	require.NotNil(t, essays[0].Score)
	assert.Equal(t, []string{"tighten the opening"}, essays[0].Score.Critique)
	assert.Nil(t, essays[1].Score)

	got, err := s.Essays.Get(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "Why us?", got.Prompt)

	_, err = s.Essays.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCollegeRepo_ReplaceKeepsOrder(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	initial := []domain.College{
		{Name: "State University", Location: "Springfield", Ranking: "#42", MatchScore: 88, Tags: []string{"safety"}},
		{Name: "Tech Institute", Location: "Metropolis", Ranking: "#7", MatchScore: 64, Tags: []string{"reach", "STEM"}},
	}
	require.NoError(t, s.Colleges.Replace(ctx, "u1", initial))

	got, err := s.Colleges.ListByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, initial, got)

	// Refresh replaces wholesale.
	refreshed := []domain.College{{Name: "Lake College", Tags: []string{"match"}}}
	require.NoError(t, s.Colleges.Replace(ctx, "u1", refreshed))

	got, err = s.Colleges.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Lake College", got[0].Name)
}

func TestChatRepo_AppendHistoryClear(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i, content := range []string{"hi", "hello!", "tell me about your GPA"} {
		role := "user"
		if i%2 == 1 {
			role = "ai"
		}
		require.NoError(t, s.Chat.Append(ctx, &domain.ChatMessage{
			ID:        uuid.NewString(),
			UserID:    "u1",
			Role:      role,
			Content:   content,
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}))
	}

	msgs, err := s.Chat.History(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, msgs, 3)
	assert.Equal(t, "hi", msgs[0].Content)
	assert.Equal(t, "ai", msgs[1].Role)

	require.NoError(t, s.Chat.Clear(ctx, "u1"))
	msgs, err = s.Chat.History(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, msgs)
}
