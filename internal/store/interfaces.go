package store

import (
	"context"

	"github.com/uniapply/uniapply/internal/domain"
)

// ResumeRepo is the resume text load/save collaborator: one document per
// user, saves overwrite, no versioning.
type ResumeRepo interface {
	Load(ctx context.Context, userID string) (*domain.Resume, error)
	Save(ctx context.Context, r *domain.Resume) error
}

type ProfileRepo interface {
	Get(ctx context.Context, userID string) (*domain.Profile, error)
	Upsert(ctx context.Context, p *domain.Profile) error
}

type EssayRepo interface {
	Save(ctx context.Context, e *domain.Essay) error
	Get(ctx context.Context, id string) (*domain.Essay, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Essay, error)
}

type CollegeRepo interface {
	Replace(ctx context.Context, userID string, colleges []domain.College) error
	ListByUser(ctx context.Context, userID string) ([]domain.College, error)
}

type ChatRepo interface {
	Append(ctx context.Context, m *domain.ChatMessage) error
	History(ctx context.Context, userID string) ([]domain.ChatMessage, error)
	Clear(ctx context.Context, userID string) error
}

// Compile-time interface implementation checks.
var (
	_ ResumeRepo  = (*SQLiteResumeRepo)(nil)
	_ ProfileRepo = (*SQLiteProfileRepo)(nil)
	_ EssayRepo   = (*SQLiteEssayRepo)(nil)
	_ CollegeRepo = (*SQLiteCollegeRepo)(nil)
	_ ChatRepo    = (*SQLiteChatRepo)(nil)
)
