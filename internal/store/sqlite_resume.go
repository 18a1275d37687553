package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/uniapply/uniapply/internal/domain"
)

// SQLiteResumeRepo implements ResumeRepo using SQLite.
type SQLiteResumeRepo struct {
	db *sql.DB
}

func (r *SQLiteResumeRepo) Load(ctx context.Context, userID string) (*domain.Resume, error) {
	query := `SELECT user_id, title, latex, updated_at FROM resumes WHERE user_id = ?`
	row := r.db.QueryRowContext(ctx, query, userID)

	var res domain.Resume
	err := row.Scan(&res.UserID, &res.Title, &res.LaTeX, &res.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("resume for %q: %w", userID, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning resume: %w", err)
	}
	return &res, nil
}

func (r *SQLiteResumeRepo) Save(ctx context.Context, res *domain.Resume) error {
	if res.UpdatedAt.IsZero() {
		res.UpdatedAt = time.Now().UTC()
	}
	query := `INSERT OR REPLACE INTO resumes (user_id, title, latex, updated_at)
		VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, res.UserID, res.Title, res.LaTeX, res.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upserting resume: %w", err)
	}
	return nil
}
