package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/uniapply/uniapply/internal/domain"
)

// SQLiteEssayRepo implements EssayRepo using SQLite.
type SQLiteEssayRepo struct {
	db *sql.DB
}

func (r *SQLiteEssayRepo) Save(ctx context.Context, e *domain.Essay) error {
	if e.UpdatedAt.IsZero() {
		e.UpdatedAt = time.Now().UTC()
	}

	var scoreJSON sql.NullString
	if e.Score != nil {
		b, err := json.Marshal(e.Score)
		if err != nil {
			return fmt.Errorf("encoding score: %w", err)
		}
		scoreJSON = sql.NullString{String: string(b), Valid: true}
	}

	query := `INSERT OR REPLACE INTO essays (id, user_id, prompt, content, word_count, score_json, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID, e.UserID, e.Prompt, e.Content, e.WordCount, scoreJSON, e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upserting essay: %w", err)
	}
	return nil
}

func (r *SQLiteEssayRepo) Get(ctx context.Context, id string) (*domain.Essay, error) {
	query := `SELECT id, user_id, prompt, content, word_count, score_json, updated_at
		FROM essays WHERE id = ?`
	e, err := scanEssay(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("essay %q: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return e, nil
}

// ListByUser returns the user's essays, most recently updated first.
func (r *SQLiteEssayRepo) ListByUser(ctx context.Context, userID string) ([]*domain.Essay, error) {
	query := `SELECT id, user_id, prompt, content, word_count, score_json, updated_at
		FROM essays WHERE user_id = ? ORDER BY updated_at DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing essays: %w", err)
	}
	defer rows.Close()

	var essays []*domain.Essay
	for rows.Next() {
		e, err := scanEssay(rows)
		if err != nil {
			return nil, err
		}
		essays = append(essays, e)
	}
	return essays, rows.Err()
}

// rowScanner abstracts *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanEssay(row rowScanner) (*domain.Essay, error) {
	var e domain.Essay
	var scoreJSON sql.NullString
	err := row.Scan(&e.ID, &e.UserID, &e.Prompt, &e.Content, &e.WordCount, &scoreJSON, &e.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning essay: %w", err)
	}
	if scoreJSON.Valid {
		var score domain.EssayScore
		if err := json.Unmarshal([]byte(scoreJSON.String), &score); err != nil {
			return nil, fmt.Errorf("decoding score: %w", err)
		}
		e.Score = &score
	}
	return &e, nil
}
