package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/uniapply/uniapply/internal/domain"
)

// SQLiteCollegeRepo implements CollegeRepo using SQLite. Recommendations are
// stored as an ordered list that is replaced wholesale on refresh.
type SQLiteCollegeRepo struct {
	db *sql.DB
}

func (r *SQLiteCollegeRepo) Replace(ctx context.Context, userID string, colleges []domain.College) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM colleges WHERE user_id = ?`, userID); err != nil {
		return fmt.Errorf("clearing colleges: %w", err)
	}

	insert := `INSERT INTO colleges (user_id, position, name, location, ranking, match_score, tags, requirements)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	for i, c := range colleges {
		tags, err := json.Marshal(c.Tags)
		if err != nil {
			return fmt.Errorf("encoding tags: %w", err)
		}
		if c.Tags == nil {
			tags = []byte("[]")
		}
		if _, err := tx.ExecContext(ctx, insert,
			userID, i, c.Name, c.Location, c.Ranking, c.MatchScore, string(tags), c.Requirements); err != nil {
			return fmt.Errorf("inserting college %q: %w", c.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing colleges: %w", err)
	}
	return nil
}

func (r *SQLiteCollegeRepo) ListByUser(ctx context.Context, userID string) ([]domain.College, error) {
	query := `SELECT name, location, ranking, match_score, tags, requirements
		FROM colleges WHERE user_id = ? ORDER BY position`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing colleges: %w", err)
	}
	defer rows.Close()

	var colleges []domain.College
	for rows.Next() {
		var c domain.College
		var tags string
		if err := rows.Scan(&c.Name, &c.Location, &c.Ranking, &c.MatchScore, &tags, &c.Requirements); err != nil {
			return nil, fmt.Errorf("scanning college: %w", err)
		}
		if err := json.Unmarshal([]byte(tags), &c.Tags); err != nil {
			return nil, fmt.Errorf("decoding tags: %w", err)
		}
		colleges = append(colleges, c)
	}
	return colleges, rows.Err()
}
