package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/uniapply/uniapply/internal/domain"
)

// SQLiteProfileRepo implements ProfileRepo using SQLite.
type SQLiteProfileRepo struct {
	db *sql.DB
}

// Get returns the stored profile, or an empty profile for the user when none
// has been saved yet (a missing profile is not an error for the intake flow).
func (r *SQLiteProfileRepo) Get(ctx context.Context, userID string) (*domain.Profile, error) {
	query := `SELECT user_id, name, gpa, major, target_major, experiences,
		application_type, special_requests, raw_text, questionnaire
		FROM profiles WHERE user_id = ?`
	row := r.db.QueryRowContext(ctx, query, userID)

	var p domain.Profile
	var experiences string
	err := row.Scan(
		&p.UserID,
		&p.Name,
		&p.GPA,
		&p.Major,
		&p.TargetMajor,
		&experiences,
		&p.ApplicationType,
		&p.SpecialRequests,
		&p.RawText,
		&p.Questionnaire,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return &domain.Profile{UserID: userID}, nil
		}
		return nil, fmt.Errorf("scanning profile: %w", err)
	}

	if err := json.Unmarshal([]byte(experiences), &p.Experiences); err != nil {
		return nil, fmt.Errorf("decoding experiences: %w", err)
	}
	return &p, nil
}

func (r *SQLiteProfileRepo) Upsert(ctx context.Context, p *domain.Profile) error {
	experiences, err := json.Marshal(p.Experiences)
	if err != nil {
		return fmt.Errorf("encoding experiences: %w", err)
	}
	if p.Experiences == nil {
		experiences = []byte("[]")
	}

	query := `INSERT OR REPLACE INTO profiles (user_id, name, gpa, major,
		target_major, experiences, application_type, special_requests,
		raw_text, questionnaire)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		p.UserID,
		p.Name,
		p.GPA,
		p.Major,
		p.TargetMajor,
		string(experiences),
		p.ApplicationType,
		p.SpecialRequests,
		p.RawText,
		p.Questionnaire,
	)
	if err != nil {
		return fmt.Errorf("upserting profile: %w", err)
	}
	return nil
}
