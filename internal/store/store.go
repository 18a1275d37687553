// Package store persists application data in SQLite.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// schema is applied on every open; all statements are idempotent.
const schema = `
CREATE TABLE IF NOT EXISTS resumes (
	user_id    TEXT PRIMARY KEY,
	title      TEXT NOT NULL,
	latex      TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS profiles (
	user_id          TEXT PRIMARY KEY,
	name             TEXT NOT NULL DEFAULT '',
	gpa              TEXT NOT NULL DEFAULT '',
	major            TEXT NOT NULL DEFAULT '',
	target_major     TEXT NOT NULL DEFAULT '',
	experiences      TEXT NOT NULL DEFAULT '[]',
	application_type TEXT NOT NULL DEFAULT '',
	special_requests TEXT NOT NULL DEFAULT '',
	raw_text         TEXT NOT NULL DEFAULT '',
	questionnaire    TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS essays (
	id         TEXT PRIMARY KEY,
	user_id    TEXT NOT NULL,
	prompt     TEXT NOT NULL,
	content    TEXT NOT NULL,
	word_count INTEGER NOT NULL DEFAULT 0,
	score_json TEXT,
	updated_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_essays_user ON essays(user_id, updated_at);

CREATE TABLE IF NOT EXISTS colleges (
	user_id      TEXT NOT NULL,
	position     INTEGER NOT NULL,
	name         TEXT NOT NULL,
	location     TEXT NOT NULL DEFAULT '',
	ranking      TEXT NOT NULL DEFAULT '',
	match_score  INTEGER NOT NULL DEFAULT 0,
	tags         TEXT NOT NULL DEFAULT '[]',
	requirements TEXT NOT NULL DEFAULT '',
	PRIMARY KEY (user_id, position)
);

CREATE TABLE IF NOT EXISTS chat_messages (
	id         TEXT PRIMARY KEY,
	user_id    TEXT NOT NULL,
	role       TEXT NOT NULL,
	content    TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_chat_user ON chat_messages(user_id, created_at);
`

// Store bundles the repositories over a shared SQLite database.
type Store struct {
	DB       *sql.DB
	Resumes  *SQLiteResumeRepo
	Profiles *SQLiteProfileRepo
	Essays   *SQLiteEssayRepo
	Colleges *SQLiteCollegeRepo
	Chat     *SQLiteChatRepo
}

// Open opens (creating if needed) the SQLite database at path and applies the
// schema. Use ":memory:" for an in-memory database in tests.
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// WAL improves concurrent read behavior under the HTTP server.
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("applying schema: %w", err)
	}

	return &Store{
		DB:       db,
		Resumes:  &SQLiteResumeRepo{db: db},
		Profiles: &SQLiteProfileRepo{db: db},
		Essays:   &SQLiteEssayRepo{db: db},
		Colleges: &SQLiteCollegeRepo{db: db},
		Chat:     &SQLiteChatRepo{db: db},
	}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.DB.Close()
}
