package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/uniapply/uniapply/internal/domain"
)

// SQLiteChatRepo implements ChatRepo using SQLite.
type SQLiteChatRepo struct {
	db *sql.DB
}

func (r *SQLiteChatRepo) Append(ctx context.Context, m *domain.ChatMessage) error {
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	query := `INSERT INTO chat_messages (id, user_id, role, content, created_at)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, m.ID, m.UserID, m.Role, m.Content, m.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting chat message: %w", err)
	}
	return nil
}

// History returns the user's messages in chronological order.
func (r *SQLiteChatRepo) History(ctx context.Context, userID string) ([]domain.ChatMessage, error) {
	query := `SELECT id, user_id, role, content, created_at
		FROM chat_messages WHERE user_id = ? ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing chat messages: %w", err)
	}
	defer rows.Close()

	var msgs []domain.ChatMessage
	for rows.Next() {
		var m domain.ChatMessage
		if err := rows.Scan(&m.ID, &m.UserID, &m.Role, &m.Content, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning chat message: %w", err)
		}
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}

func (r *SQLiteChatRepo) Clear(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM chat_messages WHERE user_id = ?`, userID)
	if err != nil {
		return fmt.Errorf("clearing chat history: %w", err)
	}
	return nil
}
