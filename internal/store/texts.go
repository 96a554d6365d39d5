package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/typerush/typerush/internal/content"
)

// StoredText is a custom practice text with its record metadata.
type StoredText struct {
	ID        string
	Title     string
	Content   string
	CreatedAt time.Time
}

// AddCustomText stores one custom text and returns its ID.
func (s *Store) AddCustomText(ctx context.Context, t content.CustomText) (string, error) {
	id := uuid.NewString()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO custom_texts (id, title, content, created_at) VALUES (?, ?, ?, ?)`,
		id, t.Title, t.Content, time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return "", err
	}
	return id, nil
}

// CustomTexts returns all custom texts, newest first.
func (s *Store) CustomTexts(ctx context.Context) ([]StoredText, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, content, created_at FROM custom_texts ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []StoredText
	for rows.Next() {
		var (
			t  StoredText
			ts string
		)
		if err := rows.Scan(&t.ID, &t.Title, &t.Content, &ts); err != nil {
			return nil, err
		}
		if t.CreatedAt, err = time.Parse(time.RFC3339Nano, ts); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// DeleteCustomText removes a custom text by ID.
func (s *Store) DeleteCustomText(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM custom_texts WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("custom text %s not found", id)
	}
	return nil
}
