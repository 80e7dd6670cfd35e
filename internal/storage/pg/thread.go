package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/diskusi-dev/diskusi/internal/domain"
	internal_errors "github.com/diskusi-dev/diskusi/internal/errors"
)

func (s *Storage) AddThread(ctx context.Context, thread domain.PostThread) (domain.PostedThread, error) {
	id := "thread-" + s.newId()

	var insertedId, title, owner string
	err := s.db.QueryRowContext(ctx, `
        INSERT INTO threads(id, title, body, owner)
        VALUES ($1, $2, $3, $4)
        RETURNING id, title, owner
    `, id, thread.Title, thread.Body, thread.Owner).Scan(&insertedId, &title, &owner)
	if err != nil {
		return domain.PostedThread{}, fmt.Errorf("failed to insert thread: %w", err)
	}

	return domain.NewPostedThread(map[string]any{
		"id":    insertedId,
		"title": title,
		"owner": owner,
	})
}

func (s *Storage) VerifyThread(ctx context.Context, id string) error {
	var found string
	err := s.db.QueryRowContext(ctx, "SELECT id FROM threads WHERE id = $1", id).Scan(&found)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &internal_errors.NotFoundError{Message: "thread tidak ditemukan"}
		}
		return fmt.Errorf("failed to verify thread: %w", err)
	}
	return nil
}

func (s *Storage) GetThreadDetails(ctx context.Context, id string) (domain.ThreadRecord, error) {
	var record domain.ThreadRecord
	err := s.db.QueryRowContext(ctx, `
        SELECT t.id, t.title, t.body, t.date, u.username
        FROM threads t
        JOIN users u ON t.owner = u.id
        WHERE t.id = $1
    `, id).Scan(&record.Id, &record.Title, &record.Body, &record.Date, &record.Username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ThreadRecord{}, &internal_errors.NotFoundError{Message: "thread tidak ditemukan"}
		}
		return domain.ThreadRecord{}, fmt.Errorf("failed to fetch thread details: %w", err)
	}
	return record, nil
}
