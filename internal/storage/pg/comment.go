package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/diskusi-dev/diskusi/internal/domain"
	internal_errors "github.com/diskusi-dev/diskusi/internal/errors"
)

func (s *Storage) AddComment(ctx context.Context, comment domain.PostComment) (domain.PostedComment, error) {
	id := "comment-" + s.newId()

	var insertedId, content, owner string
	err := s.db.QueryRowContext(ctx, `
        INSERT INTO comments(id, thread_id, content, owner)
        VALUES ($1, $2, $3, $4)
        RETURNING id, content, owner
    `, id, comment.ThreadId, comment.Content, comment.Owner).Scan(&insertedId, &content, &owner)
	if err != nil {
		return domain.PostedComment{}, fmt.Errorf("failed to insert comment: %w", err)
	}

	return domain.NewPostedComment(map[string]any{
		"id":      insertedId,
		"content": content,
		"owner":   owner,
	})
}

// DeleteComment performs no existence check of its own: the delete use case
// has already run VerifyComment. Call ordering matters there.
func (s *Storage) DeleteComment(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, "UPDATE comments SET is_deleted = TRUE WHERE id = $1", id); err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	return nil
}

func (s *Storage) VerifyComment(ctx context.Context, id string) error {
	var found string
	err := s.db.QueryRowContext(ctx, "SELECT id FROM comments WHERE id = $1", id).Scan(&found)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &internal_errors.NotFoundError{Message: "komentar tidak ditemukan"}
		}
		return fmt.Errorf("failed to verify comment: %w", err)
	}
	return nil
}

func (s *Storage) VerifyCommentOwner(ctx context.Context, id, owner string) error {
	var storedOwner string
	err := s.db.QueryRowContext(ctx, "SELECT owner FROM comments WHERE id = $1", id).Scan(&storedOwner)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &internal_errors.NotFoundError{Message: "komentar tidak ditemukan"}
		}
		return fmt.Errorf("failed to verify comment owner: %w", err)
	}
	if storedOwner != owner {
		return &internal_errors.AuthorizationError{Message: "Anda tidak berhak mengakses resource ini"}
	}
	return nil
}

// GetCommentsByThreadId returns comments ordered by id ascending
// (lexicographic on the generated id).
func (s *Storage) GetCommentsByThreadId(ctx context.Context, threadId string) ([]domain.CommentRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT c.id, u.username, c.content, c.is_deleted
        FROM comments c
        JOIN users u ON c.owner = u.id
        WHERE c.thread_id = $1
        ORDER BY c.id ASC
    `, threadId)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch comments: %w", err)
	}
	defer rows.Close()

	var records []domain.CommentRecord
	for rows.Next() {
		var record domain.CommentRecord
		if err := rows.Scan(&record.Id, &record.Username, &record.Content, &record.IsDeleted); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return records, nil
}
