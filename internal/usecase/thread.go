package usecase

import (
	"context"
	"time"

	"github.com/diskusi-dev/diskusi/internal/domain"
)

// ThreadRepository is the persistence contract for threads. Implementations
// return NotFoundError for absent ids.
type ThreadRepository interface {
	AddThread(ctx context.Context, thread domain.PostThread) (domain.PostedThread, error)
	VerifyThread(ctx context.Context, id string) error
	GetThreadDetails(ctx context.Context, id string) (domain.ThreadRecord, error)
}

// Sanitizer strips markup from user-submitted text before it is persisted.
type Sanitizer interface {
	Sanitize(s string) string
}

// PostThreadUseCase validates a post-thread payload and persists the thread.
type PostThreadUseCase struct {
	threads   ThreadRepository
	sanitizer Sanitizer
}

func NewPostThreadUseCase(threads ThreadRepository, sanitizer Sanitizer) *PostThreadUseCase {
	return &PostThreadUseCase{threads, sanitizer}
}

func (uc *PostThreadUseCase) Execute(ctx context.Context, payload map[string]any) (domain.PostedThread, error) {
	thread, err := domain.NewPostThread(payload)
	if err != nil {
		return domain.PostedThread{}, err
	}
	thread.Title = uc.sanitizer.Sanitize(thread.Title)
	thread.Body = uc.sanitizer.Sanitize(thread.Body)

	return uc.threads.AddThread(ctx, thread)
}

// GetThreadDetailsUseCase assembles the full read view of a thread: the
// thread row joined with its owner plus all comments ordered by comment id.
type GetThreadDetailsUseCase struct {
	threads  ThreadRepository
	comments CommentRepository
}

func NewGetThreadDetailsUseCase(threads ThreadRepository, comments CommentRepository) *GetThreadDetailsUseCase {
	return &GetThreadDetailsUseCase{threads, comments}
}

func (uc *GetThreadDetailsUseCase) Execute(ctx context.Context, threadId string) (domain.ThreadDetails, error) {
	record, err := uc.threads.GetThreadDetails(ctx, threadId)
	if err != nil {
		return domain.ThreadDetails{}, err
	}

	rows, err := uc.comments.GetCommentsByThreadId(ctx, threadId)
	if err != nil {
		return domain.ThreadDetails{}, err
	}

	comments := make([]domain.CommentDetails, 0, len(rows))
	for _, row := range rows {
		// The display date is the time of the read, not the comment's stored
		// creation date. Kept as-is; see DESIGN.md before changing.
		details, err := domain.NewCommentDetails(map[string]any{
			"id":        row.Id,
			"username":  row.Username,
			"date":      time.Now().UTC(),
			"content":   row.Content,
			"isDeleted": row.IsDeleted,
		})
		if err != nil {
			return domain.ThreadDetails{}, err
		}
		comments = append(comments, details)
	}

	return domain.NewThreadDetails(map[string]any{
		"id":       record.Id,
		"title":    record.Title,
		"body":     record.Body,
		"date":     record.Date,
		"username": record.Username,
		"comments": comments,
	})
}
