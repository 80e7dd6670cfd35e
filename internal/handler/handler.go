package handler

import (
	"context"

	"github.com/diskusi-dev/diskusi/internal/domain"
)

// Executor interfaces are satisfied by the concrete use cases and mocked in
// tests.

type PostThreadExecutor interface {
	Execute(ctx context.Context, payload map[string]any) (domain.PostedThread, error)
}

type AddCommentExecutor interface {
	Execute(ctx context.Context, payload map[string]any) (domain.PostedComment, error)
}

type DeleteCommentExecutor interface {
	Execute(ctx context.Context, payload map[string]any) error
}

type ThreadDetailsExecutor interface {
	Execute(ctx context.Context, threadId string) (domain.ThreadDetails, error)
}

// HealthChecker is satisfied by the storage layer; used by the readiness probe.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	postThread    PostThreadExecutor
	addComment    AddCommentExecutor
	deleteComment DeleteCommentExecutor
	threadDetails ThreadDetailsExecutor
	health        HealthChecker
}

func New(postThread PostThreadExecutor, addComment AddCommentExecutor, deleteComment DeleteCommentExecutor, threadDetails ThreadDetailsExecutor, health HealthChecker) *Handler {
	return &Handler{postThread, addComment, deleteComment, threadDetails, health}
}
