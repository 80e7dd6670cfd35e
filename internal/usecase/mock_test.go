package usecase

import (
	"context"

	"github.com/diskusi-dev/diskusi/internal/domain"
)

// Mock repositories in the func-field style: unset funcs fall back to a
// harmless default.

type MockThreadRepository struct {
	AddThreadFunc        func(ctx context.Context, thread domain.PostThread) (domain.PostedThread, error)
	VerifyThreadFunc     func(ctx context.Context, id string) error
	GetThreadDetailsFunc func(ctx context.Context, id string) (domain.ThreadRecord, error)
}

func (m *MockThreadRepository) AddThread(ctx context.Context, thread domain.PostThread) (domain.PostedThread, error) {
	if m.AddThreadFunc != nil {
		return m.AddThreadFunc(ctx, thread)
	}
	return domain.PostedThread{Id: "thread-123", Title: thread.Title, Owner: thread.Owner}, nil
}

func (m *MockThreadRepository) VerifyThread(ctx context.Context, id string) error {
	if m.VerifyThreadFunc != nil {
		return m.VerifyThreadFunc(ctx, id)
	}
	return nil
}

func (m *MockThreadRepository) GetThreadDetails(ctx context.Context, id string) (domain.ThreadRecord, error) {
	if m.GetThreadDetailsFunc != nil {
		return m.GetThreadDetailsFunc(ctx, id)
	}
	return domain.ThreadRecord{Id: id}, nil
}

type MockCommentRepository struct {
	AddCommentFunc            func(ctx context.Context, comment domain.PostComment) (domain.PostedComment, error)
	DeleteCommentFunc         func(ctx context.Context, id string) error
	VerifyCommentFunc         func(ctx context.Context, id string) error
	VerifyCommentOwnerFunc    func(ctx context.Context, id, owner string) error
	GetCommentsByThreadIdFunc func(ctx context.Context, threadId string) ([]domain.CommentRecord, error)
}

func (m *MockCommentRepository) AddComment(ctx context.Context, comment domain.PostComment) (domain.PostedComment, error) {
	if m.AddCommentFunc != nil {
		return m.AddCommentFunc(ctx, comment)
	}
	return domain.PostedComment{Id: "comment-123", Content: comment.Content, Owner: comment.Owner}, nil
}

func (m *MockCommentRepository) DeleteComment(ctx context.Context, id string) error {
	if m.DeleteCommentFunc != nil {
		return m.DeleteCommentFunc(ctx, id)
	}
	return nil
}

func (m *MockCommentRepository) VerifyComment(ctx context.Context, id string) error {
	if m.VerifyCommentFunc != nil {
		return m.VerifyCommentFunc(ctx, id)
	}
	return nil
}

func (m *MockCommentRepository) VerifyCommentOwner(ctx context.Context, id, owner string) error {
	if m.VerifyCommentOwnerFunc != nil {
		return m.VerifyCommentOwnerFunc(ctx, id, owner)
	}
	return nil
}

func (m *MockCommentRepository) GetCommentsByThreadId(ctx context.Context, threadId string) ([]domain.CommentRecord, error) {
	if m.GetCommentsByThreadIdFunc != nil {
		return m.GetCommentsByThreadIdFunc(ctx, threadId)
	}
	return nil, nil
}

type MockSanitizer struct {
	SanitizeFunc func(s string) string
}

func (m *MockSanitizer) Sanitize(s string) string {
	if m.SanitizeFunc != nil {
		return m.SanitizeFunc(s)
	}
	return s
}
