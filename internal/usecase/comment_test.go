package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diskusi-dev/diskusi/internal/domain"
	internal_errors "github.com/diskusi-dev/diskusi/internal/errors"
)

func TestAddCommentUseCase(t *testing.T) {
	ctx := context.Background()

	validPayload := func() map[string]any {
		return map[string]any{
			"thread_id": "thread-123",
			"content":   "sebuah teks",
			"owner":     "user-123",
		}
	}

	t.Run("validates payload first", func(t *testing.T) {
		threads := &MockThreadRepository{
			VerifyThreadFunc: func(ctx context.Context, id string) error {
				t.Fatal("VerifyThread should not be called for an invalid payload")
				return nil
			},
		}
		uc := NewAddCommentUseCase(threads, &MockCommentRepository{}, &MockSanitizer{})

		_, err := uc.Execute(ctx, map[string]any{"thread_id": "thread-123"})

		assert.EqualError(t, err, "POST_COMMENT.NOT_CONTAIN_NEEDED_PROPERTY")
	})

	t.Run("verifies the parent thread before inserting", func(t *testing.T) {
		notFound := &internal_errors.NotFoundError{Message: "thread tidak ditemukan"}
		threads := &MockThreadRepository{
			VerifyThreadFunc: func(ctx context.Context, id string) error {
				assert.Equal(t, "thread-123", id)
				return notFound
			},
		}
		comments := &MockCommentRepository{
			AddCommentFunc: func(ctx context.Context, comment domain.PostComment) (domain.PostedComment, error) {
				t.Fatal("AddComment should not be called when the thread is missing")
				return domain.PostedComment{}, nil
			},
		}
		uc := NewAddCommentUseCase(threads, comments, &MockSanitizer{})

		_, err := uc.Execute(ctx, validPayload())

		assert.ErrorIs(t, err, notFound)
	})

	t.Run("persists and returns the posted comment", func(t *testing.T) {
		var got domain.PostComment
		comments := &MockCommentRepository{
			AddCommentFunc: func(ctx context.Context, comment domain.PostComment) (domain.PostedComment, error) {
				got = comment
				return domain.PostedComment{Id: "comment-123", Content: comment.Content, Owner: comment.Owner}, nil
			},
		}
		uc := NewAddCommentUseCase(&MockThreadRepository{}, comments, &MockSanitizer{})

		posted, err := uc.Execute(ctx, validPayload())

		require.NoError(t, err)
		assert.Equal(t, domain.PostComment{ThreadId: "thread-123", Content: "sebuah teks", Owner: "user-123"}, got)
		assert.Equal(t, domain.PostedComment{Id: "comment-123", Content: "sebuah teks", Owner: "user-123"}, posted)
	})
}

func TestDeleteCommentUseCase(t *testing.T) {
	ctx := context.Background()

	validPayload := func() map[string]any {
		return map[string]any{
			"thread_id":  "thread-123",
			"comment_id": "comment-123",
			"owner":      "user-123",
		}
	}

	t.Run("runs verifications and the delete in a fixed order", func(t *testing.T) {
		var calls []string
		threads := &MockThreadRepository{
			VerifyThreadFunc: func(ctx context.Context, id string) error {
				calls = append(calls, "VerifyThread")
				return nil
			},
		}
		comments := &MockCommentRepository{
			VerifyCommentFunc: func(ctx context.Context, id string) error {
				calls = append(calls, "VerifyComment")
				return nil
			},
			VerifyCommentOwnerFunc: func(ctx context.Context, id, owner string) error {
				calls = append(calls, "VerifyCommentOwner")
				assert.Equal(t, "comment-123", id)
				assert.Equal(t, "user-123", owner)
				return nil
			},
			DeleteCommentFunc: func(ctx context.Context, id string) error {
				calls = append(calls, "DeleteComment")
				return nil
			},
		}
		uc := NewDeleteCommentUseCase(threads, comments)

		err := uc.Execute(ctx, validPayload())

		require.NoError(t, err)
		assert.Equal(t, []string{"VerifyThread", "VerifyComment", "VerifyCommentOwner", "DeleteComment"}, calls)
	})

	t.Run("missing thread short-circuits everything else", func(t *testing.T) {
		notFound := &internal_errors.NotFoundError{Message: "thread tidak ditemukan"}
		threads := &MockThreadRepository{
			VerifyThreadFunc: func(ctx context.Context, id string) error { return notFound },
		}
		comments := &MockCommentRepository{
			VerifyCommentFunc: func(ctx context.Context, id string) error {
				t.Fatal("VerifyComment should not be called")
				return nil
			},
		}
		uc := NewDeleteCommentUseCase(threads, comments)

		err := uc.Execute(ctx, validPayload())

		assert.ErrorIs(t, err, notFound)
	})

	t.Run("missing comment short-circuits owner check and delete", func(t *testing.T) {
		notFound := &internal_errors.NotFoundError{Message: "komentar tidak ditemukan"}
		comments := &MockCommentRepository{
			VerifyCommentFunc: func(ctx context.Context, id string) error { return notFound },
			VerifyCommentOwnerFunc: func(ctx context.Context, id, owner string) error {
				t.Fatal("VerifyCommentOwner should not be called")
				return nil
			},
		}
		uc := NewDeleteCommentUseCase(&MockThreadRepository{}, comments)

		err := uc.Execute(ctx, validPayload())

		assert.ErrorIs(t, err, notFound)
		assert.True(t, internal_errors.Is[*internal_errors.NotFoundError](err))
	})

	t.Run("non-owner cannot delete", func(t *testing.T) {
		forbidden := &internal_errors.AuthorizationError{Message: "Anda tidak berhak mengakses resource ini"}
		comments := &MockCommentRepository{
			VerifyCommentOwnerFunc: func(ctx context.Context, id, owner string) error { return forbidden },
			DeleteCommentFunc: func(ctx context.Context, id string) error {
				t.Fatal("DeleteComment should not be called for a non-owner")
				return nil
			},
		}
		uc := NewDeleteCommentUseCase(&MockThreadRepository{}, comments)

		err := uc.Execute(ctx, validPayload())

		assert.ErrorIs(t, err, forbidden)
		assert.True(t, internal_errors.Is[*internal_errors.AuthorizationError](err))
	})

	t.Run("validates payload first", func(t *testing.T) {
		threads := &MockThreadRepository{
			VerifyThreadFunc: func(ctx context.Context, id string) error {
				t.Fatal("VerifyThread should not be called for an invalid payload")
				return nil
			},
		}
		uc := NewDeleteCommentUseCase(threads, &MockCommentRepository{})

		err := uc.Execute(ctx, map[string]any{"thread_id": "thread-123", "owner": "user-123"})

		assert.EqualError(t, err, "DELETE_COMMENT.NOT_CONTAIN_NEEDED_PROPERTY")
	})
}
