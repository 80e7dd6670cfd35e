package usecase

import (
	"context"

	"github.com/diskusi-dev/diskusi/internal/domain"
)

// CommentRepository is the persistence contract for comments. Verify methods
// return NotFoundError for absent ids; VerifyCommentOwner additionally
// returns AuthorizationError on owner mismatch.
type CommentRepository interface {
	AddComment(ctx context.Context, comment domain.PostComment) (domain.PostedComment, error)
	DeleteComment(ctx context.Context, id string) error
	VerifyComment(ctx context.Context, id string) error
	VerifyCommentOwner(ctx context.Context, id, owner string) error
	GetCommentsByThreadId(ctx context.Context, threadId string) ([]domain.CommentRecord, error)
}

// AddCommentUseCase validates a post-comment payload, checks that the parent
// thread exists and persists the comment.
type AddCommentUseCase struct {
	threads   ThreadRepository
	comments  CommentRepository
	sanitizer Sanitizer
}

func NewAddCommentUseCase(threads ThreadRepository, comments CommentRepository, sanitizer Sanitizer) *AddCommentUseCase {
	return &AddCommentUseCase{threads, comments, sanitizer}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, payload map[string]any) (domain.PostedComment, error) {
	comment, err := domain.NewPostComment(payload)
	if err != nil {
		return domain.PostedComment{}, err
	}

	if err := uc.threads.VerifyThread(ctx, comment.ThreadId); err != nil {
		return domain.PostedComment{}, err
	}

	comment.Content = uc.sanitizer.Sanitize(comment.Content)

	return uc.comments.AddComment(ctx, comment)
}

// DeleteCommentUseCase soft-deletes a comment after verifying, in order,
// that the thread exists, the comment exists and the requester owns it.
// Each step fails fast; DeleteComment itself performs no existence check.
type DeleteCommentUseCase struct {
	threads  ThreadRepository
	comments CommentRepository
}

func NewDeleteCommentUseCase(threads ThreadRepository, comments CommentRepository) *DeleteCommentUseCase {
	return &DeleteCommentUseCase{threads, comments}
}

func (uc *DeleteCommentUseCase) Execute(ctx context.Context, payload map[string]any) error {
	del, err := domain.NewDeleteComment(payload)
	if err != nil {
		return err
	}

	if err := uc.threads.VerifyThread(ctx, del.ThreadId); err != nil {
		return err
	}
	if err := uc.comments.VerifyComment(ctx, del.CommentId); err != nil {
		return err
	}
	if err := uc.comments.VerifyCommentOwner(ctx, del.CommentId, del.Owner); err != nil {
		return err
	}

	return uc.comments.DeleteComment(ctx, del.CommentId)
}
