package domain

// DeletedContentPlaceholder replaces the content of soft-deleted comments
// in thread-detail views. The original text is never exposed.
const DeletedContentPlaceholder = "**komentar telah dihapus**"

// RenderContent returns the display content for a comment.
func RenderContent(content string, deleted bool) string {
	if deleted {
		return DeletedContentPlaceholder
	}
	return content
}

// PostComment is the validated payload of the post-comment operation.
type PostComment struct {
	ThreadId string
	Content  string
	Owner    string
}

func NewPostComment(payload map[string]any) (PostComment, error) {
	if err := requirePresent(payload, "POST_COMMENT", "thread_id", "content", "owner"); err != nil {
		return PostComment{}, err
	}
	if err := requireStrings(payload, "POST_COMMENT", "thread_id", "content", "owner"); err != nil {
		return PostComment{}, err
	}
	return PostComment{
		ThreadId: payload["thread_id"].(string),
		Content:  payload["content"].(string),
		Owner:    payload["owner"].(string),
	}, nil
}

// PostedComment is the write-result shape returned after a comment has been
// persisted.
type PostedComment struct {
	Id      string `json:"id"`
	Content string `json:"content"`
	Owner   string `json:"owner"`
}

func NewPostedComment(payload map[string]any) (PostedComment, error) {
	if err := requirePresent(payload, "POSTED_COMMENT", "id", "content", "owner"); err != nil {
		return PostedComment{}, err
	}
	if err := requireStrings(payload, "POSTED_COMMENT", "id", "content", "owner"); err != nil {
		return PostedComment{}, err
	}
	return PostedComment{
		Id:      payload["id"].(string),
		Content: payload["content"].(string),
		Owner:   payload["owner"].(string),
	}, nil
}

// DeleteComment is the validated payload of the delete-comment operation.
type DeleteComment struct {
	ThreadId  string
	CommentId string
	Owner     string
}

func NewDeleteComment(payload map[string]any) (DeleteComment, error) {
	if err := requirePresent(payload, "DELETE_COMMENT", "thread_id", "comment_id", "owner"); err != nil {
		return DeleteComment{}, err
	}
	if err := requireStrings(payload, "DELETE_COMMENT", "thread_id", "comment_id", "owner"); err != nil {
		return DeleteComment{}, err
	}
	return DeleteComment{
		ThreadId:  payload["thread_id"].(string),
		CommentId: payload["comment_id"].(string),
		Owner:     payload["owner"].(string),
	}, nil
}

// CommentDetails is the display shape of a comment inside a thread view.
// Content is rendered at construction; the raw deleted flag is not retained.
type CommentDetails struct {
	Id       string `json:"id"`
	Username string `json:"username"`
	Date     any    `json:"date"`
	Content  string `json:"content"`
}

func NewCommentDetails(payload map[string]any) (CommentDetails, error) {
	if err := requirePresent(payload, "DETAIL_COMMENT", "id", "username", "date"); err != nil {
		return CommentDetails{}, err
	}
	// Content may be an empty string, but the key must exist.
	if _, ok := payload["content"]; !ok {
		return CommentDetails{}, missingError("DETAIL_COMMENT")
	}
	if err := requireStrings(payload, "DETAIL_COMMENT", "id", "username", "content"); err != nil {
		return CommentDetails{}, err
	}

	deleted := false
	if v, ok := payload["isDeleted"]; ok {
		b, isBool := v.(bool)
		if !isBool {
			return CommentDetails{}, typeError("DETAIL_COMMENT")
		}
		deleted = b
	}

	return CommentDetails{
		Id:       payload["id"].(string),
		Username: payload["username"].(string),
		Date:     payload["date"],
		Content:  RenderContent(payload["content"].(string), deleted),
	}, nil
}
