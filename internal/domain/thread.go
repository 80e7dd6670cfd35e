package domain

// PostThread is the validated payload of the post-thread operation.
type PostThread struct {
	Title string
	Body  string
	Owner string
}

func NewPostThread(payload map[string]any) (PostThread, error) {
	if err := requirePresent(payload, "POST_THREAD", "title", "body", "owner"); err != nil {
		return PostThread{}, err
	}
	if err := requireStrings(payload, "POST_THREAD", "title", "body", "owner"); err != nil {
		return PostThread{}, err
	}
	return PostThread{
		Title: payload["title"].(string),
		Body:  payload["body"].(string),
		Owner: payload["owner"].(string),
	}, nil
}

// PostedThread is the write-result shape returned to the client after a
// thread has been persisted.
type PostedThread struct {
	Id    string `json:"id"`
	Title string `json:"title"`
	Owner string `json:"owner"`
}

func NewPostedThread(payload map[string]any) (PostedThread, error) {
	if err := requirePresent(payload, "POSTED_THREAD", "id", "title", "owner"); err != nil {
		return PostedThread{}, err
	}
	if err := requireStrings(payload, "POSTED_THREAD", "id", "title", "owner"); err != nil {
		return PostedThread{}, err
	}
	return PostedThread{
		Id:    payload["id"].(string),
		Title: payload["title"].(string),
		Owner: payload["owner"].(string),
	}, nil
}

// ThreadDetails is the full read shape of a thread including its comments.
type ThreadDetails struct {
	Id       string           `json:"id"`
	Title    string           `json:"title"`
	Body     string           `json:"body"`
	Date     any              `json:"date"`
	Username string           `json:"username"`
	Comments []CommentDetails `json:"comments"`
}

func NewThreadDetails(payload map[string]any) (ThreadDetails, error) {
	if err := requirePresent(payload, "DETAIL_THREAD", "id", "title", "body", "date", "username"); err != nil {
		return ThreadDetails{}, err
	}
	if err := requireStrings(payload, "DETAIL_THREAD", "id", "title", "body", "username"); err != nil {
		return ThreadDetails{}, err
	}

	comments := []CommentDetails{}
	if v, ok := payload["comments"]; ok && v != nil {
		list, isList := v.([]CommentDetails)
		if !isList {
			return ThreadDetails{}, typeError("DETAIL_THREAD")
		}
		comments = list
	}

	return ThreadDetails{
		Id:       payload["id"].(string),
		Title:    payload["title"].(string),
		Body:     payload["body"].(string),
		Date:     payload["date"],
		Username: payload["username"].(string),
		Comments: comments,
	}, nil
}
