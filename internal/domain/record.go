package domain

import "time"

// Raw persisted rows as the storage layer returns them, before any
// presentation mapping.

type ThreadRecord struct {
	Id       string
	Title    string
	Body     string
	Date     time.Time
	Username string
}

type CommentRecord struct {
	Id        string
	Username  string
	Content   string
	IsDeleted bool
}
