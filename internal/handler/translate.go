package handler

import (
	"errors"

	internal_errors "github.com/diskusi-dev/diskusi/internal/errors"
)

// User-facing messages for entity validation codes, per operation.
var validationMessages = map[string]string{
	"POST_THREAD.NOT_CONTAIN_NEEDED_PROPERTY":       "tidak dapat membuat thread baru karena properti yang dibutuhkan tidak ada",
	"POST_THREAD.NOT_MEET_DATA_TYPE_SPECIFICATION":  "tidak dapat membuat thread baru karena tipe data tidak sesuai",
	"POST_COMMENT.NOT_CONTAIN_NEEDED_PROPERTY":      "tidak dapat membuat comment baru karena properti yang dibutuhkan tidak ada",
	"POST_COMMENT.NOT_MEET_DATA_TYPE_SPECIFICATION": "tidak dapat membuat comment baru karena tipe data tidak sesuai",
	"DELETE_COMMENT.NOT_CONTAIN_NEEDED_PROPERTY":    "tidak dapat menghapus comment karena properti yang dibutuhkan tidak ada",
	"DELETE_COMMENT.NOT_MEET_DATA_TYPE_SPECIFICATION": "tidak dapat menghapus comment karena tipe data tidak sesuai",
}

// translateError rewrites known entity validation codes into their
// user-facing messages. Other errors pass through unchanged.
func translateError(err error) error {
	var ve *internal_errors.ValidationError
	if errors.As(err, &ve) {
		if msg, ok := validationMessages[ve.Message]; ok {
			return &internal_errors.ValidationError{Message: msg}
		}
	}
	return err
}
