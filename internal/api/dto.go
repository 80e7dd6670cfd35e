package api

import "github.com/diskusi-dev/diskusi/internal/domain"

// Response is the envelope every endpoint answers with.
type Response struct {
	Status  string `json:"status"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

func Success(data any) Response {
	return Response{Status: "success", Data: data}
}

func Fail(message string) Response {
	return Response{Status: "fail", Message: message}
}

// Response data shapes

type AddedThreadData struct {
	AddedThread domain.PostedThread `json:"addedThread"`
}

type AddedCommentData struct {
	AddedComment domain.PostedComment `json:"addedComment"`
}

type ThreadData struct {
	Thread domain.ThreadDetails `json:"thread"`
}
