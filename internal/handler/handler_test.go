package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/diskusi-dev/diskusi/internal/domain"
	mw "github.com/diskusi-dev/diskusi/internal/middleware"
)

// Executor mocks in the func-field style.

type MockPostThread struct {
	ExecuteFunc func(ctx context.Context, payload map[string]any) (domain.PostedThread, error)
}

func (m *MockPostThread) Execute(ctx context.Context, payload map[string]any) (domain.PostedThread, error) {
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(ctx, payload)
	}
	return domain.PostedThread{}, nil
}

type MockAddComment struct {
	ExecuteFunc func(ctx context.Context, payload map[string]any) (domain.PostedComment, error)
}

func (m *MockAddComment) Execute(ctx context.Context, payload map[string]any) (domain.PostedComment, error) {
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(ctx, payload)
	}
	return domain.PostedComment{}, nil
}

type MockDeleteComment struct {
	ExecuteFunc func(ctx context.Context, payload map[string]any) error
}

func (m *MockDeleteComment) Execute(ctx context.Context, payload map[string]any) error {
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(ctx, payload)
	}
	return nil
}

type MockThreadDetails struct {
	ExecuteFunc func(ctx context.Context, threadId string) (domain.ThreadDetails, error)
}

func (m *MockThreadDetails) Execute(ctx context.Context, threadId string) (domain.ThreadDetails, error) {
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(ctx, threadId)
	}
	return domain.ThreadDetails{}, nil
}

type MockHealth struct {
	PingFunc func(ctx context.Context) error
}

func (m *MockHealth) Ping(ctx context.Context) error {
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return nil
}

// newTestRouter mirrors the production route table without auth middleware;
// asPrincipal injects the principal the way the middleware would.
func newTestRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()
	r.Post("/threads", h.PostThread)
	r.Get("/threads/{threadId}", h.GetThreadDetails)
	r.Post("/threads/{threadId}/comments", h.PostComment)
	r.Delete("/threads/{threadId}/comments/{commentId}", h.DeleteComment)
	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	return r
}

func asPrincipal(req *http.Request, id, username string) *http.Request {
	ctx := context.WithValue(req.Context(), mw.PrincipalKey, &domain.Principal{Id: id, Username: username})
	return req.WithContext(ctx)
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var envelope map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &envelope))
	return envelope
}
