package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/diskusi-dev/diskusi/internal/api"
	mw "github.com/diskusi-dev/diskusi/internal/middleware"
	"github.com/diskusi-dev/diskusi/internal/utils"
)

func (h *Handler) PostComment(w http.ResponseWriter, r *http.Request) {
	principal := mw.GetPrincipalFromContext(r)
	if principal == nil {
		http.Error(w, "Missing authentication", http.StatusUnauthorized)
		return
	}

	body, err := utils.DecodeBody(r.Body)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	// Only content comes from the body; the parent thread and owner are
	// taken from the URL and the token.
	payload := map[string]any{
		"thread_id": chi.URLParam(r, "threadId"),
		"content":   body["content"],
		"owner":     principal.Id,
	}

	posted, err := h.addComment.Execute(r.Context(), payload)
	if err != nil {
		utils.WriteError(w, translateError(err))
		return
	}

	utils.WriteJSON(w, http.StatusCreated, api.Success(api.AddedCommentData{AddedComment: posted}))
}

func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	principal := mw.GetPrincipalFromContext(r)
	if principal == nil {
		http.Error(w, "Missing authentication", http.StatusUnauthorized)
		return
	}

	payload := map[string]any{
		"thread_id":  chi.URLParam(r, "threadId"),
		"comment_id": chi.URLParam(r, "commentId"),
		"owner":      principal.Id,
	}

	if err := h.deleteComment.Execute(r.Context(), payload); err != nil {
		utils.WriteError(w, translateError(err))
		return
	}

	utils.WriteJSON(w, http.StatusOK, api.Response{Status: "success"})
}
