package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/diskusi-dev/diskusi/internal/api"
	mw "github.com/diskusi-dev/diskusi/internal/middleware"
	"github.com/diskusi-dev/diskusi/internal/utils"
)

func (h *Handler) PostThread(w http.ResponseWriter, r *http.Request) {
	principal := mw.GetPrincipalFromContext(r)
	if principal == nil {
		http.Error(w, "Missing authentication", http.StatusUnauthorized)
		return
	}

	payload, err := utils.DecodeBody(r.Body)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	payload["owner"] = principal.Id

	posted, err := h.postThread.Execute(r.Context(), payload)
	if err != nil {
		utils.WriteError(w, translateError(err))
		return
	}

	utils.WriteJSON(w, http.StatusCreated, api.Success(api.AddedThreadData{AddedThread: posted}))
}

func (h *Handler) GetThreadDetails(w http.ResponseWriter, r *http.Request) {
	threadId := chi.URLParam(r, "threadId")

	details, err := h.threadDetails.Execute(r.Context(), threadId)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, api.Success(api.ThreadData{Thread: details}))
}
