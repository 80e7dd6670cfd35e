package utils

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/diskusi-dev/diskusi/internal/api"
	internal_errors "github.com/diskusi-dev/diskusi/internal/errors"
	"github.com/diskusi-dev/diskusi/internal/logger"
)

// WriteJSON writes v with the given status code. Header must not have been
// written yet.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("failed to encode response", "err", err)
	}
}

// WriteError maps the core error kinds to status codes and writes a fail
// envelope. Unknown errors become a generic 500.
func WriteError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := "terjadi kegagalan pada server kami"

	switch e := err.(type) {
	case *internal_errors.ValidationError:
		status, message = http.StatusBadRequest, e.Message
	case *internal_errors.NotFoundError:
		status, message = http.StatusNotFound, e.Message
	case *internal_errors.AuthorizationError:
		status, message = http.StatusForbidden, e.Message
	case *internal_errors.ErrorWithStatusCode:
		status, message = e.StatusCode, e.Message
	default:
		logger.Log.Error("unhandled error", "err", err)
	}

	WriteJSON(w, status, api.Fail(message))
}

// DecodeBody decodes a JSON body into a raw payload map. Entity constructors
// do the field-level validation, so no schema is enforced here.
func DecodeBody(r io.ReadCloser) (map[string]any, error) {
	payload := map[string]any{}
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return nil, &internal_errors.ErrorWithStatusCode{Message: "Body is invalid json", StatusCode: http.StatusBadRequest}
	}
	return payload, nil
}
