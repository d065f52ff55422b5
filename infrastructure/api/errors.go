package api

import (
	"chat-edit/errors"
	stderrors "errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
)

type errorResponse struct {
	Error string `json:"error"`
}

// statusFor maps a domain error to its HTTP status. Anything unknown is a server fault.
func statusFor(err error) int {
	switch {
	case stderrors.Is(err, errors.ErrInvalidMessage):
		return http.StatusNotFound
	case stderrors.Is(err, errors.ErrChatDisabled),
		stderrors.Is(err, errors.ErrEditingDisabled),
		stderrors.Is(err, errors.ErrUserBanned),
		stderrors.Is(err, errors.ErrNoPrivilege),
		stderrors.Is(err, errors.ErrDurationExpired),
		stderrors.Is(err, errors.ErrForbidden):
		return http.StatusForbidden
	case stderrors.Is(err, errors.ErrInvalidChatMessage),
		stderrors.Is(err, errors.ErrInvalidContent):
		return http.StatusBadRequest
	case stderrors.Is(err, errors.ErrUnauthenticated):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func renderError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Error("Request failed", "path", r.URL.Path, "error", err)
	}
	render.Status(r, status)
	render.JSON(w, r, errorResponse{Error: errors.Key(err)})
}

func unauthorized(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderError(log, w, r, errors.ErrUnauthenticated)
	}
}
