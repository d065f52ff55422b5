package api

import (
	"chat-edit/auth"
	"chat-edit/domain"
	"chat-edit/errors"
	"chat-edit/observability"
	"chat-edit/services"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type ChatHandler struct {
	log     *slog.Logger
	chat    services.IChatService
	monitor *observability.MonitoringManager
}

func NewChatHandler(log *slog.Logger, chat services.IChatService, monitor *observability.MonitoringManager) *ChatHandler {
	return &ChatHandler{log: log, chat: chat, monitor: monitor}
}

type editRequest struct {
	Message string `json:"message"`
}

type statusResponse struct {
	Status string `json:"status"`
}

// EditMessage handles PUT /api/v3/chats/{roomID}/messages/{mid}
func (h *ChatHandler) EditMessage(w http.ResponseWriter, r *http.Request) {
	uid, roomID, mid, err := h.target(r)
	if err != nil {
		renderError(h.log, w, r, err)
		return
	}

	var body editRequest
	if err = render.DecodeJSON(r.Body, &body); err != nil {
		renderError(h.log, w, r, fmt.Errorf("%w: %v", errors.ErrInvalidContent, err))
		return
	}

	cmd := domain.EditMessageCommand{Room: roomID, Message: mid, UID: uid, Content: body.Message}
	if err = h.chat.EditMessage(r.Context(), cmd); err != nil {
		h.monitor.AddEdit(roomID, mid, uid, errors.Key(err))
		renderError(h.log, w, r, err)
		return
	}
	h.monitor.AddEdit(roomID, mid, uid, "ok")
	render.JSON(w, r, statusResponse{Status: "ok"})
}

// Permissions handles GET /api/v3/chats/{roomID}/messages/{mid}/permissions/{operation}
func (h *ChatHandler) Permissions(w http.ResponseWriter, r *http.Request) {
	uid, _, mid, err := h.target(r)
	if err != nil {
		renderError(h.log, w, r, err)
		return
	}
	op, err := domain.ParseOperation(chi.URLParam(r, "operation"))
	if err != nil {
		renderError(h.log, w, r, fmt.Errorf("%w: %v", errors.ErrInvalidContent, err))
		return
	}

	if err = h.chat.Authorize(r.Context(), mid, uid, op); err != nil {
		renderError(h.log, w, r, err)
		return
	}
	render.JSON(w, r, statusResponse{Status: "ok"})
}

func (h *ChatHandler) target(r *http.Request) (string, domain.RoomID, domain.MessageID, error) {
	uid, ok := auth.UserID(r.Context())
	if !ok {
		return "", 0, 0, errors.ErrUnauthenticated
	}
	roomID, err := strconv.ParseInt(chi.URLParam(r, "roomID"), 10, 64)
	if err != nil {
		return "", 0, 0, errors.ErrInvalidMessage
	}
	mid, err := strconv.ParseInt(chi.URLParam(r, "mid"), 10, 64)
	if err != nil {
		return "", 0, 0, errors.ErrInvalidMessage
	}
	return uid, domain.RoomID(roomID), domain.MessageID(mid), nil
}
