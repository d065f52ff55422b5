package api

import (
	"chat-edit/auth"
	"chat-edit/runtime"
	"context"
	"encoding/json"
	stderrors "errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4 * 1024
)

var (
	errConnectionClosed    = stderrors.New("connection closed")
	errConnectionSaturated = stderrors.New("connection send buffer full")
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Origins are enforced by the CORS middleware
	CheckOrigin: func(r *http.Request) bool { return true },
}

type envelope struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// Connection is one websocket of a user. Events are queued and written by WritePump.
type Connection struct {
	conn      *websocket.Conn
	send      chan []byte
	done      chan struct{}
	closeOnce sync.Once
}

func NewConnection(conn *websocket.Conn, bufferSize int) *Connection {
	return &Connection{
		conn: conn,
		send: make(chan []byte, bufferSize),
		done: make(chan struct{}),
	}
}

// Send never blocks: a full buffer drops the event.
func (c *Connection) Send(_ context.Context, event string, payload any) error {
	data, err := json.Marshal(envelope{Event: event, Data: payload})
	if err != nil {
		return err
	}
	select {
	case <-c.done:
		return errConnectionClosed
	default:
	}
	select {
	case c.send <- data:
		return nil
	default:
		return errConnectionSaturated
	}
}

func (c *Connection) Close() {
	c.closeOnce.Do(func() {
		close(c.done)
		_ = c.conn.Close()
	})
}

// ReadPump only keeps the connection alive: clients do not send commands over it.
func (c *Connection) ReadPump() {
	defer c.Close()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *Connection) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Close()
	}()

	for {
		select {
		case <-c.done:
			return
		case message := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

type WebsocketHandler struct {
	log        *slog.Logger
	registry   *runtime.Registry
	bufferSize int
}

func NewWebsocketHandler(log *slog.Logger, registry *runtime.Registry, bufferSize int) *WebsocketHandler {
	return &WebsocketHandler{log: log, registry: registry, bufferSize: bufferSize}
}

// ServeWS handles GET /ws and registers the connection under the caller's uid.
func (h *WebsocketHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	uid, ok := auth.UserID(r.Context())
	if !ok {
		unauthorized(h.log)(w, r)
		return
	}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("Websocket upgrade failed", "uid", uid, "error", err)
		return
	}

	connection := NewConnection(conn, h.bufferSize)
	id := h.registry.Subscribe(uid, connection)
	h.log.Debug("Websocket connected", "uid", uid, "connection", id)

	go connection.WritePump()
	go func() {
		connection.ReadPump()
		h.registry.Unsubscribe(uid, id)
		h.log.Debug("Websocket disconnected", "uid", uid, "connection", id)
	}()
}
