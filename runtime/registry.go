package runtime

import (
	"chat-edit/contract"
	"chat-edit/observability"
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// Registry tracks the live connections of every user.
// A user may hold several connections at once and each of them receives the user's events.
type Registry struct {
	mu       sync.RWMutex
	log      *slog.Logger
	sessions map[string]map[uuid.UUID]contract.ConnectionSink
	monitor  *observability.MonitoringManager
}

func NewRegistry(log *slog.Logger) *Registry {
	return &Registry{
		log:      log,
		sessions: make(map[string]map[uuid.UUID]contract.ConnectionSink),
	}
}

// WithMonitor counts delivered and dropped events.
func (r *Registry) WithMonitor(monitor *observability.MonitoringManager) *Registry {
	r.monitor = monitor
	return r
}

// Subscribe attaches a connection to uid and returns its id for Unsubscribe.
func (r *Registry) Subscribe(uid string, sink contract.ConnectionSink) uuid.UUID {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := uuid.New()
	if _, ok := r.sessions[uid]; !ok {
		r.sessions[uid] = make(map[uuid.UUID]contract.ConnectionSink)
	}
	r.sessions[uid][id] = sink
	return id
}

// Unsubscribe detaches a connection. The user entry is dropped with its last connection.
func (r *Registry) Unsubscribe(uid string, id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if conns, ok := r.sessions[uid]; ok {
		delete(conns, id)
		if len(conns) == 0 {
			delete(r.sessions, uid)
		}
	}
}

// SinksFor returns a snapshot of the connections of uid, nil when offline.
func (r *Registry) SinksFor(uid string) []contract.ConnectionSink {
	r.mu.RLock()
	defer r.mu.RUnlock()

	conns, ok := r.sessions[uid]
	if !ok {
		return nil
	}
	return lo.Values(conns)
}

// Deliver pushes the event to every connection of uid.
// Failures are logged only: an offline or slow client never fails the caller.
func (r *Registry) Deliver(ctx context.Context, uid string, event string, payload any) {
	for _, sink := range r.SinksFor(uid) {
		if err := sink.Send(ctx, event, payload); err != nil {
			r.monitor.IncrDropped()
			r.log.Warn("Event not delivered", "uid", uid, "event", event, "error", err)
			continue
		}
		r.monitor.IncrDelivered()
	}
}

func (r *Registry) Online() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
