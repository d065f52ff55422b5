// Package hooks implements named extension points where registered transformers
// may rewrite a payload before it is finalized.
package hooks

import (
	"chat-edit/domain"
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// FilterMessagingEdit is the extension point fired on every accepted edit.
const FilterMessagingEdit = "filter:messaging.edit"

// Transformer receives the output of the previous transformer of the chain.
type Transformer func(ctx context.Context, payload domain.EditPayload) (domain.EditPayload, error)

type entry struct {
	name string
	fn   Transformer
}

// Chain runs its transformers in registration order.
// An empty chain hands the payload back untouched.
type Chain struct {
	mu      sync.RWMutex
	log     *slog.Logger
	point   string
	entries []entry
}

func NewChain(log *slog.Logger, point string) *Chain {
	return &Chain{log: log, point: point}
}

func (c *Chain) Register(name string, fn Transformer) *Chain {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = append(c.entries, entry{name: name, fn: fn})
	return c
}

// Fire threads payload through every transformer. The first error stops the chain.
func (c *Chain) Fire(ctx context.Context, payload domain.EditPayload) (domain.EditPayload, error) {
	c.mu.RLock()
	entries := make([]entry, len(c.entries))
	copy(entries, c.entries)
	c.mu.RUnlock()

	for _, e := range entries {
		out, err := e.fn(ctx, payload)
		if err != nil {
			return domain.EditPayload{}, fmt.Errorf("%s: transformer %s: %w", c.point, e.name, err)
		}
		payload = out
	}
	c.log.Debug("Hook fired", "point", c.point, "transformers", len(entries))
	return payload, nil
}
