package card

import (
	"context"
	"sync"

	"faregate/pkg/platform/sentinel"
)

// InMemoryRegistry keeps issued cards in a map. It intentionally favors
// clarity over performance. The lock protects the map only; mutating a card's
// state after Find is the turnstile service's responsibility to serialize.
type InMemoryRegistry struct {
	mu    sync.RWMutex
	cards map[string]Card
}

func NewInMemoryRegistry() *InMemoryRegistry {
	return &InMemoryRegistry{cards: make(map[string]Card)}
}

func (r *InMemoryRegistry) Issue(_ context.Context, c Card) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cards[c.ID()] = c
	return nil
}

func (r *InMemoryRegistry) Find(_ context.Context, id string) (Card, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if c, ok := r.cards[id]; ok {
		return c, nil
	}
	return nil, sentinel.ErrNotFound
}

func (r *InMemoryRegistry) All(_ context.Context) ([]Card, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Card, 0, len(r.cards))
	for _, c := range r.cards {
		out = append(out, c)
	}
	return out, nil
}
