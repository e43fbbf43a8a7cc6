// Package events carries the "cart changed" signal from the cart service to
// whoever displays it (badge counters, session analytics). Subscribers are
// explicit; nothing here reaches into UI or handler state.
package events

import (
	"sync"

	"github.com/shopverse/storefront/internal/models"
)

type CartChange struct {
	SessionID string
	Lines     []models.CartLine
	ItemCount int
}

type CartSubscriber func(CartChange)

// CartEvents is an in-process observer hub. Publish runs subscribers
// synchronously on the mutating goroutine, so subscribers must be cheap.
type CartEvents struct {
	mu     sync.RWMutex
	nextID int
	subs   map[int]CartSubscriber
}

func NewCartEvents() *CartEvents {
	return &CartEvents{subs: make(map[int]CartSubscriber)}
}

// Subscribe registers a subscriber and returns its unsubscribe func.
func (e *CartEvents) Subscribe(fn CartSubscriber) func() {
	e.mu.Lock()
	defer e.mu.Unlock()

	id := e.nextID
	e.nextID++
	e.subs[id] = fn

	return func() {
		e.mu.Lock()
		defer e.mu.Unlock()

		delete(e.subs, id)
	}
}

func (e *CartEvents) Publish(change CartChange) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	for _, fn := range e.subs {
		fn(change)
	}
}
