// Package event carries change notifications from the reconciliation layer
// to whoever is rendering state, without coupling either side to a UI
// toolkit. Delivery is synchronous and in-process.
package event

import (
	"sync"

	"github.com/google/uuid"
)

// Kind names the store that changed.
type Kind string

const (
	TransactionChanged Kind = "transaction_changed"
	DebtChanged        Kind = "debt_changed"
	FundChanged        Kind = "fund_changed"
)

// Event describes a single mutation that went through the orchestrator.
type Event struct {
	Kind     Kind
	EntityID uuid.UUID
}

// Handler receives published events.
type Handler func(Event)

// Bus fans events out to all subscribed handlers in subscription order.
type Bus struct {
	mu       sync.RWMutex
	handlers []Handler
}

func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers a handler. Handlers are typically registered once at
// startup; there is no unsubscribe.
func (b *Bus) Subscribe(h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers = append(b.handlers, h)
}

// Publish delivers the event to every handler on the calling goroutine.
func (b *Bus) Publish(e Event) {
	b.mu.RLock()
	handlers := make([]Handler, len(b.handlers))
	copy(handlers, b.handlers)
	b.mu.RUnlock()

	for _, h := range handlers {
		h(e)
	}
}
