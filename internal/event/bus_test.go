package event_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/tranqh/moneypot/internal/event"
)

func TestBus_FansOutInSubscriptionOrder(t *testing.T) {
	bus := event.NewBus()

	var order []string

	bus.Subscribe(func(e event.Event) { order = append(order, "first") })
	bus.Subscribe(func(e event.Event) { order = append(order, "second") })

	bus.Publish(event.Event{Kind: event.DebtChanged, EntityID: uuid.New()})

	assert.Equal(t, []string{"first", "second"}, order)
}

func TestBus_DeliversEventData(t *testing.T) {
	bus := event.NewBus()
	id := uuid.New()

	var got event.Event

	bus.Subscribe(func(e event.Event) { got = e })
	bus.Publish(event.Event{Kind: event.FundChanged, EntityID: id})

	assert.Equal(t, event.FundChanged, got.Kind)
	assert.Equal(t, id, got.EntityID)
}

func TestBus_NoSubscribers(t *testing.T) {
	bus := event.NewBus()

	assert.NotPanics(t, func() {
		bus.Publish(event.Event{Kind: event.TransactionChanged})
	})
}
