package events_test

import (
	"testing"

	"github.com/shopverse/storefront/internal/events"
	"github.com/shopverse/storefront/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestCartEvents(t *testing.T) {
	t.Run("Delivers To All Subscribers", func(t *testing.T) {
		hub := events.NewCartEvents()

		var first, second []events.CartChange

		hub.Subscribe(func(c events.CartChange) { first = append(first, c) })
		hub.Subscribe(func(c events.CartChange) { second = append(second, c) })

		hub.Publish(events.CartChange{
			SessionID: "sess_1",
			Lines:     []models.CartLine{{ProductID: "prod_a", Quantity: 2}},
			ItemCount: 2,
		})

		assert.Len(t, first, 1)
		assert.Len(t, second, 1)
		assert.Equal(t, 2, first[0].ItemCount)
	})

	t.Run("Unsubscribe Stops Delivery", func(t *testing.T) {
		hub := events.NewCartEvents()

		var got []events.CartChange

		unsubscribe := hub.Subscribe(func(c events.CartChange) { got = append(got, c) })

		hub.Publish(events.CartChange{SessionID: "sess_1"})
		unsubscribe()
		hub.Publish(events.CartChange{SessionID: "sess_1"})

		assert.Len(t, got, 1)
	})

	t.Run("Publish With No Subscribers Is A No Op", func(t *testing.T) {
		hub := events.NewCartEvents()

		assert.NotPanics(t, func() {
			hub.Publish(events.CartChange{SessionID: "sess_1"})
		})
	})
}
