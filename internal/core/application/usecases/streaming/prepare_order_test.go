package streaming_test

import (
	"context"
	"testing"

	"fooddelivery/internal/core/application/usecases/streaming"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrepareOrderHandler_Handle(t *testing.T) {
	t.Run("sums_quantities_and_moves_the_order_to_ready", func(t *testing.T) {
		// Given
		registry := newRegistry()
		prepared := addOrder(t, registry, order.Created)
		handler := streaming.NewPrepareOrderHandler(registry, nil)

		in := receiverOf(
			streaming.PrepareItem{OrderID: prepared.ID().String(), ItemName: "Pizza", Quantity: 2},
			streaming.PrepareItem{OrderID: prepared.ID().String(), ItemName: "Soda", Quantity: 1},
		)

		// When
		summary, err := handler.Handle(context.Background(), in)

		// Then
		require.NoError(t, err)
		assert.Equal(t, prepared.ID().String(), summary.OrderID)
		assert.Equal(t, 3, summary.TotalItems)
		assert.Equal(t, order.Ready, summary.Status)

		stored, err := registry.Get(context.Background(), prepared.ID())
		require.NoError(t, err)
		assert.Equal(t, order.Ready, stored.Status())
	})

	t.Run("empty_stream_reports_unknown_and_touches_nothing", func(t *testing.T) {
		registry := newRegistry()
		untouched := addOrder(t, registry, order.Created)
		handler := streaming.NewPrepareOrderHandler(registry, nil)

		summary, err := handler.Handle(context.Background(), receiverOf[streaming.PrepareItem]())

		require.NoError(t, err)
		assert.Equal(t, streaming.UnknownOrderID, summary.OrderID)
		assert.Equal(t, 0, summary.TotalItems)
		assert.Equal(t, order.Unknown, summary.Status)

		stored, err := registry.Get(context.Background(), untouched.ID())
		require.NoError(t, err)
		assert.Equal(t, order.Created, stored.Status())
	})

	t.Run("malformed_items_are_skipped", func(t *testing.T) {
		registry := newRegistry()
		prepared := addOrder(t, registry, order.Preparing)
		handler := streaming.NewPrepareOrderHandler(registry, nil)

		in := receiverOf(
			streaming.PrepareItem{OrderID: "", ItemName: "Pizza", Quantity: 2},
			streaming.PrepareItem{OrderID: prepared.ID().String(), ItemName: "Soda", Quantity: 0},
			streaming.PrepareItem{OrderID: prepared.ID().String(), ItemName: "Ramen", Quantity: 4},
		)

		summary, err := handler.Handle(context.Background(), in)

		require.NoError(t, err)
		assert.Equal(t, prepared.ID().String(), summary.OrderID)
		assert.Equal(t, 4, summary.TotalItems)
	})

	t.Run("items_for_another_order_are_skipped", func(t *testing.T) {
		registry := newRegistry()
		first := addOrder(t, registry, order.Created)
		second := addOrder(t, registry, order.Created)
		handler := streaming.NewPrepareOrderHandler(registry, nil)

		in := receiverOf(
			streaming.PrepareItem{OrderID: first.ID().String(), ItemName: "Pizza", Quantity: 1},
			streaming.PrepareItem{OrderID: second.ID().String(), ItemName: "Soda", Quantity: 5},
		)

		summary, err := handler.Handle(context.Background(), in)

		require.NoError(t, err)
		assert.Equal(t, first.ID().String(), summary.OrderID)
		assert.Equal(t, 1, summary.TotalItems)

		// The second order is untouched by the foreign item.
		stored, err := registry.Get(context.Background(), second.ID())
		require.NoError(t, err)
		assert.Equal(t, order.Created, stored.Status())
	})

	t.Run("unregistered_order_id_still_gets_a_summary", func(t *testing.T) {
		// A kitchen can report ids the registry never issued; the summary is
		// its own report and the registry simply stays out of it.
		handler := streaming.NewPrepareOrderHandler(newRegistry(), nil)

		in := receiverOf(
			streaming.PrepareItem{OrderID: "O1", ItemName: "Pizza", Quantity: 2},
			streaming.PrepareItem{OrderID: "O1", ItemName: "Soda", Quantity: 1},
		)

		summary, err := handler.Handle(context.Background(), in)

		require.NoError(t, err)
		assert.Equal(t, "O1", summary.OrderID)
		assert.Equal(t, 3, summary.TotalItems)
		assert.Equal(t, order.Ready, summary.Status)
	})
}
