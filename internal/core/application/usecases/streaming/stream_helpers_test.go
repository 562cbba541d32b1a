package streaming_test

import (
	"context"
	"io"
	"testing"
	"time"

	"fooddelivery/internal/adapters/out/memory/orderregistry"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"

	"github.com/stretchr/testify/require"
)

// chanReceiver adapts a channel into a ports.Receiver. Closing the channel
// ends the stream with io.EOF, mirroring how the transport adapter reports a
// clean close.
type chanReceiver[T any] struct {
	ch <-chan T
}

func (r chanReceiver[T]) Recv(ctx context.Context) (T, error) {
	var zero T
	select {
	case item, ok := <-r.ch:
		if !ok {
			return zero, io.EOF
		}
		return item, nil
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

// chanSender adapts a channel into a ports.Sender.
type chanSender[T any] struct {
	ch chan<- T
}

func (s chanSender[T]) Send(ctx context.Context, item T) error {
	select {
	case s.ch <- item:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// receiverOf builds a Receiver that yields the given items and then ends.
func receiverOf[T any](items ...T) ports.Receiver[T] {
	ch := make(chan T, len(items))
	for _, item := range items {
		ch <- item
	}
	close(ch)
	return chanReceiver[T]{ch: ch}
}

func addOrder(t *testing.T, registry ports.OrderRegistry, status order.Status) *order.Order {
	t.Helper()
	ctx := context.Background()

	o, err := order.NewOrder(kernel.NewUUID(), "customer-1", []string{"Pizza"}, time.Now())
	require.NoError(t, err)
	require.NoError(t, registry.Add(ctx, o))

	switch status {
	case order.Created:
		return o
	case order.Assigned:
		ready, err := registry.Transition(ctx, o.ID(), []order.Status{order.Created}, order.Ready)
		require.NoError(t, err)
		assigned, err := registry.Claim(ctx, ready.ID(), "driver-1")
		require.NoError(t, err)
		return assigned
	default:
		moved, err := registry.Transition(ctx, o.ID(), []order.Status{order.Created}, status)
		require.NoError(t, err)
		return moved
	}
}

func newRegistry() *orderregistry.Registry {
	return orderregistry.NewRegistry(nil)
}
