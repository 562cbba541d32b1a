package sources_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"fooddelivery/internal/adapters/out/memory/orderregistry"
	"fooddelivery/internal/core/application/sources"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addReadyOrder(t *testing.T, registry ports.OrderRegistry, customerID string) *order.Order {
	t.Helper()
	ctx := context.Background()
	o, err := order.NewOrder(kernel.NewUUID(), customerID, []string{"Pizza"}, time.Now())
	require.NoError(t, err)
	require.NoError(t, registry.Add(ctx, o))
	ready, err := registry.Transition(ctx, o.ID(), []order.Status{order.Created}, order.Ready)
	require.NoError(t, err)
	return ready
}

func TestAvailableOrderSource_Pull(t *testing.T) {
	t.Run("claims_one_ready_order_for_driver", func(t *testing.T) {
		// Given
		registry := orderregistry.NewRegistry(nil)
		ready := addReadyOrder(t, registry, "customer-1")
		source := sources.NewAvailableOrderSource(registry, nil, nil)

		// When
		events, err := source.Pull(context.Background(), "driver-1", 1)

		// Then
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.True(t, events[0].IsEqual(ready))
		assert.Equal(t, order.Assigned, events[0].Status())
		assert.Equal(t, "driver-1", events[0].DriverID())
	})

	t.Run("returns_empty_when_nothing_is_ready", func(t *testing.T) {
		registry := orderregistry.NewRegistry(nil)
		source := sources.NewAvailableOrderSource(registry, nil, nil)

		events, err := source.Pull(context.Background(), "driver-1", 1)

		require.NoError(t, err)
		assert.Empty(t, events)
	})

	t.Run("claims_at_most_one_order_per_pull", func(t *testing.T) {
		registry := orderregistry.NewRegistry(nil)
		addReadyOrder(t, registry, "customer-1")
		addReadyOrder(t, registry, "customer-2")
		source := sources.NewAvailableOrderSource(registry, nil, nil)

		events, err := source.Pull(context.Background(), "driver-1", 10)

		require.NoError(t, err)
		assert.Len(t, events, 1)

		remaining, err := registry.ListByStatus(context.Background(), order.Ready)
		require.NoError(t, err)
		assert.Len(t, remaining, 1)
	})

	t.Run("zero_max_items_pulls_nothing", func(t *testing.T) {
		registry := orderregistry.NewRegistry(nil)
		addReadyOrder(t, registry, "customer-1")
		source := sources.NewAvailableOrderSource(registry, nil, nil)

		events, err := source.Pull(context.Background(), "driver-1", 0)

		require.NoError(t, err)
		assert.Empty(t, events)
	})

	t.Run("empty_driver_id_is_rejected", func(t *testing.T) {
		registry := orderregistry.NewRegistry(nil)
		source := sources.NewAvailableOrderSource(registry, nil, nil)

		_, err := source.Pull(context.Background(), "", 1)

		require.Error(t, err)
	})

	t.Run("policy_filters_candidates", func(t *testing.T) {
		// Given a policy that refuses everything.
		registry := orderregistry.NewRegistry(nil)
		addReadyOrder(t, registry, "customer-1")
		never := ports.AvailabilityPolicyFunc(func(*order.Order) bool { return false })
		source := sources.NewAvailableOrderSource(registry, never, nil)

		// When
		events, err := source.Pull(context.Background(), "driver-1", 1)

		// Then nothing is claimed and the order stays ready.
		require.NoError(t, err)
		assert.Empty(t, events)

		remaining, err := registry.ListByStatus(context.Background(), order.Ready)
		require.NoError(t, err)
		assert.Len(t, remaining, 1)
	})

	t.Run("no_order_is_handed_to_two_drivers", func(t *testing.T) {
		// Given a pool of ready orders and more drivers pulling than orders.
		registry := orderregistry.NewRegistry(nil)
		const orders = 8
		const drivers = 32
		for i := 0; i < orders; i++ {
			addReadyOrder(t, registry, fmt.Sprintf("customer-%d", i))
		}
		source := sources.NewAvailableOrderSource(registry, nil, nil)

		var wg sync.WaitGroup
		var mu sync.Mutex
		received := make(map[string]string) // order id -> driver id

		for i := 0; i < drivers; i++ {
			wg.Add(1)
			go func(n int) {
				defer wg.Done()
				driverID := fmt.Sprintf("driver-%d", n)
				events, err := source.Pull(context.Background(), driverID, 1)
				assert.NoError(t, err)
				for _, o := range events {
					mu.Lock()
					previous, taken := received[o.ID().String()]
					received[o.ID().String()] = driverID
					mu.Unlock()
					assert.False(t, taken, "order %s handed to both %s and %s",
						o.ID().String(), previous, driverID)
				}
			}(i)
		}
		wg.Wait()

		// Then every order went out exactly once.
		assert.Len(t, received, orders)
		remaining, err := registry.ListByStatus(context.Background(), order.Ready)
		require.NoError(t, err)
		assert.Empty(t, remaining)
	})
}
