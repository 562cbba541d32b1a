package jobs_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"fooddelivery/internal/adapters/out/memory/orderregistry"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/jobs"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKitchenJob_RunOnce(t *testing.T) {
	t.Run("created_orders_start_preparing_then_become_ready", func(t *testing.T) {
		// Given an order placed at the mock clock's current time.
		mock := clock.NewMock()
		registry := orderregistry.NewRegistry(mock)
		job := jobs.NewKitchenJob(registry, mock, time.Minute, slog.Default())

		placed, err := order.NewOrder(kernel.NewUUID(), "customer-1", []string{"Pizza"}, mock.Now())
		require.NoError(t, err)
		require.NoError(t, registry.Add(context.Background(), placed))

		// When the first pass runs.
		job.RunOnce(context.Background())

		stored, err := registry.Get(context.Background(), placed.ID())
		require.NoError(t, err)
		assert.Equal(t, order.Preparing, stored.Status())

		// Then before the prep time elapses the order stays in the kitchen.
		job.RunOnce(context.Background())
		stored, err = registry.Get(context.Background(), placed.ID())
		require.NoError(t, err)
		assert.Equal(t, order.Preparing, stored.Status())

		// And once it elapses the order becomes claimable.
		mock.Add(time.Minute)
		job.RunOnce(context.Background())
		stored, err = registry.Get(context.Background(), placed.ID())
		require.NoError(t, err)
		assert.Equal(t, order.Ready, stored.Status())
	})
}

func TestStaleAssignmentJob_RunOnce(t *testing.T) {
	t.Run("abandoned_claims_return_to_the_ready_pool", func(t *testing.T) {
		// Given a claim that sat untouched past the timeout.
		mock := clock.NewMock()
		registry := orderregistry.NewRegistry(mock)
		job := jobs.NewStaleAssignmentJob(registry, time.Minute, slog.Default())

		placed, err := order.NewOrder(kernel.NewUUID(), "customer-1", []string{"Pizza"}, mock.Now())
		require.NoError(t, err)
		require.NoError(t, registry.Add(context.Background(), placed))
		_, err = registry.Transition(context.Background(), placed.ID(), []order.Status{order.Created}, order.Ready)
		require.NoError(t, err)
		_, err = registry.Claim(context.Background(), placed.ID(), "driver-1")
		require.NoError(t, err)

		mock.Add(2 * time.Minute)

		// When
		job.RunOnce(context.Background())

		// Then the order is claimable again and the driver is unbound.
		stored, err := registry.Get(context.Background(), placed.ID())
		require.NoError(t, err)
		assert.Equal(t, order.Ready, stored.Status())
		assert.Empty(t, stored.DriverID())
	})
}
