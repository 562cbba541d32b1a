package streaming

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"

	"github.com/benbjohnson/clock"
)

const defaultTrackInterval = 3 * time.Second

// TrackOrderHandler streams the customer-visible journey of an order: one
// StatusUpdate per customer-facing status, in lifecycle order, paced by the
// configured interval.
//
// The replay is a simulation for the customer's benefit and is strictly
// read-only: it verifies the order exists and then emits the journey without
// ever touching the order's actual status, so tracking can never interfere
// with the kitchen or dispatch. The internal Assigned lock state is absent
// from the journey.
type TrackOrderHandler struct {
	registry ports.OrderRegistry
	clock    clock.Clock
	interval time.Duration
}

// NewTrackOrderHandler creates the tracking handler. A nil clk uses the wall
// clock; a non-positive interval uses the default pacing.
func NewTrackOrderHandler(registry ports.OrderRegistry, clk clock.Clock, interval time.Duration) TrackOrderHandler {
	if clk == nil {
		clk = clock.New()
	}
	if interval <= 0 {
		interval = defaultTrackInterval
	}
	return TrackOrderHandler{
		registry: registry,
		clock:    clk,
		interval: interval,
	}
}

// Handle emits the journey for orderID to out and returns when the last
// status has been sent, the sink fails, or ctx is cancelled. Returns the
// registry error unchanged when the order does not exist.
func (h *TrackOrderHandler) Handle(ctx context.Context, orderID kernel.UUID, out ports.Sender[StatusUpdate]) error {
	tracked, err := h.registry.Get(ctx, orderID)
	if err != nil {
		return err
	}

	for i, status := range order.CustomerJourney() {
		if i > 0 {
			timer := h.clock.Timer(h.interval)
			select {
			case <-timer.C:
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			}
		}

		update := StatusUpdate{
			OrderID:   tracked.ID().String(),
			Status:    status,
			Message:   statusMessage(status),
			Timestamp: h.clock.Now(),
		}
		if err := out.Send(ctx, update); err != nil {
			return err
		}
	}

	return nil
}
