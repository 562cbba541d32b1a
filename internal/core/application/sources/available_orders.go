package sources

import (
	"context"
	"errors"
	"log/slog"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
)

var _ ports.DemandSource[*order.Order] = (*AvailableOrderSource)(nil)

// AvailableOrderSource hands ready orders to drivers, one per pull. It is
// the producer side of the available-orders stream: each pull snapshots the
// ready orders and tries to claim candidates through the registry's atomic
// claim, so a concurrently accepted order is simply skipped and the next
// candidate is tried.
//
// Tie-break policy: the first candidate in the snapshot that claims
// successfully wins. There is no fairness guarantee across drivers beyond
// "at most one driver ever receives a given order", which the registry
// enforces.
type AvailableOrderSource struct {
	registry ports.OrderRegistry
	policy   ports.AvailabilityPolicy
	logger   *slog.Logger
}

// NewAvailableOrderSource creates the producer. A nil policy means every
// ready order is offered.
func NewAvailableOrderSource(
	registry ports.OrderRegistry,
	policy ports.AvailabilityPolicy,
	logger *slog.Logger,
) *AvailableOrderSource {
	if logger == nil {
		logger = slog.Default()
	}
	return &AvailableOrderSource{
		registry: registry,
		policy:   policy,
		logger:   logger.With("component", "available_order_source"),
	}
}

// Pull claims at most one ready order for the driver, regardless of
// maxItems: dispatch is deliberately one order at a time so a slow driver
// never hoards orders. Returns an empty result immediately when nothing is
// claimable right now; it never blocks waiting for orders to appear.
func (s *AvailableOrderSource) Pull(ctx context.Context, driverID string, maxItems int) ([]*order.Order, error) {
	if driverID == "" {
		return nil, errs.NewValueIsRequiredError("driverID")
	}
	if maxItems <= 0 {
		return nil, nil
	}

	candidates, err := s.registry.ListByStatus(ctx, order.Ready)
	if err != nil {
		return nil, err
	}

	for _, candidate := range candidates {
		if s.policy != nil && !s.policy.Available(candidate) {
			continue
		}

		claimed, claimErr := s.registry.Claim(ctx, candidate.ID(), driverID)
		if claimErr == nil {
			s.logger.DebugContext(ctx, "Order claimed for driver",
				"order_id", claimed.ID().String(), "driver_id", driverID)
			return []*order.Order{claimed}, nil
		}

		// Lost the race or the order vanished: both are expected under
		// contention, move on to the next candidate.
		if errors.Is(claimErr, errs.ErrInvalidTransition) || errors.Is(claimErr, errs.ErrObjectNotFound) {
			continue
		}

		return nil, claimErr
	}

	return nil, nil
}
