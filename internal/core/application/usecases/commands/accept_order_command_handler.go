package commands

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
)

const (
	// MsgOrderAccepted confirms a successful claim.
	MsgOrderAccepted = "Order accepted. Head to the restaurant for pickup."

	// MsgOrderUnavailable is returned when the order does not exist or was
	// claimed first by another driver. Losing the race is a normal outcome,
	// not an error.
	MsgOrderUnavailable = "Order is no longer available."

	// PickupDistanceEstimate and PaymentEstimate are the fixed quotes sent
	// with every successful claim; nothing computes real routes or pay.
	PickupDistanceEstimate = "2.5 km"
	PaymentEstimate        = "$7.50"
)

// AcceptOrderResult is the outcome of a driver's claim attempt. Accepted is
// false when the order was already taken or never existed; Order and the
// estimates are set only on success.
type AcceptOrderResult struct {
	Accepted         bool
	Message          string
	Order            *order.Order
	DistanceEstimate string
	PaymentEstimate  string
}

// AcceptOrderCommandHandler handles a driver claiming a specific order.
// The claim goes through the same registry primitive as the available-orders
// stream, so of any number of concurrent attempts on one order exactly one
// driver wins regardless of which path they used.
type AcceptOrderCommandHandler struct {
	registry ports.OrderRegistry
}

// NewAcceptOrderCommandHandler creates a handler for direct order claims.
func NewAcceptOrderCommandHandler(registry ports.OrderRegistry) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		registry: registry,
	}
}

// Handle processes the claim. A lost race and an unknown order both produce
// a negative result with a message rather than an error; only unexpected
// registry failures are returned as errors.
func (h *AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) (AcceptOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return AcceptOrderResult{}, err
	}

	claimed, err := h.registry.Claim(ctx, cmd.OrderID(), cmd.DriverID())
	if err != nil {
		if errors.Is(err, errs.ErrInvalidTransition) || errors.Is(err, errs.ErrObjectNotFound) {
			return AcceptOrderResult{
				Accepted: false,
				Message:  MsgOrderUnavailable,
			}, nil
		}
		return AcceptOrderResult{}, err
	}

	return AcceptOrderResult{
		Accepted:         true,
		Message:          MsgOrderAccepted,
		Order:            claimed,
		DistanceEstimate: PickupDistanceEstimate,
		PaymentEstimate:  PaymentEstimate,
	}, nil
}
