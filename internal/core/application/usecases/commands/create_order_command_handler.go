package commands

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"

	"github.com/benbjohnson/clock"
)

// DeliveryEstimate is the fixed estimate quoted on every confirmation.
// Real routing is out of scope; the platform promises the same window to
// everyone.
const DeliveryEstimate = "30-45 minutes"

// CreateOrderResult is the confirmation returned to the customer.
type CreateOrderResult struct {
	OrderID       kernel.UUID
	Status        order.Status
	EstimatedTime string
}

// CreateOrderCommandHandler handles the business logic for placing orders.
// Generates the order id, stores the order in "created" status and returns
// the confirmation. Creation is a single attempt with no retry: the id space
// makes collisions negligible, so a duplicate key is a genuine fault.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(registry, nil)
//	cmd, _ := NewCreateOrderCommand("customer-7", []string{"Ramen"})
//
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// result.OrderID now identifies the order for tracking and chat
type CreateOrderCommandHandler struct {
	registry ports.OrderRegistry
	clock    clock.Clock
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// A nil clk uses the wall clock.
func NewCreateOrderCommandHandler(registry ports.OrderRegistry, clk clock.Clock) CreateOrderCommandHandler {
	if clk == nil {
		clk = clock.New()
	}
	return CreateOrderCommandHandler{
		registry: registry,
		clock:    clk,
	}
}

// Handle processes the order placement command.
// Generates a fresh order id, stores the order and returns the confirmation
// with the fixed delivery estimate.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (CreateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResult{}, err
	}

	newOrder, err := order.NewOrder(kernel.NewUUID(), cmd.CustomerID(), cmd.Items(), h.clock.Now())
	if err != nil {
		return CreateOrderResult{}, err
	}

	if err = h.registry.Add(ctx, newOrder); err != nil {
		return CreateOrderResult{}, err
	}

	return CreateOrderResult{
		OrderID:       newOrder.ID(),
		Status:        newOrder.Status(),
		EstimatedTime: DeliveryEstimate,
	}, nil
}
