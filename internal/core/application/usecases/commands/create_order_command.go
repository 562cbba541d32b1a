package commands

import (
	"errors"

	"fooddelivery/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrCustomerIsRequired = errors.New("customer id is required")
	ErrItemsAreRequired   = errors.New("at least one item is required")
	ErrItemNameIsEmpty    = errors.New("item names must not be empty")
)

// CreateOrderCommand represents a customer's request to place a new order.
// Encapsulates the ordering customer and the requested item names.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("customer-7", []string{"Pizza", "Soda"})
//	if err != nil {
//	    return fmt.Errorf("invalid order request: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(registry, nil)
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	fmt.Printf("Order %s placed, arriving in %s", result.OrderID, result.EstimatedTime)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID string
	items      []string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates that the customer id is present and at least one non-empty item
// name was requested. Returns an error if any validation fails.
func NewCreateOrderCommand(customerID string, items []string) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setCustomerID(customerID),
		orderCommand.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerID returns the id of the ordering customer.
func (c CreateOrderCommand) CustomerID() string {
	return c.customerID
}

// Items returns a copy of the requested item names.
func (c CreateOrderCommand) Items() []string {
	items := make([]string, len(c.items))
	copy(items, c.items)
	return items
}

func (c *CreateOrderCommand) setCustomerID(customerID string) error {
	if customerID == "" {
		return ErrCustomerIsRequired
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setItems(items []string) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}
	for _, item := range items {
		if item == "" {
			return ErrItemNameIsEmpty
		}
	}

	c.items = make([]string, len(items))
	copy(c.items, items)
	return nil
}
