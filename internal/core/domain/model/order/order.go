package order

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder factory method.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrDriverIsRequired is returned when an assignment is attempted without a driver id.
	ErrDriverIsRequired = errors.New("driver id is required")
)

// Order represents a customer's placed request tracked through the delivery
// lifecycle. It is the aggregate root owned exclusively by the order
// registry; handlers never mutate an Order directly, they request mutations
// through the registry, which linearizes them per order.
//
// Order maintains these invariants:
//   - Must have a valid unique identifier and a non-empty customer id
//   - Must contain at least one item
//   - Status transitions follow the lifecycle machine in Status
//   - A driver is bound if and only if the order has progressed to Assigned or later
//   - Can only be created through the NewOrder constructor
type Order struct {
	id         kernel.UUID
	customerID string
	items      []string
	status     Status

	// driverID is the claiming driver's external id; empty until the order
	// is assigned.
	driverID string

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewOrder creates a new Order in Created status with both timestamps set
// to now. This is the only way to create a valid Order.
//
// Example:
//
//	id := kernel.NewUUID()
//	o, err := order.NewOrder(id, "customer-7", []string{"Pizza", "Soda"}, time.Now())
//	if err != nil {
//	    // handle validation error
//	}
func NewOrder(id kernel.UUID, customerID string, items []string, now time.Time) (*Order, error) {
	o := &Order{
		status:        Created,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the id of the customer who placed the order.
func (o *Order) CustomerID() string {
	return o.customerID
}

// Items returns a copy of the ordered item names in placement order.
func (o *Order) Items() []string {
	items := make([]string, len(o.items))
	copy(items, o.items)
	return items
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// DriverID returns the claiming driver's id, or the empty string when the
// order has no driver.
func (o *Order) DriverID() string {
	return o.driverID
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the timestamp of the most recent mutation.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// TransitionTo moves the order to target if the lifecycle machine allows it
// and stamps updatedAt. Returns an InvalidTransitionError (classified by
// errs.ErrInvalidTransition) when the move is illegal from the current status.
func (o *Order) TransitionTo(target Status, now time.Time) error {
	if !o.status.CanTransitionTo(target) {
		return errs.NewInvalidTransitionError(o.id.String(), o.status.String(), target.String())
	}

	o.status = target
	o.updatedAt = now
	return nil
}

// Assign binds the order to a driver, moving Ready -> Assigned. This is the
// claim operation: it only succeeds from Ready, which is what guarantees a
// single winner when the registry serializes concurrent claims.
func (o *Order) Assign(driverID string, now time.Time) error {
	if driverID == "" {
		return ErrDriverIsRequired
	}
	if err := o.TransitionTo(Assigned, now); err != nil {
		return err
	}

	o.driverID = driverID
	return nil
}

// ReleaseAssignment undoes a stale claim, moving Assigned -> Ready and
// unbinding the driver. Used by the escape path for orders stuck in the
// dispatch lock.
func (o *Order) ReleaseAssignment(now time.Time) error {
	if o.status != Assigned {
		return errs.NewInvalidTransitionError(o.id.String(), o.status.String(), Ready.String())
	}

	o.status = Ready
	o.driverID = ""
	o.updatedAt = now
	return nil
}

// Clone returns an independent copy of the order. The registry hands out
// clones so callers can never mutate shared state behind its lock.
func (o *Order) Clone() *Order {
	clone := *o
	clone.items = make([]string, len(o.items))
	copy(clone.items, o.items)
	return &clone
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID string) error {
	if customerID == "" {
		return errs.NewValueIsRequiredError("customerID")
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setItems(items []string) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if item == "" {
			return errs.NewValueIsInvalidError("items")
		}
	}

	o.items = make([]string, len(items))
	copy(o.items, items)
	return nil
}
