package ports

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
)

// OrderRegistry is the concurrent store of order aggregates and the only
// shared mutable resource in the system. Implementations must support
// concurrent readers and linearize mutations per order id, so that of any
// set of concurrent claims on the same ready order exactly one wins.
//
// All methods return clones; callers never observe another caller's
// in-progress mutation.
type OrderRegistry interface {
	// Add stores a new order. Returns a DuplicateKeyError (classified by
	// errs.ErrDuplicateKey) if an order with the same id already exists.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by id. Returns an ObjectNotFoundError
	// (classified by errs.ErrObjectNotFound) for unknown ids.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Transition atomically moves the order to target if its current status
	// is in from. The compare-and-set is linearizable per order id: it is
	// performed under the order's own lock, never as an inspect-then-write
	// race. Returns the updated order, an ObjectNotFoundError for unknown
	// ids, or an InvalidTransitionError when the precondition fails —
	// including the expected case of losing a race.
	Transition(ctx context.Context, id kernel.UUID, from []order.Status, to order.Status) (*order.Order, error)

	// Claim atomically transitions a Ready order to Assigned and binds it to
	// the driver, in one linearization point. Both the direct AcceptOrder
	// path and the available-orders producer go through this method, which
	// is what guarantees the two dispatch paths can never both succeed for
	// one order.
	Claim(ctx context.Context, id kernel.UUID, driverID string) (*order.Order, error)

	// ListByStatus returns a snapshot of orders currently in the given
	// status. Insertion order is not guaranteed; the snapshot is only used
	// to pick candidates, each of which is then claimed atomically.
	ListByStatus(ctx context.Context, status order.Status) ([]*order.Order, error)

	// ReleaseStale returns every order stuck in Assigned for longer than
	// olderThan back to Ready, unbinding its driver. It is the bounded
	// escape that keeps orders from being locked forever by a driver that
	// disappeared after claiming. Returns the number of released orders.
	ReleaseStale(ctx context.Context, olderThan time.Duration) (int, error)
}
