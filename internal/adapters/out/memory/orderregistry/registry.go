package orderregistry

import (
	"context"
	"sync"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/benbjohnson/clock"
)

// Registry is the in-memory implementation of ports.OrderRegistry.
//
// Concurrency model: the entries map is guarded by an RWMutex taken only to
// look up or insert entries; every mutation of an order happens under that
// order's own mutex, which makes Transition and Claim linearizable per key
// without a global write lock. Lock order is always map lock first, then
// entry lock, and the map lock is never held across a blocking operation.
//
// The registry hands out clones exclusively, so a caller can never mutate
// shared state from outside the entry lock.
type Registry struct {
	clock clock.Clock

	mu      sync.RWMutex
	entries map[kernel.UUID]*entry
}

type entry struct {
	mu    sync.Mutex
	order *order.Order
}

// NewRegistry creates an empty registry. The clock is injectable so tests
// control the updatedAt stamps and stale-release cutoffs; passing nil uses
// the wall clock.
func NewRegistry(clk clock.Clock) *Registry {
	if clk == nil {
		clk = clock.New()
	}
	return &Registry{
		clock:   clk,
		entries: make(map[kernel.UUID]*entry),
	}
}

// Add stores a new order, rejecting duplicate ids.
func (r *Registry) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id := aggregate.ID()
	if _, exists := r.entries[id]; exists {
		return errs.NewDuplicateKeyError("orderId", id.String())
	}

	r.entries[id] = &entry{order: aggregate.Clone()}
	return nil
}

// Get returns a clone of the order with the given id.
func (r *Registry) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	e, err := r.lookup(id)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.order.Clone(), nil
}

// Transition performs the atomic compare-and-set described by
// ports.OrderRegistry: the status check and the write happen under the
// order's lock, so concurrent callers racing on the same order serialize
// and at most one observes the expected status.
func (r *Registry) Transition(
	_ context.Context,
	id kernel.UUID,
	from []order.Status,
	to order.Status,
) (*order.Order, error) {
	e, err := r.lookup(id)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if !statusIn(e.order.Status(), from) {
		return nil, errs.NewInvalidTransitionError(id.String(), e.order.Status().String(), to.String())
	}

	if err := e.order.TransitionTo(to, r.clock.Now()); err != nil {
		return nil, err
	}

	return e.order.Clone(), nil
}

// Claim transitions a Ready order to Assigned and binds the driver, all
// under the order's lock. Losing claimants get an InvalidTransitionError.
func (r *Registry) Claim(_ context.Context, id kernel.UUID, driverID string) (*order.Order, error) {
	e, err := r.lookup(id)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.order.Assign(driverID, r.clock.Now()); err != nil {
		return nil, err
	}

	return e.order.Clone(), nil
}

// ListByStatus returns clones of all orders currently in the given status.
// The result is a point-in-time snapshot; by the time the caller acts on a
// candidate, its status may already have changed, which is why candidates
// are always claimed through Transition or Claim afterwards.
func (r *Registry) ListByStatus(_ context.Context, status order.Status) ([]*order.Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var matches []*order.Order
	for _, e := range r.entries {
		e.mu.Lock()
		if e.order.Status() == status {
			matches = append(matches, e.order.Clone())
		}
		e.mu.Unlock()
	}

	return matches, nil
}

// ReleaseStale returns orders stuck in Assigned for longer than olderThan
// back to Ready, unbinding their drivers.
func (r *Registry) ReleaseStale(_ context.Context, olderThan time.Duration) (int, error) {
	now := r.clock.Now()
	cutoff := now.Add(-olderThan)

	r.mu.RLock()
	defer r.mu.RUnlock()

	released := 0
	for _, e := range r.entries {
		e.mu.Lock()
		if e.order.Status() == order.Assigned && e.order.UpdatedAt().Before(cutoff) {
			if err := e.order.ReleaseAssignment(now); err == nil {
				released++
			}
		}
		e.mu.Unlock()
	}

	return released, nil
}

func (r *Registry) lookup(id kernel.UUID) (*entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("orderId", id.String())
	}
	return e, nil
}

func statusIn(s order.Status, set []order.Status) bool {
	for _, candidate := range set {
		if s == candidate {
			return true
		}
	}
	return false
}
