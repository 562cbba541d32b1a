package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/order"
)

// DemandSource is a pull-based, backpressure-aware generator of events that
// are not directly triggered by the remote caller — ready orders waiting for
// a driver, or scheduled follow-up messages in a chat. The consumer drives
// the pace: nothing is produced for a consumer that stops pulling.
//
// Pull returns at most maxItems events for the given consumer identity
// (driver id or conversation id). It may return fewer, including none, and
// must never block unboundedly: either it returns immediately with what is
// available, or it waits up to the implementation's bounded wait. Per-source
// state is keyed by the external consumer id and created on first pull, so
// no explicit teardown is required when a consumer disappears.
//
// Updates to one consumer's pending state are serialized by the
// implementation; distinct consumers may pull concurrently.
type DemandSource[E any] interface {
	Pull(ctx context.Context, consumerID string, maxItems int) ([]E, error)
}

// AvailabilityPolicy decides whether a ready order may be offered to a
// driver right now. The production policy accepts everything; tests and
// simulations inject deterministic or probabilistic policies. This replaces
// an embedded random draw so dispatch behavior stays testable.
type AvailabilityPolicy interface {
	Available(o *order.Order) bool
}

// AvailabilityPolicyFunc adapts a plain function to the AvailabilityPolicy
// interface.
type AvailabilityPolicyFunc func(o *order.Order) bool

// Available calls f.
func (f AvailabilityPolicyFunc) Available(o *order.Order) bool {
	return f(o)
}
