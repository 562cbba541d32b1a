package order

import (
	"encoding/json"
	"fmt"

	"fooddelivery/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct delivery workflow.
//
// State transitions:
//
//	Created ──> Preparing ──> Ready ──> Assigned ──> PickedUp ──> OnTheWay ──> Delivered
//	    │                       ^  \       │             ^                        ^
//	    └───────────────────────┘   \      └── (stale release)                    │
//	                                 └─────────────────────────────(early finish)─┘
//
// Created may move straight to Ready when the kitchen reports the whole
// order at once. Assigned may fall back to Ready when a driver never picks
// the order up (the bounded escape from the dispatch lock), and may move
// straight to Delivered when no intermediate location updates arrive.
//
// Assigned is an internal pre-pickup lock state that prevents double
// dispatch; it is never shown to customers. CustomerVisible collapses it
// into PickedUp.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status when an order is first placed.
	Created

	// Preparing indicates the kitchen is working on the order.
	Preparing

	// Ready indicates the order is packed and waiting for a driver.
	// Ready orders are the only ones a driver can claim.
	Ready

	// Assigned indicates a driver has claimed the order but has not
	// picked it up yet. Internal dispatch lock, not customer-visible.
	Assigned

	// PickedUp indicates the driver has collected the order.
	PickedUp

	// OnTheWay indicates the driver is en route to the customer.
	OnTheWay

	// Delivered indicates the order reached the customer.
	// This is a final state with no further transitions allowed.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Created:   "created",
		Preparing: "preparing",
		Ready:     "ready",
		Assigned:  "assigned",
		PickedUp:  "picked_up",
		OnTheWay:  "on_the_way",
		Delivered: "delivered",
	}
}

// allowedTransitions encodes the legal moves of the lifecycle machine.
// Every registry mutation goes through this table, so an out-of-sequence
// write is impossible regardless of which handler requests it.
func allowedTransitions() map[Status][]Status {
	return map[Status][]Status{
		Created:   {Preparing, Ready},
		Preparing: {Ready},
		Ready:     {Assigned},
		Assigned:  {PickedUp, Delivered, Ready},
		PickedUp:  {OnTheWay, Delivered},
		OnTheWay:  {Delivered},
		Delivered: {},
	}
}

// Validate checks if the Status value is one of the defined lifecycle states.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if s < Created || s > Delivered {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire-format name of the status, e.g. "picked_up".
// Safe to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// StatusFromString parses a wire-format status name, e.g. "picked_up".
func StatusFromString(name string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == name && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status name", name))
}

// MarshalJSON encodes the status as its wire-format name.
func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes a wire-format status name.
func (s *Status) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}

	parsed, err := StatusFromString(name)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// CanTransitionTo reports whether moving from s to target is a legal
// lifecycle transition.
func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range allowedTransitions()[s] {
		if next == target {
			return true
		}
	}
	return false
}

// TransitionTo returns target if the move from s is legal, or an
// InvalidTransitionError otherwise. The error is the same one callers see
// when they lose a claim race, so it is classified with
// errors.Is(err, errs.ErrInvalidTransition).
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}
	if !s.CanTransitionTo(target) {
		return 0, errs.NewInvalidTransitionError("", s.String(), target.String())
	}
	return target, nil
}

// CustomerVisible projects the status onto the customer-facing view:
// the internal Assigned dispatch lock is shown as PickedUp.
func (s Status) CustomerVisible() Status {
	if s == Assigned {
		return PickedUp
	}
	return s
}

// CustomerJourney returns the six customer-visible statuses in the order a
// customer experiences them. Assigned is absent because it is internal.
func CustomerJourney() []Status {
	return []Status{Created, Preparing, Ready, PickedUp, OnTheWay, Delivered}
}
