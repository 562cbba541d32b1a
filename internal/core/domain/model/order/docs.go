// Package order contains the Order aggregate and its lifecycle state machine.
//
// The lifecycle is linear: created, preparing, ready, assigned, picked_up,
// on_the_way, delivered. Assigned is an internal dispatch lock that prevents
// two drivers from receiving the same order; customers see it as picked_up.
// The only non-forward moves are the bounded escape from assigned back to
// ready (a driver claimed but never collected the order) and skipping ahead
// to delivered when location updates end early.
//
// The aggregate is owned by the order registry. All mutation methods stamp
// updatedAt, and the registry hands out clones so no caller can bypass its
// per-order serialization.
package order
