// Package kernel contains shared value objects used across the domain model.
//
// It provides:
//   - UUID: validated unique identifiers for aggregates (wraps github.com/google/uuid)
//   - GeoPoint: validated geographic coordinates with a planar distance metric
//
// All kernel types are immutable value objects. They carry no behavior beyond
// validation, comparison, and simple derived values, which keeps them safe to
// copy and share between goroutines.
package kernel
