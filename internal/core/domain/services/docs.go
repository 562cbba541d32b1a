// Package services contains stateless domain services that implement
// business rules spanning no single aggregate.
//
// ChatResponder holds the canned-reply rule table for the order chat.
// It is constructed explicitly and injected where needed; there are no
// package-level singletons.
package services
