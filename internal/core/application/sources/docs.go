// Package sources contains the demand-source implementations: pull-driven
// producers of events not triggered by the remote caller.
//
// AvailableOrderSource assigns ready orders to drivers through the
// registry's atomic claim, at most one per pull. ProactiveMessageSource
// answers chat messages synchronously and schedules delayed follow-ups that
// the chat handler pulls as out-of-band events.
//
// Both sources satisfy ports.DemandSource for their event type. Pulls never
// block unboundedly: each either returns what is available immediately or
// waits no longer than its bounded delay.
package sources
