package cmd

import "time"

// Config carries the runtime settings of the platform.
type Config struct {
	HTTPPort string

	// MaxDemand bounds in-flight items on every joined stream.
	MaxDemand int

	// TrackInterval paces the tracking replay emissions.
	TrackInterval time.Duration

	// ProactiveDelay is how long after a chat reply the follow-up is scheduled.
	ProactiveDelay time.Duration

	// AvailablePollInterval is the wait between empty dispatch pulls.
	AvailablePollInterval time.Duration

	// ChatPollInterval is the wait between empty follow-up pulls in a chat.
	ChatPollInterval time.Duration

	// KitchenPrepTime is how long the simulated kitchen keeps an order in
	// preparation before it becomes ready.
	KitchenPrepTime time.Duration

	// StaleAssignmentTimeout is how long a claimed order may sit untouched
	// before it returns to the ready pool.
	StaleAssignmentTimeout time.Duration
}
