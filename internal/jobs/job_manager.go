package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"fooddelivery/internal/core/ports"

	"github.com/benbjohnson/clock"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	kitchenJob         *KitchenJob
	staleAssignmentJob *StaleAssignmentJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	registry ports.OrderRegistry,
	clk clock.Clock,
	prepTime time.Duration,
	staleTimeout time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		kitchenJob:         NewKitchenJob(registry, clk, prepTime, logger),
		staleAssignmentJob: NewStaleAssignmentJob(registry, staleTimeout, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.kitchenJob.Start(); err != nil {
		return fmt.Errorf("failed to start kitchen job: %w", err)
	}

	if err := jm.staleAssignmentJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.kitchenJob.Stop()
		return fmt.Errorf("failed to start stale assignment job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.staleAssignmentJob.Stop()
	jm.kitchenJob.Stop()
}
