package jobs

import (
	"context"
	"log/slog"
	"time"

	"fooddelivery/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// StaleAssignmentJob returns orders stuck in the assigned dispatch lock to
// the ready pool. Runs every second: any order a driver claimed but did not
// start delivering within the timeout becomes claimable again.
type StaleAssignmentJob struct {
	registry ports.OrderRegistry
	timeout  time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewStaleAssignmentJob creates the release job. timeout is how long a
// claim may sit untouched before it is taken back.
func NewStaleAssignmentJob(registry ports.OrderRegistry, timeout time.Duration, logger *slog.Logger) *StaleAssignmentJob {
	return &StaleAssignmentJob{
		registry: registry,
		timeout:  timeout,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "stale_assignment_job"),
	}
}

// Start begins the release job to run every second.
func (j *StaleAssignmentJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		j.RunOnce(context.Background())
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale assignment job started (running every second)")
	return nil
}

// Stop stops the release job.
func (j *StaleAssignmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale assignment job stopped")
}

// RunOnce performs a single release pass. Exposed so the pass can run
// outside the cron schedule.
func (j *StaleAssignmentJob) RunOnce(ctx context.Context) {
	released, err := j.registry.ReleaseStale(ctx, j.timeout)
	if err != nil {
		j.logger.ErrorContext(ctx, "Stale assignment job failed", "error", err)
		return
	}

	if released > 0 {
		j.logger.InfoContext(ctx, "Released stale assignments back to the ready pool",
			"count", released)
	}
}
