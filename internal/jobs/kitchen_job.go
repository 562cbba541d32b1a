package jobs

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"

	"github.com/benbjohnson/clock"
	"github.com/robfig/cron/v3"
)

// KitchenJob simulates the kitchen working through the backlog. Runs every
// second: freshly created orders move to preparing, and preparing orders
// whose prep time has elapsed move to ready, where drivers can claim them.
type KitchenJob struct {
	registry ports.OrderRegistry
	clock    clock.Clock
	prepTime time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewKitchenJob creates the kitchen simulation job. prepTime is how long an
// order stays in preparing before the kitchen finishes it. A nil clk uses
// the wall clock.
func NewKitchenJob(registry ports.OrderRegistry, clk clock.Clock, prepTime time.Duration, logger *slog.Logger) *KitchenJob {
	if clk == nil {
		clk = clock.New()
	}
	return &KitchenJob{
		registry: registry,
		clock:    clk,
		prepTime: prepTime,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "kitchen_job"),
	}
}

// Start begins the kitchen job to run every second.
func (j *KitchenJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		j.RunOnce(context.Background())
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Kitchen job started (running every second)")
	return nil
}

// Stop stops the kitchen job.
func (j *KitchenJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Kitchen job stopped")
}

// RunOnce performs a single kitchen pass. Exposed so the pass can run
// outside the cron schedule.
func (j *KitchenJob) RunOnce(ctx context.Context) {
	j.startPreparing(ctx)
	j.finishPrepared(ctx)
}

func (j *KitchenJob) startPreparing(ctx context.Context) {
	created, err := j.registry.ListByStatus(ctx, order.Created)
	if err != nil {
		j.logger.ErrorContext(ctx, "Kitchen job failed to list created orders", "error", err)
		return
	}

	for _, o := range created {
		_, err := j.registry.Transition(ctx, o.ID(), []order.Status{order.Created}, order.Preparing)
		if err != nil && !j.isExpected(err) {
			j.logger.ErrorContext(ctx, "Kitchen job failed to start preparing",
				"order_id", o.ID().String(), "error", err)
		}
	}
}

func (j *KitchenJob) finishPrepared(ctx context.Context) {
	preparing, err := j.registry.ListByStatus(ctx, order.Preparing)
	if err != nil {
		j.logger.ErrorContext(ctx, "Kitchen job failed to list preparing orders", "error", err)
		return
	}

	now := j.clock.Now()
	for _, o := range preparing {
		if now.Sub(o.UpdatedAt()) < j.prepTime {
			continue
		}
		_, err := j.registry.Transition(ctx, o.ID(), []order.Status{order.Preparing}, order.Ready)
		if err != nil && !j.isExpected(err) {
			j.logger.ErrorContext(ctx, "Kitchen job failed to finish order",
				"order_id", o.ID().String(), "error", err)
		}
	}
}

// isExpected filters outcomes that are normal under concurrency: the order
// moved on (a kitchen stream reported it ready first) or was removed.
func (j *KitchenJob) isExpected(err error) bool {
	return errors.Is(err, errs.ErrInvalidTransition) || errors.Is(err, errs.ErrObjectNotFound)
}
