package streaming

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"

	"github.com/benbjohnson/clock"
)

const defaultAvailablePollInterval = 500 * time.Millisecond

// StreamAvailableOrdersHandler pushes dispatch offers to a connected driver
// for as long as the driver stays subscribed. Each iteration pulls at most
// one claimable order from the source and sends it; when nothing is
// claimable the handler waits the poll interval before pulling again, so an
// idle subscription costs one registry snapshot per interval.
//
// Pacing beyond the interval comes from the sink: Send blocks while the
// driver's flow-control window is full, and no pull happens until the
// previous offer is accepted by the transport.
type StreamAvailableOrdersHandler struct {
	source       ports.DemandSource[*order.Order]
	clock        clock.Clock
	pollInterval time.Duration
}

// NewStreamAvailableOrdersHandler creates the dispatch stream handler. A nil
// clk uses the wall clock; a non-positive interval uses the default.
func NewStreamAvailableOrdersHandler(
	source ports.DemandSource[*order.Order],
	clk clock.Clock,
	pollInterval time.Duration,
) StreamAvailableOrdersHandler {
	if clk == nil {
		clk = clock.New()
	}
	if pollInterval <= 0 {
		pollInterval = defaultAvailablePollInterval
	}
	return StreamAvailableOrdersHandler{
		source:       source,
		clock:        clk,
		pollInterval: pollInterval,
	}
}

// Handle streams offers to out until ctx is cancelled (the driver
// unsubscribing) or the sink fails. Cancellation is the normal way a
// subscription ends and is not reported as an error.
func (h *StreamAvailableOrdersHandler) Handle(ctx context.Context, driverID string, out ports.Sender[OrderSummary]) error {
	if driverID == "" {
		return errs.NewValueIsRequiredError("driverID")
	}

	for {
		if ctx.Err() != nil {
			return nil
		}

		claimed, err := h.source.Pull(ctx, driverID, 1)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}

		for _, o := range claimed {
			if err := out.Send(ctx, newOrderSummary(o)); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				return err
			}
		}

		if len(claimed) == 0 {
			timer := h.clock.Timer(h.pollInterval)
			select {
			case <-timer.C:
			case <-ctx.Done():
				timer.Stop()
				return nil
			}
		}
	}
}
