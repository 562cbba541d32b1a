package streaming

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
)

// UnknownOrderID is reported when a preparation stream ends without a single
// well-formed item, so there is no order to summarize.
const UnknownOrderID = "unknown"

// PrepareOrderHandler consumes a kitchen's stream of finished items and
// returns a single summary at end-of-stream. The first well-formed item
// fixes the order the stream is about; items for other orders and malformed
// items (missing order id, non-positive quantity) are skipped with a warning
// rather than failing the whole stream.
type PrepareOrderHandler struct {
	registry ports.OrderRegistry
	logger   *slog.Logger
}

// NewPrepareOrderHandler creates the kitchen stream handler.
func NewPrepareOrderHandler(registry ports.OrderRegistry, logger *slog.Logger) PrepareOrderHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return PrepareOrderHandler{
		registry: registry,
		logger:   logger.With("component", "prepare_order"),
	}
}

// Handle drains in until end-of-stream, then moves the order to ready and
// returns the totals. An empty stream produces the UnknownOrderID summary
// and touches nothing.
func (h *PrepareOrderHandler) Handle(ctx context.Context, in ports.Receiver[PrepareItem]) (PrepareSummary, error) {
	var orderID string
	total := 0

	for {
		item, err := in.Recv(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return PrepareSummary{}, err
		}

		if item.OrderID == "" || item.Quantity <= 0 {
			h.logger.WarnContext(ctx, "Skipping malformed prepare item",
				"order_id", item.OrderID, "item", item.ItemName, "quantity", item.Quantity)
			continue
		}
		if orderID == "" {
			orderID = item.OrderID
		}
		if item.OrderID != orderID {
			h.logger.WarnContext(ctx, "Skipping item for a different order",
				"order_id", item.OrderID, "stream_order_id", orderID)
			continue
		}

		total += item.Quantity
	}

	if orderID == "" {
		return PrepareSummary{OrderID: UnknownOrderID, TotalItems: 0, Status: order.Unknown}, nil
	}

	h.markReady(ctx, orderID)

	return PrepareSummary{
		OrderID:    orderID,
		TotalItems: total,
		Status:     order.Ready,
	}, nil
}

// markReady moves the prepared order out of the kitchen. The summary is the
// kitchen's report and is produced regardless; a failed move only means the
// registry view lags (already ready, or an id the registry never issued),
// which is logged and not surfaced to the kitchen.
func (h *PrepareOrderHandler) markReady(ctx context.Context, orderID string) {
	id, err := kernel.UUIDFromString(orderID)
	if err != nil {
		h.logger.WarnContext(ctx, "Prepared order id is not a registered id",
			"order_id", orderID)
		return
	}

	if _, err := h.registry.Transition(ctx, id, []order.Status{order.Created, order.Preparing}, order.Ready); err != nil {
		h.logger.WarnContext(ctx, "Prepared order could not be moved to ready",
			"order_id", orderID, "error", err)
	}
}
