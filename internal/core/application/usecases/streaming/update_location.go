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

// UpdateLocationHandler consumes a driver's stream of position reports and
// returns the trip aggregate at end-of-stream. Distance is the planar
// approximation between consecutive points, summed over the whole trip; a
// single report contributes zero distance.
type UpdateLocationHandler struct {
	registry ports.OrderRegistry
	logger   *slog.Logger
}

// NewUpdateLocationHandler creates the location stream handler.
func NewUpdateLocationHandler(registry ports.OrderRegistry, logger *slog.Logger) UpdateLocationHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return UpdateLocationHandler{
		registry: registry,
		logger:   logger.With("component", "update_location"),
	}
}

// Handle drains in until end-of-stream, then marks the order delivered and
// returns the totals. Reports with out-of-range coordinates are skipped with
// a warning and count for nothing.
func (h *UpdateLocationHandler) Handle(ctx context.Context, in ports.Receiver[LocationUpdate]) (LocationSummary, error) {
	var driverID, orderID string
	var previous kernel.GeoPoint
	havePrevious := false
	count := 0
	totalKm := 0.0

	for {
		update, err := in.Recv(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return LocationSummary{}, err
		}

		point, err := kernel.NewGeoPoint(update.Lat, update.Lng)
		if err != nil {
			h.logger.WarnContext(ctx, "Skipping location update with invalid coordinates",
				"driver_id", update.DriverID, "lat", update.Lat, "lng", update.Lng)
			continue
		}

		if driverID == "" {
			driverID = update.DriverID
		}
		if orderID == "" {
			orderID = update.OrderID
		}

		count++
		if havePrevious {
			totalKm += point.DistanceKm(previous)
		}
		previous = point
		havePrevious = true
	}

	if orderID != "" {
		h.markDelivered(ctx, orderID)
	}

	return LocationSummary{
		DriverID:        driverID,
		UpdatesReceived: count,
		TotalDistanceKm: totalKm,
	}, nil
}

// markDelivered completes the trip in the registry. The trip aggregate is
// returned regardless; a failed move is logged only.
func (h *UpdateLocationHandler) markDelivered(ctx context.Context, orderID string) {
	id, err := kernel.UUIDFromString(orderID)
	if err != nil {
		h.logger.WarnContext(ctx, "Trip order id is not a registered id", "order_id", orderID)
		return
	}

	from := []order.Status{order.Assigned, order.PickedUp, order.OnTheWay}
	if _, err := h.registry.Transition(ctx, id, from, order.Delivered); err != nil {
		h.logger.WarnContext(ctx, "Trip order could not be marked delivered",
			"order_id", orderID, "error", err)
	}
}
