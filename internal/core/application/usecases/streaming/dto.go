package streaming

import (
	"time"

	"fooddelivery/internal/core/domain/model/order"
)

// StatusUpdate is one emission of the order tracking stream.
type StatusUpdate struct {
	OrderID   string       `json:"order_id"`
	Status    order.Status `json:"status"`
	Message   string       `json:"message"`
	Timestamp time.Time    `json:"timestamp"`
}

// PrepareItem is one kitchen report in a preparation stream: a quantity of
// one item finished for an order.
type PrepareItem struct {
	OrderID  string `json:"order_id"`
	ItemName string `json:"item_name"`
	Quantity int    `json:"quantity"`
}

// PrepareSummary is the kitchen's end-of-stream report.
type PrepareSummary struct {
	OrderID    string       `json:"order_id"`
	TotalItems int          `json:"total_items"`
	Status     order.Status `json:"status"`
}

// LocationUpdate is one position report from a driver en route.
type LocationUpdate struct {
	DriverID string  `json:"driver_id"`
	OrderID  string  `json:"order_id"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
}

// LocationSummary is the aggregate returned when a driver's location stream
// ends.
type LocationSummary struct {
	DriverID        string  `json:"driver_id"`
	UpdatesReceived int     `json:"updates_received"`
	TotalDistanceKm float64 `json:"total_distance_km"`
}

// ChatMessage is one message in an order conversation, in either direction.
// Sender is one of SenderCustomer, SenderSupport or SenderSystem.
type ChatMessage struct {
	OrderID string `json:"order_id"`
	Sender  string `json:"sender"`
	Text    string `json:"text"`
}

// OrderSummary is the dispatch offer sent to a driver on the
// available-orders stream.
type OrderSummary struct {
	OrderID    string       `json:"order_id"`
	CustomerID string       `json:"customer_id"`
	Items      []string     `json:"items"`
	Status     order.Status `json:"status"`
	DriverID   string       `json:"driver_id"`
}

func newOrderSummary(o *order.Order) OrderSummary {
	return OrderSummary{
		OrderID:    o.ID().String(),
		CustomerID: o.CustomerID(),
		Items:      o.Items(),
		Status:     o.Status(),
		DriverID:   o.DriverID(),
	}
}

// statusMessage returns the customer-facing text for a tracking emission.
func statusMessage(s order.Status) string {
	switch s {
	case order.Created:
		return "Order received."
	case order.Preparing:
		return "The kitchen is preparing your order."
	case order.Ready:
		return "Your order is packed and waiting for a driver."
	case order.PickedUp:
		return "A driver has picked up your order."
	case order.OnTheWay:
		return "Your order is on the way."
	case order.Delivered:
		return "Delivered. Enjoy!"
	default:
		return ""
	}
}
