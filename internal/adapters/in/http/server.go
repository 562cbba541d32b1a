package http

import (
	"log/slog"
	"net/http"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/streaming"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// Server exposes the platform over HTTP: unary operations as plain JSON
// endpoints and the stream operations as websocket endpoints. It coordinates
// between the transport and the application use cases and contains no
// business logic of its own.
type Server struct {
	// Command handlers
	createOrderHandler commands.CreateOrderCommandHandler
	acceptOrderHandler commands.AcceptOrderCommandHandler

	// Stream handlers
	trackOrderHandler      streaming.TrackOrderHandler
	prepareOrderHandler    streaming.PrepareOrderHandler
	updateLocationHandler  streaming.UpdateLocationHandler
	orderChatHandler       streaming.OrderChatHandler
	availableOrdersHandler streaming.StreamAvailableOrdersHandler

	registry ports.OrderRegistry
	logger   *slog.Logger
}

// NewServer creates the HTTP server with the required handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	acceptOrderHandler commands.AcceptOrderCommandHandler,
	trackOrderHandler streaming.TrackOrderHandler,
	prepareOrderHandler streaming.PrepareOrderHandler,
	updateLocationHandler streaming.UpdateLocationHandler,
	orderChatHandler streaming.OrderChatHandler,
	availableOrdersHandler streaming.StreamAvailableOrdersHandler,
	registry ports.OrderRegistry,
	logger *slog.Logger,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		createOrderHandler:     createOrderHandler,
		acceptOrderHandler:     acceptOrderHandler,
		trackOrderHandler:      trackOrderHandler,
		prepareOrderHandler:    prepareOrderHandler,
		updateLocationHandler:  updateLocationHandler,
		orderChatHandler:       orderChatHandler,
		availableOrdersHandler: availableOrdersHandler,
		registry:               registry,
		logger:                 logger.With("component", "http_server"),
	}
}

// RegisterRoutes wires all endpoints onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	e.POST("/orders", s.CreateOrder)
	e.GET("/orders", s.ListOrders)
	e.POST("/orders/:id/accept", s.AcceptOrder)

	e.GET("/ws/track", s.TrackOrderWS)
	e.GET("/ws/prepare", s.PrepareOrderWS)
	e.GET("/ws/location", s.UpdateLocationWS)
	e.GET("/ws/chat", s.OrderChatWS)
	e.GET("/ws/available", s.AvailableOrdersWS)
}

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type createOrderRequest struct {
	CustomerID string   `json:"customer_id"`
	Items      []string `json:"items"`
}

type createOrderResponse struct {
	OrderID       string       `json:"order_id"`
	Status        order.Status `json:"status"`
	EstimatedTime string       `json:"estimated_time"`
}

type acceptOrderRequest struct {
	DriverID string `json:"driver_id"`
}

type acceptOrderResponse struct {
	Accepted         bool       `json:"accepted"`
	Message          string     `json:"message"`
	Order            *orderView `json:"order,omitempty"`
	DistanceEstimate string     `json:"distance_estimate,omitempty"`
	PaymentEstimate  string     `json:"payment_estimate,omitempty"`
}

type orderView struct {
	OrderID    string       `json:"order_id"`
	CustomerID string       `json:"customer_id"`
	Items      []string     `json:"items"`
	Status     order.Status `json:"status"`
	DriverID   string       `json:"driver_id,omitempty"`
}

func newOrderView(o *order.Order) *orderView {
	return &orderView{
		OrderID:    o.ID().String(),
		CustomerID: o.CustomerID(),
		Items:      o.Items(),
		Status:     o.Status(),
		DriverID:   o.DriverID(),
	}
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateOrder handles POST /orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewCreateOrderCommand(req.CustomerID, req.Items)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	result, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, errorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to create order",
		})
	}

	return ctx.JSON(http.StatusCreated, createOrderResponse{
		OrderID:       result.OrderID.String(),
		Status:        result.Status,
		EstimatedTime: result.EstimatedTime,
	})
}

// AcceptOrder handles POST /orders/:id/accept - a driver claiming an order.
func (s *Server) AcceptOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	var req acceptOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewAcceptOrderCommand(req.DriverID, orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid claim data: " + err.Error(),
		})
	}

	result, err := s.acceptOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, errorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to accept order",
		})
	}

	response := acceptOrderResponse{
		Accepted:         result.Accepted,
		Message:          result.Message,
		DistanceEstimate: result.DistanceEstimate,
		PaymentEstimate:  result.PaymentEstimate,
	}
	if result.Order != nil {
		response.Order = newOrderView(result.Order)
	}
	return ctx.JSON(http.StatusOK, response)
}

// ListOrders handles GET /orders?status=... - lists orders in one status.
func (s *Server) ListOrders(ctx echo.Context) error {
	status, err := order.StatusFromString(ctx.QueryParam("status"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid status name",
		})
	}

	orders, err := s.registry.ListByStatus(ctx.Request().Context(), status)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, errorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to list orders",
		})
	}

	response := make([]*orderView, len(orders))
	for i, o := range orders {
		response[i] = newOrderView(o)
	}
	return ctx.JSON(http.StatusOK, response)
}
