package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"fooddelivery/internal/core/application/usecases/streaming"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

const closeGracePeriod = time.Second

// wsReceiver adapts a websocket connection into a ports.Receiver of JSON
// frames. A clean close from the peer is reported as io.EOF.
type wsReceiver[T any] struct {
	conn *websocket.Conn
}

func (r wsReceiver[T]) Recv(_ context.Context) (T, error) {
	var item T
	if err := r.conn.ReadJSON(&item); err != nil {
		if websocket.IsCloseError(err,
			websocket.CloseNormalClosure,
			websocket.CloseGoingAway,
			websocket.CloseNoStatusReceived) {
			return item, io.EOF
		}
		return item, err
	}
	return item, nil
}

// wsSender adapts a websocket connection into a ports.Sender of JSON frames.
type wsSender[T any] struct {
	conn *websocket.Conn
}

func (s wsSender[T]) Send(ctx context.Context, item T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.conn.WriteJSON(item)
}

// closeStream performs the server side of a clean websocket shutdown: a
// close frame, then a short grace period for the peer's close echo.
func closeStream(conn *websocket.Conn) error {
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	if err := conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(closeGracePeriod)); err != nil {
		return err
	}
	deadline := time.Now().Add(closeGracePeriod)
	_ = conn.SetReadDeadline(deadline)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return nil
		}
	}
}

// TrackOrderWS handles GET /ws/track?order_id=... - streams the order's
// customer journey and closes.
func (s *Server) TrackOrderWS(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.QueryParam("order_id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	conn, err := upgrader.Upgrade(ctx.Response(), ctx.Request(), nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	reqCtx := ctx.Request().Context()
	if err := s.trackOrderHandler.Handle(reqCtx, orderID, wsSender[streaming.StatusUpdate]{conn: conn}); err != nil {
		s.logger.WarnContext(reqCtx, "Tracking stream ended with error", "error", err)
		return nil
	}
	return closeStream(conn)
}

// PrepareOrderWS handles GET /ws/prepare - consumes kitchen reports and
// replies with the summary when the kitchen closes the stream.
func (s *Server) PrepareOrderWS(ctx echo.Context) error {
	conn, err := upgrader.Upgrade(ctx.Response(), ctx.Request(), nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	reqCtx := ctx.Request().Context()
	summary, err := s.prepareOrderHandler.Handle(reqCtx, wsReceiver[streaming.PrepareItem]{conn: conn})
	if err != nil {
		s.logger.WarnContext(reqCtx, "Prepare stream ended with error", "error", err)
		return nil
	}
	if err := conn.WriteJSON(summary); err != nil {
		return nil
	}
	return closeStream(conn)
}

// UpdateLocationWS handles GET /ws/location - consumes driver position
// reports and replies with the trip aggregate.
func (s *Server) UpdateLocationWS(ctx echo.Context) error {
	conn, err := upgrader.Upgrade(ctx.Response(), ctx.Request(), nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	reqCtx := ctx.Request().Context()
	summary, err := s.updateLocationHandler.Handle(reqCtx, wsReceiver[streaming.LocationUpdate]{conn: conn})
	if err != nil {
		s.logger.WarnContext(reqCtx, "Location stream ended with error", "error", err)
		return nil
	}
	if err := conn.WriteJSON(summary); err != nil {
		return nil
	}
	return closeStream(conn)
}

// OrderChatWS handles GET /ws/chat - a bidirectional conversation merged
// with proactive follow-ups.
func (s *Server) OrderChatWS(ctx echo.Context) error {
	conn, err := upgrader.Upgrade(ctx.Response(), ctx.Request(), nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	reqCtx := ctx.Request().Context()
	err = s.orderChatHandler.Handle(reqCtx,
		wsReceiver[streaming.ChatMessage]{conn: conn},
		wsSender[streaming.ChatMessage]{conn: conn})
	if err != nil {
		s.logger.WarnContext(reqCtx, "Chat session ended with error", "error", err)
		return nil
	}
	return closeStream(conn)
}

// AvailableOrdersWS handles GET /ws/available?driver_id=... - streams
// dispatch offers until the driver disconnects.
func (s *Server) AvailableOrdersWS(ctx echo.Context) error {
	driverID := ctx.QueryParam("driver_id")
	if driverID == "" {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "driver_id is required",
		})
	}

	conn, err := upgrader.Upgrade(ctx.Response(), ctx.Request(), nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	// The subscription has no inbound payload; the read pump only notices
	// the driver going away and ends the stream.
	streamCtx, cancel := context.WithCancel(ctx.Request().Context())
	defer cancel()
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	err = s.availableOrdersHandler.Handle(streamCtx, driverID, wsSender[streaming.OrderSummary]{conn: conn})
	if err != nil {
		s.logger.WarnContext(streamCtx, "Available orders stream ended with error", "error", err)
	}
	return nil
}
