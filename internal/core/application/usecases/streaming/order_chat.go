package streaming

import (
	"context"
	"sync"
	"time"

	"fooddelivery/internal/core/application/sources"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/streams"

	"github.com/benbjohnson/clock"
)

// Chat message senders.
const (
	SenderCustomer = "customer"
	SenderSupport  = "support"
	SenderSystem   = "system"
)

const defaultChatPollInterval = 250 * time.Millisecond

// OrderChatHandler runs one bidirectional chat session. Inbound customer
// messages are answered synchronously through the proactive source's rule
// table; in the same outbound stream, follow-ups the source schedules for
// the conversation arrive as system messages without the customer asking.
//
// The two directions are merged by a stream joiner, so a quiet customer
// still receives follow-ups and a chatty one cannot starve them out. The
// session ends when the inbound stream ends; scheduled follow-ups that have
// not come due by then are simply never delivered.
type OrderChatHandler struct {
	source       *sources.ProactiveMessageSource
	clock        clock.Clock
	maxDemand    int
	pollInterval time.Duration
}

// NewOrderChatHandler creates the chat handler. A nil clk uses the wall
// clock; non-positive maxDemand and pollInterval fall back to the joiner
// defaults.
func NewOrderChatHandler(
	source *sources.ProactiveMessageSource,
	clk clock.Clock,
	maxDemand int,
	pollInterval time.Duration,
) OrderChatHandler {
	if clk == nil {
		clk = clock.New()
	}
	if pollInterval <= 0 {
		pollInterval = defaultChatPollInterval
	}
	return OrderChatHandler{
		source:       source,
		clock:        clk,
		maxDemand:    maxDemand,
		pollInterval: pollInterval,
	}
}

// Handle pumps the session until the inbound stream ends or the outbound
// sink fails. The conversation id is learned from the inbound messages
// themselves: follow-ups cannot be pulled before the first message names the
// order being discussed.
func (h *OrderChatHandler) Handle(ctx context.Context, in ports.Receiver[ChatMessage], out ports.Sender[ChatMessage]) error {
	joinCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var mu sync.Mutex
	conversationID := ""

	recv := func(ctx context.Context) (ChatMessage, error) {
		msg, err := in.Recv(ctx)
		if err != nil {
			return ChatMessage{}, err
		}
		if msg.OrderID != "" {
			mu.Lock()
			conversationID = msg.OrderID
			mu.Unlock()
		}
		return msg, nil
	}

	pull := func(ctx context.Context, maxItems int) ([]sources.SystemMessage, error) {
		mu.Lock()
		id := conversationID
		mu.Unlock()
		if id == "" {
			return nil, nil
		}
		return h.source.Pull(ctx, id, maxItems)
	}

	joiner := streams.Join(joinCtx, recv, pull, streams.Config{
		MaxDemand:    h.maxDemand,
		PollInterval: h.pollInterval,
		Clock:        h.clock,
	})

	for event := range joiner.Events() {
		var reply ChatMessage
		switch event.Kind {
		case streams.KindClient:
			msg := event.Client
			reply = ChatMessage{
				OrderID: msg.OrderID,
				Sender:  SenderSupport,
				Text:    h.source.Respond(msg.OrderID, msg.Text),
			}
		case streams.KindProducer:
			followUp := event.Producer
			reply = ChatMessage{
				OrderID: followUp.ConversationID,
				Sender:  SenderSystem,
				Text:    followUp.Text,
			}
		}

		if err := out.Send(ctx, reply); err != nil {
			return err
		}
	}

	return joiner.Err()
}
