package sources

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"

	"github.com/benbjohnson/clock"
)

// FollowUpText is the system-initiated message scheduled after every reply.
const FollowUpText = "Update: your order is moving along nicely. We'll ping you the moment it leaves the kitchen."

// maxPendingPerConversation bounds the follow-up backlog of a single
// conversation so an idle chat cannot grow the queue without limit.
const maxPendingPerConversation = 16

// SystemMessage is a producer-originated chat event: a message the platform
// sends into a conversation without the customer asking.
type SystemMessage struct {
	ConversationID string
	Text           string
}

var _ ports.DemandSource[SystemMessage] = (*ProactiveMessageSource)(nil)

// ProactiveMessageSource is the chat's demand source. It plays two roles:
//
//   - Respond answers an inbound message synchronously through the
//     rule-based ChatResponder, and as a side effect schedules a follow-up
//     SystemMessage for the conversation after a fixed delay. Scheduling
//     never blocks the reply.
//   - Pull drains a conversation's pending follow-ups; the chat handler's
//     join loop pulls them as out-of-band events.
//
// Per-conversation state is created on first use, keyed by the external
// conversation id (the order id), and mutated only under the source mutex,
// so concurrent chats are isolated from each other. The source is
// constructed once in the composition root and injected into every chat
// handler invocation; it is not a process-global looked up by name.
type ProactiveMessageSource struct {
	responder *services.ChatResponder
	clock     clock.Clock
	delay     time.Duration
	logger    *slog.Logger

	mu      sync.Mutex
	pending map[string][]SystemMessage
}

// NewProactiveMessageSource creates the source. The clock is injectable so
// tests can advance follow-up timers virtually; passing nil uses the wall
// clock.
func NewProactiveMessageSource(
	responder *services.ChatResponder,
	clk clock.Clock,
	delay time.Duration,
	logger *slog.Logger,
) *ProactiveMessageSource {
	if clk == nil {
		clk = clock.New()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ProactiveMessageSource{
		responder: responder,
		clock:     clk,
		delay:     delay,
		logger:    logger.With("component", "proactive_message_source"),
		pending:   make(map[string][]SystemMessage),
	}
}

// Respond returns the synchronous reply for an inbound chat message and
// schedules one follow-up for the conversation after the configured delay.
// A message without a conversation id gets only the reply: follow-ups are
// keyed by conversation, and an unkeyed queue would never be pulled.
func (s *ProactiveMessageSource) Respond(conversationID, inboundText string) string {
	reply := s.responder.Reply(inboundText)

	if conversationID == "" {
		return reply
	}

	s.clock.AfterFunc(s.delay, func() {
		s.enqueue(SystemMessage{
			ConversationID: conversationID,
			Text:           FollowUpText,
		})
	})

	return reply
}

// Pull returns up to maxItems pending follow-ups for the conversation. It
// returns immediately — an empty result means "nothing scheduled has come
// due yet", and the caller decides how long to wait before pulling again.
func (s *ProactiveMessageSource) Pull(_ context.Context, conversationID string, maxItems int) ([]SystemMessage, error) {
	if maxItems <= 0 {
		return nil, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	queue := s.pending[conversationID]
	if len(queue) == 0 {
		return nil, nil
	}

	n := min(maxItems, len(queue))
	batch := make([]SystemMessage, n)
	copy(batch, queue[:n])

	if n == len(queue) {
		delete(s.pending, conversationID)
	} else {
		s.pending[conversationID] = queue[n:]
	}

	return batch, nil
}

func (s *ProactiveMessageSource) enqueue(msg SystemMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()

	queue := s.pending[msg.ConversationID]
	if len(queue) >= maxPendingPerConversation {
		s.logger.Warn("Dropping follow-up, conversation backlog full",
			"conversation_id", msg.ConversationID, "backlog", len(queue))
		return
	}

	s.pending[msg.ConversationID] = append(queue, msg)
}
