package services

import "strings"

// Canned replies the responder chooses between. Exported so callers can
// distinguish rule hits from the generic fallback without string matching.
const (
	ReplyWhereabouts = "Your order is on its way! The driver is just around the corner."
	ReplyETA         = "It should arrive within 15 minutes."
	ReplyClosing     = "You're welcome! Enjoy your meal."
	ReplyGeneric     = "Thanks for your message! We'll keep you posted on your order."
)

// ChatResponder is the rule-based reply engine behind the order chat. It
// matches case-insensitive substrings against a fixed rule table and falls
// back to a generic acknowledgment. Rules are checked in order, so a message
// containing several keywords gets the first matching reply.
//
// ChatResponder is stateless; the per-conversation follow-up scheduling
// lives in the proactive message source, not here.
type ChatResponder struct{}

// NewChatResponder creates the reply engine.
func NewChatResponder() *ChatResponder {
	return &ChatResponder{}
}

// Reply returns the canned response for an inbound chat message.
func (r *ChatResponder) Reply(text string) string {
	lowered := strings.ToLower(text)

	switch {
	case strings.Contains(lowered, "where"):
		return ReplyWhereabouts
	case strings.Contains(lowered, "how long"):
		return ReplyETA
	case strings.Contains(lowered, "thanks"):
		return ReplyClosing
	default:
		return ReplyGeneric
	}
}
