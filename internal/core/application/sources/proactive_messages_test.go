package sources_test

import (
	"context"
	"testing"
	"time"

	"fooddelivery/internal/core/application/sources"
	"fooddelivery/internal/core/domain/services"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSource(t *testing.T, mock *clock.Mock, delay time.Duration) *sources.ProactiveMessageSource {
	t.Helper()
	return sources.NewProactiveMessageSource(services.NewChatResponder(), mock, delay, nil)
}

func TestProactiveMessageSource_Respond(t *testing.T) {
	t.Run("replies_synchronously_by_rule", func(t *testing.T) {
		source := newSource(t, clock.NewMock(), time.Minute)

		assert.Equal(t, services.ReplyWhereabouts, source.Respond("order-1", "Where is my order?"))
		assert.Equal(t, services.ReplyGeneric, source.Respond("order-1", "extra ketchup please"))
	})

	t.Run("no_follow_up_is_scheduled_without_a_conversation_id", func(t *testing.T) {
		// Given
		mock := clock.NewMock()
		source := newSource(t, mock, time.Minute)

		// When
		reply := source.Respond("", "Where is my order?")
		mock.Add(time.Minute)

		// Then the reply still works, but nothing queues under the
		// empty conversation key.
		assert.Equal(t, services.ReplyWhereabouts, reply)
		events, err := source.Pull(context.Background(), "", 10)
		require.NoError(t, err)
		assert.Empty(t, events)
	})

	t.Run("reply_is_not_blocked_by_scheduling", func(t *testing.T) {
		// The mock clock never advances, so if Respond waited on the
		// follow-up timer this test would hang.
		source := newSource(t, clock.NewMock(), time.Hour)

		reply := source.Respond("order-1", "thanks")

		assert.Equal(t, services.ReplyClosing, reply)
	})
}

func TestProactiveMessageSource_Pull(t *testing.T) {
	t.Run("follow_up_appears_after_delay", func(t *testing.T) {
		// Given
		mock := clock.NewMock()
		source := newSource(t, mock, time.Minute)
		source.Respond("order-1", "hello")

		// Then nothing is pending before the delay elapses.
		events, err := source.Pull(context.Background(), "order-1", 10)
		require.NoError(t, err)
		assert.Empty(t, events)

		// When the delay elapses.
		mock.Add(time.Minute)

		events, err = source.Pull(context.Background(), "order-1", 10)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, "order-1", events[0].ConversationID)
		assert.Equal(t, sources.FollowUpText, events[0].Text)
	})

	t.Run("pull_drains_the_queue", func(t *testing.T) {
		mock := clock.NewMock()
		source := newSource(t, mock, time.Minute)
		source.Respond("order-1", "hi")
		source.Respond("order-1", "anyone there?")
		mock.Add(time.Minute)

		events, err := source.Pull(context.Background(), "order-1", 10)
		require.NoError(t, err)
		assert.Len(t, events, 2)

		events, err = source.Pull(context.Background(), "order-1", 10)
		require.NoError(t, err)
		assert.Empty(t, events)
	})

	t.Run("pull_honors_max_items", func(t *testing.T) {
		mock := clock.NewMock()
		source := newSource(t, mock, time.Minute)
		source.Respond("order-1", "a")
		source.Respond("order-1", "b")
		source.Respond("order-1", "c")
		mock.Add(time.Minute)

		first, err := source.Pull(context.Background(), "order-1", 2)
		require.NoError(t, err)
		assert.Len(t, first, 2)

		rest, err := source.Pull(context.Background(), "order-1", 2)
		require.NoError(t, err)
		assert.Len(t, rest, 1)
	})

	t.Run("conversations_are_isolated", func(t *testing.T) {
		mock := clock.NewMock()
		source := newSource(t, mock, time.Minute)
		source.Respond("order-1", "hello")
		mock.Add(time.Minute)

		events, err := source.Pull(context.Background(), "order-2", 10)
		require.NoError(t, err)
		assert.Empty(t, events)

		events, err = source.Pull(context.Background(), "order-1", 10)
		require.NoError(t, err)
		assert.Len(t, events, 1)
	})

	t.Run("state_is_created_on_first_pull_without_respond", func(t *testing.T) {
		source := newSource(t, clock.NewMock(), time.Minute)

		events, err := source.Pull(context.Background(), "order-never-seen", 5)

		require.NoError(t, err)
		assert.Empty(t, events)
	})
}
