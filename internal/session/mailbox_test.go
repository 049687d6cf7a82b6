package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/checkers-client/internal/protocol"
)

func TestMailbox(t *testing.T) {
	t.Run("Transport callbacks become session messages in order", func(t *testing.T) {
		// Given: a mailbox
		mailbox := NewMailbox(context.Background(), 4)
		lost := errors.New("lost")

		// When: the transport and notifier report in
		mailbox.Connected()
		mailbox.ServerEvent(protocol.PlayerJoined{PlayerCount: 2})
		mailbox.Disconnected(lost)
		mailbox.Expire(7)

		// Then: the loop sees them as tagged messages
		assert.Equal(t, Connected{}, <-mailbox.Messages())
		assert.Equal(t, FromServer{Event: protocol.PlayerJoined{PlayerCount: 2}}, <-mailbox.Messages())
		assert.Equal(t, Disconnected{Err: lost}, <-mailbox.Messages())
		assert.Equal(t, Expired{Token: 7}, <-mailbox.Messages())
	})

	t.Run("Post gives up once the context ends", func(t *testing.T) {
		// Given: a full mailbox
		ctx, cancel := context.WithCancel(context.Background())
		mailbox := NewMailbox(ctx, 1)
		require.True(t, mailbox.Post(Leave{}))

		// When: the context is cancelled
		cancel()

		// Then: further posts fail instead of blocking
		assert.False(t, mailbox.Post(Leave{}))
	})

	t.Run("QueryView fails when nobody answers", func(t *testing.T) {
		// Given: a mailbox with no loop and an expired caller context
		mailbox := NewMailbox(context.Background(), 1)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		// When: querying the view
		_, err := mailbox.QueryView(ctx)

		// Then: the caller's cancellation is reported
		require.ErrorIs(t, err, context.Canceled)
	})
}
