package commands_test

import (
	"testing"

	"printflow/internal/core/application/usecases/commands"
	"printflow/internal/core/domain/model/notification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkNotificationReadCommandHandler_Handle(t *testing.T) {
	seed := func(t *testing.T, ws interface {
		Feed() *notification.Feed
	}) {
		t.Helper()
		first, err := notification.New("n1", "A", "1", notification.SeverityInfo, notification.TargetAll, "", "", nil, testNow)
		require.NoError(t, err)
		second, err := notification.New("n2", "B", "2", notification.SeverityInfo, "ana", "", "", nil, testNow)
		require.NoError(t, err)
		require.True(t, ws.Feed().Publish(first))
		require.True(t, ws.Feed().Publish(second))
	}

	t.Run("dismisses one notification for one user", func(t *testing.T) {
		ctx := t.Context()
		ws := newTestWorkspace(t)
		seed(t, ws)

		cmd, err := commands.NewMarkNotificationReadCommand("n1", "ana")
		require.NoError(t, err)

		h := commands.NewMarkNotificationReadCommandHandler(ws, &recordingPublisher{})
		require.NoError(t, h.Handle(ctx, cmd))

		assert.Len(t, ws.Feed().VisibleTo("ana"), 1)
		assert.Len(t, ws.Feed().VisibleTo("zara"), 1, "other members keep the broadcast")
	})

	t.Run("empty id dismisses everything", func(t *testing.T) {
		ctx := t.Context()
		ws := newTestWorkspace(t)
		seed(t, ws)

		cmd, err := commands.NewMarkNotificationReadCommand("", "ana")
		require.NoError(t, err)

		h := commands.NewMarkNotificationReadCommandHandler(ws, &recordingPublisher{})
		require.NoError(t, h.Handle(ctx, cmd))

		assert.Empty(t, ws.Feed().VisibleTo("ana"))
		assert.Equal(t, 0, ws.Feed().UnreadCount("ana"))
	})

	t.Run("requires a user", func(t *testing.T) {
		_, err := commands.NewMarkNotificationReadCommand("n1", "")
		require.Error(t, err)
	})
}
