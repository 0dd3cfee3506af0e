package commands_test

import (
	"testing"

	"printflow/internal/core/application/usecases/commands"
	"printflow/internal/core/domain/model/notification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestPasswordResetCommandHandler_Handle(t *testing.T) {
	t.Run("known e-mail raises an urgent broadcast", func(t *testing.T) {
		ctx := t.Context()
		ws := newTestWorkspace(t)

		cmd, err := commands.NewRequestPasswordResetCommand("ANA@shop.com")
		require.NoError(t, err)

		h := commands.NewRequestPasswordResetCommandHandler(ws, fixedClock{testNow}, &recordingPublisher{})
		require.NoError(t, h.Handle(ctx, cmd))

		visible := ws.Feed().VisibleTo("zara")
		require.Len(t, visible, 1)
		assert.Equal(t, "SOLICITAÇÃO DE RESET DE SENHA", visible[0].Title())
		assert.Equal(t, notification.SeverityUrgent, visible[0].Severity())
		require.NotNil(t, visible[0].Metadata())
		assert.Equal(t, "Ana@Shop.com", visible[0].Metadata().TargetUserLogin)
	})

	t.Run("unknown e-mail succeeds without a notification", func(t *testing.T) {
		ctx := t.Context()
		ws := newTestWorkspace(t)

		cmd, err := commands.NewRequestPasswordResetCommand("ghost@shop.com")
		require.NoError(t, err)

		publisher := &recordingPublisher{}
		h := commands.NewRequestPasswordResetCommandHandler(ws, fixedClock{testNow}, publisher)
		require.NoError(t, h.Handle(ctx, cmd), "e-mail enumeration is not possible")

		assert.Empty(t, ws.Feed().VisibleTo("zara"))
		assert.Empty(t, publisher.topics)
	})
}
