package commands_test

import (
	"testing"

	"printflow/internal/core/application/usecases/commands"
	"printflow/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetNetworkPathsCommandHandler_Handle(t *testing.T) {
	t.Run("replaces the path set and toasts", func(t *testing.T) {
		ctx := t.Context()
		ws := newTestWorkspace(t)
		o := newStoredOrder(t, ws, "1042")

		path, err := order.NewNetworkPath("Arte final", `\\servidor\artes\1042.pdf`)
		require.NoError(t, err)

		repo := new(MockOrderRepository)
		uow := new(MockOrderUoW)
		expectOrderUpdate(uow, repo)
		factory := new(MockOrderUoWFactory)
		factory.On("Create").Return(uow).Once()

		cmd, err := commands.NewSetNetworkPathsCommand(o.ID(), []order.NetworkPath{path}, "boss")
		require.NoError(t, err)

		publisher := &recordingPublisher{}
		h := commands.NewSetNetworkPathsCommandHandler(factory, ws, publisher)
		require.NoError(t, h.Handle(ctx, cmd))

		stored, ok := ws.Order(o.ID().String())
		require.True(t, ok)
		require.Len(t, stored.FilePaths(), 1)
		assert.Equal(t, "Arte final", stored.FilePaths()[0].Name())
		require.Len(t, publisher.toasts, 1)
		assert.Equal(t, "Caminhos de rede atualizados.", publisher.toasts[0].Message)
	})

	t.Run("path edits leave no history entry", func(t *testing.T) {
		ctx := t.Context()
		ws := newTestWorkspace(t)
		o := newStoredOrder(t, ws, "1042")
		before := len(o.History())

		repo := new(MockOrderRepository)
		uow := new(MockOrderUoW)
		expectOrderUpdate(uow, repo)
		factory := new(MockOrderUoWFactory)
		factory.On("Create").Return(uow).Once()

		cmd, err := commands.NewSetNetworkPathsCommand(o.ID(), nil, "boss")
		require.NoError(t, err)

		h := commands.NewSetNetworkPathsCommandHandler(factory, ws, &recordingPublisher{})
		require.NoError(t, h.Handle(ctx, cmd))

		stored, ok := ws.Order(o.ID().String())
		require.True(t, ok)
		assert.Len(t, stored.History(), before)
	})
}

func TestSetArchivedCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	ws := newTestWorkspace(t)
	o := newStoredOrder(t, ws, "1042")

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	expectOrderUpdate(uow, repo)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	cmd, err := commands.NewSetArchivedCommand(o.ID(), true, "boss")
	require.NoError(t, err)

	h := commands.NewSetArchivedCommandHandler(factory, ws, fixedClock{testNow}, &recordingPublisher{})
	require.NoError(t, h.Handle(ctx, cmd))

	stored, ok := ws.Order(o.ID().String())
	require.True(t, ok)
	assert.True(t, stored.IsArchived())
}
