package queries_test

import (
	"testing"

	"printflow/internal/core/application/usecases/queries"
	"printflow/internal/core/application/workspace"
	"printflow/internal/core/domain/model/notification"
	"printflow/internal/core/domain/model/order"
	"printflow/internal/core/domain/model/staff"
	"printflow/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetBoardQueryHandler_Handle(t *testing.T) {
	ws := workspace.New()
	actor, err := staff.NewMember("me", "Eu", "eu@shop.com", staff.RoleOperador, "impressao", "", false)
	require.NoError(t, err)
	ws.Refresh(nil, []staff.Member{actor})
	seedOrder(t, ws, "1042", "ACME", "2025-03-20")

	handler := queries.NewGetBoardQueryHandler(ws, services.NewBoardProjector())

	t.Run("projects the snapshot for the actor", func(t *testing.T) {
		query, err := queries.NewGetBoardQuery("me", services.ViewStageBoard, services.SectorAll, "", order.PriorityUnknown)
		require.NoError(t, err)

		columns, err := handler.Handle(t.Context(), query)
		require.NoError(t, err)
		require.Len(t, columns, 6)
		assert.Equal(t, "preImpressao", columns[0].ID)
		assert.Len(t, columns[0].Groups, 1)
	})

	t.Run("unknown actor fails", func(t *testing.T) {
		query, err := queries.NewGetBoardQuery("ghost", services.ViewStageBoard, services.SectorAll, "", order.PriorityUnknown)
		require.NoError(t, err)

		_, err = handler.Handle(t.Context(), query)
		require.Error(t, err)
	})

	t.Run("zero-value query fails validation", func(t *testing.T) {
		_, err := handler.Handle(t.Context(), queries.GetBoardQuery{})
		require.Error(t, err)
	})
}

func TestGetNotificationsQueryHandler_Handle(t *testing.T) {
	ws := workspace.New()
	broadcast, err := notification.New("n1", "AVISO", "corpo", notification.SeverityInfo,
		notification.TargetAll, "", "", nil, testNow)
	require.NoError(t, err)
	require.True(t, ws.Feed().Publish(broadcast))

	handler := queries.NewGetNotificationsQueryHandler(ws)

	query, err := queries.NewGetNotificationsQuery("ana")
	require.NoError(t, err)

	response, err := handler.Handle(t.Context(), query)
	require.NoError(t, err)
	require.Len(t, response.Notifications, 1)
	assert.Equal(t, "AVISO", response.Notifications[0].Title())
	assert.Equal(t, 1, response.UnreadCount)

	ws.Feed().MarkRead("n1", "ana")
	response, err = handler.Handle(t.Context(), query)
	require.NoError(t, err)
	assert.Empty(t, response.Notifications)
	assert.Equal(t, 0, response.UnreadCount)
}
