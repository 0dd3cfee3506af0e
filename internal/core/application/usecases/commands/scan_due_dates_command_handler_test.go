package commands_test

import (
	"testing"
	"time"

	"printflow/internal/core/application/usecases/commands"
	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/core/domain/model/order"
	"printflow/internal/core/domain/services"
	"printflow/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanDueDatesCommandHandler_Handle(t *testing.T) {
	newDatedOrder := func(t *testing.T, dataEntrega string) *order.Order {
		t.Helper()
		o, err := order.NewOrder(kernel.NewUUID(), "1042", "1", "ACME", "Paulo", "Banner", dataEntrega,
			order.DefaultPriority(), "boss", "Chefe", testNow)
		require.NoError(t, err)
		return o
	}

	t.Run("publishes one alert per order and day", func(t *testing.T) {
		ctx := t.Context()
		ws := newTestWorkspace(t)
		ws.Put(newDatedOrder(t, "2025-03-10"))
		ws.Put(newDatedOrder(t, "2025-03-08"))

		publisher := &recordingPublisher{}
		h := commands.NewScanDueDatesCommandHandler(ws, services.NewDueDateScanner(), fixedClock{testNow}, publisher)

		require.NoError(t, h.Handle(ctx, commands.NewScanDueDatesCommand()))

		assert.Equal(t, 2, ws.Feed().Len())
		assert.True(t, publisher.refreshed(ports.TopicNotifications))
	})

	t.Run("re-running the same day adds nothing", func(t *testing.T) {
		ctx := t.Context()
		ws := newTestWorkspace(t)
		ws.Put(newDatedOrder(t, "2025-03-08"))

		h := commands.NewScanDueDatesCommandHandler(ws, services.NewDueDateScanner(), fixedClock{testNow}, &recordingPublisher{})
		require.NoError(t, h.Handle(ctx, commands.NewScanDueDatesCommand()))
		require.NoError(t, h.Handle(ctx, commands.NewScanDueDatesCommand()))

		assert.Equal(t, 1, ws.Feed().Len())
	})

	t.Run("a new day raises fresh alerts", func(t *testing.T) {
		ctx := t.Context()
		ws := newTestWorkspace(t)
		ws.Put(newDatedOrder(t, "2025-03-08"))

		h := commands.NewScanDueDatesCommandHandler(ws, services.NewDueDateScanner(), fixedClock{testNow}, &recordingPublisher{})
		require.NoError(t, h.Handle(ctx, commands.NewScanDueDatesCommand()))

		nextDay := commands.NewScanDueDatesCommandHandler(
			ws, services.NewDueDateScanner(), fixedClock{testNow.Add(24 * time.Hour)}, &recordingPublisher{},
		)
		require.NoError(t, nextDay.Handle(ctx, commands.NewScanDueDatesCommand()))

		assert.Equal(t, 2, ws.Feed().Len())
	})
}
