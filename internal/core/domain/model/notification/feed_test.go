package notification_test

import (
	"fmt"
	"testing"
	"time"

	"printflow/internal/core/domain/model/notification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var feedNow = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func mustNotification(t *testing.T, id, title, message string, severity notification.Severity, target string) *notification.Notification {
	t.Helper()
	n, err := notification.New(id, title, message, severity, target, "", "", nil, feedNow)
	require.NoError(t, err)
	return n
}

func TestFeed_Publish(t *testing.T) {
	t.Run("should accept new notifications", func(t *testing.T) {
		feed := notification.NewFeed()

		ok := feed.Publish(mustNotification(t, "n1", "TITULO", "corpo", notification.SeverityInfo, "u1"))

		assert.True(t, ok)
		assert.Equal(t, 1, feed.Len())
	})

	t.Run("should drop duplicates by id", func(t *testing.T) {
		feed := notification.NewFeed()
		require.True(t, feed.Publish(mustNotification(t, "n1", "A", "x", notification.SeverityInfo, "u1")))

		ok := feed.Publish(mustNotification(t, "n1", "B", "y", notification.SeverityInfo, "u2"))

		assert.False(t, ok)
		assert.Equal(t, 1, feed.Len())
	})

	t.Run("should drop duplicates by title, message and target", func(t *testing.T) {
		feed := notification.NewFeed()
		require.True(t, feed.Publish(mustNotification(t, "n1", "A", "x", notification.SeverityInfo, "u1")))

		assert.False(t, feed.Publish(mustNotification(t, "n2", "A", "x", notification.SeverityInfo, "u1")))
		assert.True(t, feed.Publish(mustNotification(t, "n3", "A", "x", notification.SeverityInfo, "u2")),
			"same text for another target is not a duplicate")
	})

	t.Run("should keep only the newest entries", func(t *testing.T) {
		feed := notification.NewFeed()
		for i := 0; i < notification.DefaultRetention+10; i++ {
			id := fmt.Sprintf("n%d", i)
			require.True(t, feed.Publish(mustNotification(t, id, "T"+id, "m"+id, notification.SeverityInfo, "u1")))
		}

		assert.Equal(t, notification.DefaultRetention, feed.Len())

		visible := feed.VisibleTo("u1")
		require.NotEmpty(t, visible)
		assert.Equal(t, fmt.Sprintf("n%d", notification.DefaultRetention+9), visible[0].ID(),
			"newest entry survives at the front")
	})

	t.Run("should reject zero-value notifications", func(t *testing.T) {
		feed := notification.NewFeed()
		assert.False(t, feed.Publish(&notification.Notification{}))
	})
}

func TestFeed_Visibility(t *testing.T) {
	t.Run("broadcasts are visible to everyone until dismissed", func(t *testing.T) {
		feed := notification.NewFeed()
		require.True(t, feed.Publish(mustNotification(t, "n1", "AVISO", "corpo", notification.SeverityInfo, notification.TargetAll)))

		assert.Len(t, feed.VisibleTo("u1"), 1)
		assert.Len(t, feed.VisibleTo("u2"), 1)

		feed.MarkRead("n1", "u1")

		assert.Empty(t, feed.VisibleTo("u1"))
		assert.Len(t, feed.VisibleTo("u2"), 1, "read state is per member")
	})

	t.Run("targeted notifications are invisible to others", func(t *testing.T) {
		feed := notification.NewFeed()
		require.True(t, feed.Publish(mustNotification(t, "n1", "T", "m", notification.SeverityInfo, "u1")))

		assert.Len(t, feed.VisibleTo("u1"), 1)
		assert.Empty(t, feed.VisibleTo("u2"))
	})

	t.Run("sorted by severity, insertion order on ties", func(t *testing.T) {
		feed := notification.NewFeed()
		require.True(t, feed.Publish(mustNotification(t, "info1", "A", "1", notification.SeverityInfo, "u1")))
		require.True(t, feed.Publish(mustNotification(t, "urgent1", "B", "2", notification.SeverityUrgent, "u1")))
		require.True(t, feed.Publish(mustNotification(t, "warn1", "C", "3", notification.SeverityWarning, "u1")))
		require.True(t, feed.Publish(mustNotification(t, "info2", "D", "4", notification.SeverityInfo, "u1")))

		visible := feed.VisibleTo("u1")
		require.Len(t, visible, 4)
		assert.Equal(t, "urgent1", visible[0].ID())
		assert.Equal(t, "warn1", visible[1].ID())
		assert.Equal(t, "info2", visible[2].ID(), "newest info first on ties")
		assert.Equal(t, "info1", visible[3].ID())
	})

	t.Run("manual alerts come before system entries of equal severity", func(t *testing.T) {
		feed := notification.NewFeed()
		require.True(t, feed.Publish(mustNotification(t, "sys", "S", "m", notification.SeverityWarning, "u1")))

		manual, err := notification.NewManualAlert("man", "atenção", "reunião às 14h", notification.SeverityWarning, "u1", "Maria", "", feedNow)
		require.NoError(t, err)
		require.True(t, feed.PublishManual(manual))

		visible := feed.VisibleTo("u1")
		require.Len(t, visible, 2)
		assert.Equal(t, "man", visible[0].ID())
		assert.Equal(t, "ATENÇÃO", visible[0].Title(), "manual titles are uppercased")
	})
}

func TestFeed_MarkAllRead(t *testing.T) {
	feed := notification.NewFeed()
	require.True(t, feed.Publish(mustNotification(t, "n1", "A", "1", notification.SeverityInfo, notification.TargetAll)))
	require.True(t, feed.Publish(mustNotification(t, "n2", "B", "2", notification.SeverityInfo, "u1")))
	require.True(t, feed.Publish(mustNotification(t, "n3", "C", "3", notification.SeverityInfo, "u2")))

	feed.MarkAllRead("u1")

	assert.Empty(t, feed.VisibleTo("u1"))
	assert.Equal(t, 0, feed.UnreadCount("u1"))
	assert.Len(t, feed.VisibleTo("u2"), 2, "u2 keeps the broadcast and their own")
}

func TestFeed_RetractAssignment(t *testing.T) {
	feed := notification.NewFeed()

	assignment, err := notification.NewAssignmentNotification("n1", "order-1", "1042", "Maria", "u1", "Impressão Digital", feedNow)
	require.NoError(t, err)
	require.True(t, feed.Publish(assignment))

	other, err := notification.NewAssignmentNotification("n2", "order-2", "1043", "Maria", "u1", "Impressão Digital", feedNow)
	require.NoError(t, err)
	require.True(t, feed.Publish(other))

	feed.RetractAssignment("order-1", "u1")

	visible := feed.VisibleTo("u1")
	require.Len(t, visible, 1)
	assert.Equal(t, "n2", visible[0].ID())
}

func TestScanAlertIdempotency(t *testing.T) {
	feed := notification.NewFeed()

	publish := func() bool {
		alert, err := notification.NewOverdueAlert("order-1", "1042", "2025-03-09", "2025-03-10", feedNow)
		require.NoError(t, err)
		return feed.PublishAlert(alert)
	}

	assert.True(t, publish())
	assert.False(t, publish(), "same order and day is deduplicated by ID")
	assert.Equal(t, 1, feed.Len())

	nextDay, err := notification.NewOverdueAlert("order-1", "1042", "2025-03-09", "2025-03-11", feedNow)
	require.NoError(t, err)
	assert.True(t, feed.PublishAlert(nextDay), "a new scan day emits a fresh alert despite identical text")
}

func TestNotificationFactories(t *testing.T) {
	t.Run("due today alert", func(t *testing.T) {
		alert, err := notification.NewDueTodayAlert("order-1", "1042", "2025-03-10", "2025-03-10", feedNow)

		require.NoError(t, err)
		assert.Equal(t, "today-order-1-2025-03-10", alert.ID())
		assert.Equal(t, "📅 ATENÇÃO: PRAZO HOJE", alert.Title())
		assert.Equal(t, notification.SeverityWarning, alert.Severity())
		assert.Equal(t, notification.TargetAll, alert.TargetUserID())
		assert.Equal(t, "2025-03-10", alert.ReferenceDate())
	})

	t.Run("overdue alert", func(t *testing.T) {
		alert, err := notification.NewOverdueAlert("order-1", "1042", "2025-03-08", "2025-03-10", feedNow)

		require.NoError(t, err)
		assert.Equal(t, "delay-order-1-2025-03-10", alert.ID())
		assert.Equal(t, "🚨 URGENTE: ATRASADO", alert.Title())
		assert.Equal(t, notification.SeverityUrgent, alert.Severity())
		assert.Contains(t, alert.Message(), "#1042")
	})

	t.Run("assignment notification carries metadata", func(t *testing.T) {
		n, err := notification.NewAssignmentNotification("n1", "order-1", "1042", "Maria", "u1", "Impressão Digital", feedNow)

		require.NoError(t, err)
		require.NotNil(t, n.Metadata())
		assert.Equal(t, notification.MetadataAssignment, n.Metadata().Kind)
		assert.Equal(t, "order-1", n.Metadata().OrderID)
		assert.Equal(t, "VER MEUS TRABALHOS", n.ActionLabel())
		assert.Equal(t, "Impressão Digital", n.TargetSector())
	})

	t.Run("password reset notification", func(t *testing.T) {
		n, err := notification.NewPasswordResetNotification("n1", "João", "joao@shop.com", feedNow)

		require.NoError(t, err)
		assert.Equal(t, notification.SeverityUrgent, n.Severity())
		assert.Equal(t, "RESETAR AGORA", n.ActionLabel())
		require.NotNil(t, n.Metadata())
		assert.Equal(t, notification.MetadataResetPassword, n.Metadata().Kind)
		assert.Equal(t, "joao@shop.com", n.Metadata().TargetUserLogin)
	})
}

func TestSeverityFromName(t *testing.T) {
	for name, expected := range map[string]notification.Severity{
		"info":    notification.SeverityInfo,
		"success": notification.SeveritySuccess,
		"warning": notification.SeverityWarning,
		"urgent":  notification.SeverityUrgent,
	} {
		severity, err := notification.SeverityFromName(name)
		require.NoError(t, err)
		assert.Equal(t, expected, severity)
		assert.Equal(t, name, severity.String())
	}

	_, err := notification.SeverityFromName("critical")
	assert.Error(t, err)
}
