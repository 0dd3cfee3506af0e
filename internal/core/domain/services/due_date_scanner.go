package services

import (
	"time"

	"printflow/internal/core/domain/model/notification"
	"printflow/internal/core/domain/model/order"
)

// DueDateScanner derives due-date alerts from the order set. It is pure:
// feeding the produced alerts into a notification feed (which deduplicates
// by alert ID) is the caller's job, so re-running a scan for the same day is
// harmless.
type DueDateScanner interface {
	// Scan returns one alert per active order that is due on the given day
	// (warning) or past it (urgent). today must be in order.DateLayout
	// format; now is the emission instant recorded on the alerts.
	Scan(orders []*order.Order, today string, now time.Time) []*notification.Notification
}

var _ DueDateScanner = (*dueDateScanner)(nil)

type dueDateScanner struct{}

// NewDueDateScanner creates the due-date scan engine.
func NewDueDateScanner() DueDateScanner {
	return &dueDateScanner{}
}

func (s *dueDateScanner) Scan(orders []*order.Order, today string, now time.Time) []*notification.Notification {
	var alerts []*notification.Notification
	for _, o := range orders {
		switch {
		case o.IsDueToday(today):
			alert, err := notification.NewDueTodayAlert(o.ID().String(), o.OR(), o.DataEntrega(), today, now)
			if err != nil {
				continue
			}
			alerts = append(alerts, alert)
		case o.IsLate(today):
			alert, err := notification.NewOverdueAlert(o.ID().String(), o.OR(), o.DataEntrega(), today, now)
			if err != nil {
				continue
			}
			alerts = append(alerts, alert)
		}
	}
	return alerts
}
