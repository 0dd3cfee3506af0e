package commands

import (
	"context"

	"printflow/internal/core/application/workspace"
	"printflow/internal/core/domain/services"
	"printflow/internal/core/ports"
)

// ScanDueDatesCommandHandler handles the periodic due-date sweep.
// The feed deduplicates the produced alerts by id, so each order raises at
// most one alert per day no matter how often the sweep runs.
type ScanDueDatesCommandHandler struct {
	ws        *workspace.Workspace
	scanner   services.DueDateScanner
	clock     ports.Clock
	publisher ports.RealtimePublisher
}

// NewScanDueDatesCommandHandler creates a handler for due-date sweeps.
func NewScanDueDatesCommandHandler(
	ws *workspace.Workspace,
	scanner services.DueDateScanner,
	clock ports.Clock,
	publisher ports.RealtimePublisher,
) ScanDueDatesCommandHandler {
	return ScanDueDatesCommandHandler{
		ws:        ws,
		scanner:   scanner,
		clock:     clock,
		publisher: publisher,
	}
}

// Handle processes the sweep command.
func (h *ScanDueDatesCommandHandler) Handle(ctx context.Context, cmd ScanDueDatesCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	alerts := h.scanner.Scan(h.ws.Orders(), h.clock.Today(), h.clock.Now())

	feed := h.ws.Feed()
	published := false
	for _, alert := range alerts {
		if feed.PublishAlert(alert) {
			published = true
		}
	}

	if published {
		h.publisher.PublishRefresh(ctx, ports.TopicNotifications)
	}

	return nil
}
