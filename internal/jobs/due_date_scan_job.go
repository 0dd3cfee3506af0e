package jobs

import (
	"context"
	"log/slog"

	"printflow/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DueDateScanJob periodically derives due-today and overdue alerts from the
// order set. The scan is idempotent per order and day, so running it every
// minute costs nothing beyond the sweep itself.
type DueDateScanJob struct {
	handler commands.ScanDueDatesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDueDateScanJob creates a new job for deadline alerting.
func NewDueDateScanJob(handler commands.ScanDueDatesCommandHandler, logger *slog.Logger) *DueDateScanJob {
	return &DueDateScanJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "due_date_scan_job"),
	}
}

// Start begins the due date scan job to run every minute.
func (j *DueDateScanJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewScanDueDatesCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Due date scan job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Due date scan job started (running every minute)")
	return nil
}

// Stop stops the due date scan job.
func (j *DueDateScanJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Due date scan job stopped")
}
