package jobs

import (
	"context"
	"log/slog"

	"printflow/internal/core/application/workspace"
	"printflow/internal/core/domain/model/order"
	"printflow/internal/core/domain/model/staff"

	"github.com/robfig/cron/v3"
)

// snapshotLoader reads the persisted order set and roster.
type snapshotLoader interface {
	Load(ctx context.Context) ([]*order.Order, []staff.Member, error)
}

// SnapshotRefreshJob polls the database and replaces the in-memory workspace
// snapshot, picking up rows written by other replicas or directly in the
// database. Local mutations between two ticks win until the next tick
// (last-write-wins).
type SnapshotRefreshJob struct {
	loader snapshotLoader
	ws     *workspace.Workspace
	cron   *cron.Cron
	logger *slog.Logger
}

// NewSnapshotRefreshJob creates a new job for workspace refreshing.
func NewSnapshotRefreshJob(loader snapshotLoader, ws *workspace.Workspace, logger *slog.Logger) *SnapshotRefreshJob {
	return &SnapshotRefreshJob{
		loader: loader,
		ws:     ws,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "snapshot_refresh_job"),
	}
}

// Start begins the snapshot refresh job to run every 30 seconds.
func (j *SnapshotRefreshJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()

		orders, members, loadErr := j.loader.Load(ctx)
		if loadErr != nil {
			// A failed poll never blocks local work; the stale snapshot
			// stays in place until the next successful tick.
			j.logger.ErrorContext(ctx, "Snapshot refresh failed", "error", loadErr)
			return
		}

		j.ws.Refresh(orders, members)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Snapshot refresh job started (running every 30 seconds)")
	return nil
}

// Stop stops the snapshot refresh job.
func (j *SnapshotRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Snapshot refresh job stopped")
}
