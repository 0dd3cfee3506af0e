package jobs

import (
	"fmt"
	"log/slog"

	"printflow/internal/core/application/usecases/commands"
	"printflow/internal/core/application/workspace"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	dueDateScanJob     *DueDateScanJob
	snapshotRefreshJob *SnapshotRefreshJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes the scan handler and snapshot dependencies to wire up job execution.
func NewJobManager(
	scanDueDatesHandler commands.ScanDueDatesCommandHandler,
	loader snapshotLoader,
	ws *workspace.Workspace,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		dueDateScanJob:     NewDueDateScanJob(scanDueDatesHandler, logger),
		snapshotRefreshJob: NewSnapshotRefreshJob(loader, ws, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.snapshotRefreshJob.Start(); err != nil {
		return fmt.Errorf("failed to start snapshot refresh job: %w", err)
	}

	if err := jm.dueDateScanJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.snapshotRefreshJob.Stop()
		return fmt.Errorf("failed to start due date scan job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.dueDateScanJob.Stop()
	jm.snapshotRefreshJob.Stop()
}
