// Package jobs provides scheduled background tasks for the production tracker.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle the periodic operations the service depends on.
//
// # Available Jobs
//
// 1. DueDateScanJob - Runs every minute to raise due-today and overdue alerts
// 2. SnapshotRefreshJob - Runs every 30 seconds to reload the workspace from the database
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(scanHandler, loader, ws, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
//   - The scan job logs failures; the scan itself is idempotent per order and day
//   - A failed snapshot poll keeps the previous snapshot; local work continues
//   - Failed job starts will stop any already running jobs
package jobs
