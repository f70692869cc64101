// Package jobs provides scheduled background tasks for the dispatch console.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to keep the session's data fresh while an admin is logged in.
//
// # Available Jobs
//
// 1. OrderRefreshJob - Reloads the order list from the backend
// 2. DriverRefreshJob - Reloads the driver directory from the backend
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(session, reloadOrders, reloadDrivers, jobs.Schedules{
//		Orders:  "@every 30s",
//		Drivers: "@every 5m",
//	}, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules accept six-field cron expressions (with seconds) and descriptors
// such as "@every 30s". An empty schedule disables the job.
//
// # Error Handling
//
// - Runs without an active session are skipped silently
// - Reload failures are logged; the store or directory keeps its blocking error state
// - Failed job starts will stop any already running jobs
package jobs
