package jobs

import (
	"fmt"
	"log/slog"

	"dashboard/internal/core/application/state"
	"dashboard/internal/core/application/usecases/commands"
)

// Schedules holds the cron schedule of each job; empty disables a job.
type Schedules struct {
	Orders  string
	Drivers string
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderRefreshJob  *OrderRefreshJob
	driverRefreshJob *DriverRefreshJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	session *state.Session,
	reloadOrders commands.ReloadOrdersCommandHandler,
	reloadDrivers commands.ReloadDriversCommandHandler,
	schedules Schedules,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		orderRefreshJob:  NewOrderRefreshJob(session, reloadOrders, schedules.Orders, logger),
		driverRefreshJob: NewDriverRefreshJob(session, reloadDrivers, schedules.Drivers, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orderRefreshJob.Start(); err != nil {
		return fmt.Errorf("failed to start order refresh job: %w", err)
	}

	if err := jm.driverRefreshJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.orderRefreshJob.Stop()
		return fmt.Errorf("failed to start driver refresh job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.driverRefreshJob.Stop()
	jm.orderRefreshJob.Stop()
}
