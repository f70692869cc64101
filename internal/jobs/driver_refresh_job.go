package jobs

import (
	"context"
	"errors"
	"log/slog"

	"dashboard/internal/core/application/state"
	"dashboard/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DriverRefreshJob periodically reloads the driver directory.
type DriverRefreshJob struct {
	session  *state.Session
	handler  commands.ReloadDriversCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewDriverRefreshJob creates a job reloading drivers on schedule.
func NewDriverRefreshJob(
	session *state.Session,
	handler commands.ReloadDriversCommandHandler,
	schedule string,
	logger *slog.Logger,
) *DriverRefreshJob {
	return &DriverRefreshJob{
		session:  session,
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "driver_refresh_job"),
	}
}

// Start schedules the job. An empty schedule leaves it disabled.
func (j *DriverRefreshJob) Start() error {
	if j.schedule == "" {
		j.logger.InfoContext(context.Background(), "Driver refresh job disabled")
		return nil
	}

	if _, err := j.cron.AddFunc(j.schedule, func() { j.run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Driver refresh job started", "schedule", j.schedule)
	return nil
}

// Stop stops the job and waits for a running reload to finish.
func (j *DriverRefreshJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Driver refresh job stopped")
}

func (j *DriverRefreshJob) run(ctx context.Context) {
	if !j.session.IsActive() {
		return
	}

	err := j.handler.Handle(ctx, commands.NewReloadDriversCommand())
	switch {
	case errors.Is(err, state.ErrLoadDiscarded):
		j.logger.DebugContext(ctx, "Driver refresh discarded after logout")
	case err != nil:
		j.logger.ErrorContext(ctx, "Driver refresh failed", "error", err)
	}
}
