package jobs

import (
	"context"
	"errors"
	"log/slog"

	"dashboard/internal/core/application/state"
	"dashboard/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OrderRefreshJob periodically reloads the order store.
type OrderRefreshJob struct {
	session  *state.Session
	handler  commands.ReloadOrdersCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOrderRefreshJob creates a job reloading orders on schedule.
func NewOrderRefreshJob(
	session *state.Session,
	handler commands.ReloadOrdersCommandHandler,
	schedule string,
	logger *slog.Logger,
) *OrderRefreshJob {
	return &OrderRefreshJob{
		session:  session,
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "order_refresh_job"),
	}
}

// Start schedules the job. An empty schedule leaves it disabled.
func (j *OrderRefreshJob) Start() error {
	if j.schedule == "" {
		j.logger.InfoContext(context.Background(), "Order refresh job disabled")
		return nil
	}

	if _, err := j.cron.AddFunc(j.schedule, func() { j.run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order refresh job started", "schedule", j.schedule)
	return nil
}

// Stop stops the job and waits for a running reload to finish.
func (j *OrderRefreshJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Order refresh job stopped")
}

func (j *OrderRefreshJob) run(ctx context.Context) {
	if !j.session.IsActive() {
		return
	}

	err := j.handler.Handle(ctx, commands.NewReloadOrdersCommand())
	switch {
	case errors.Is(err, state.ErrLoadDiscarded):
		j.logger.DebugContext(ctx, "Order refresh discarded after logout")
	case err != nil:
		j.logger.ErrorContext(ctx, "Order refresh failed", "error", err)
	}
}
