package commands

import (
	"context"
	"errors"

	"dashboard/internal/core/application/state"
	"dashboard/internal/pkg/metrics"
)

// ReloadDriversCommandHandler loads the driver directory.
type ReloadDriversCommandHandler struct {
	directory *state.DriverDirectory
}

func NewReloadDriversCommandHandler(directory *state.DriverDirectory) ReloadDriversCommandHandler {
	return ReloadDriversCommandHandler{directory: directory}
}

func (h ReloadDriversCommandHandler) Handle(ctx context.Context, cmd ReloadDriversCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	err := h.directory.Load(ctx)
	if err != nil && !errors.Is(err, state.ErrLoadDiscarded) {
		metrics.BackendErrorsTotal.WithLabelValues("list_drivers").Inc()
	}
	return err
}
