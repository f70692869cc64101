package commands

import (
	"context"
	"errors"

	"dashboard/internal/core/application/state"
	"dashboard/internal/pkg/metrics"
)

// ReloadOrdersCommandHandler loads the order store. A failure leaves the store in
// its blocking error state until the next successful reload.
type ReloadOrdersCommandHandler struct {
	store *state.OrderStore
}

func NewReloadOrdersCommandHandler(store *state.OrderStore) ReloadOrdersCommandHandler {
	return ReloadOrdersCommandHandler{store: store}
}

func (h ReloadOrdersCommandHandler) Handle(ctx context.Context, cmd ReloadOrdersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	err := h.store.Load(ctx)
	if err != nil && !errors.Is(err, state.ErrLoadDiscarded) {
		metrics.BackendErrorsTotal.WithLabelValues("list_orders").Inc()
	}
	return err
}
