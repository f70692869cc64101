package commands

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"dashboard/internal/core/application/state"
	"dashboard/internal/core/domain/model/journal"
	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/core/domain/model/order"
	"dashboard/internal/core/ports"
	"dashboard/internal/pkg/metrics"
)

// ChangeOrderStatusCommandHandler mediates every status change of an order.
//
// Handle validates the transition against the stored order, applies the new
// status to the store at once and returns. The backend request runs in the
// background under the flight registry:
//   - on success the store takes the status the backend reports
//   - on failure the store gets back the status captured at call time and an
//     error notice is posted; a driver the restored status cannot hold is dropped
//   - a request superseded by a newer one for the same order changes nothing
//
// Example:
//
//	handler := NewChangeOrderStatusCommandHandler(store, gateway, flights, notices, journalRepo, logger)
//	cmd, _ := NewChangeOrderStatusCommand(7, order.Accepted)
//
//	ticket, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, order.ErrTransitionNotAllowed) {
//	    // the status was not among the order's admin choices
//	}
type ChangeOrderStatusCommandHandler struct {
	mu sync.Mutex

	store    *state.OrderStore
	gateway  ports.OrderGateway
	flights  *state.FlightRegistry
	notices  *state.NoticeBoard
	recorder journalRecorder
	logger   *slog.Logger
}

// NewChangeOrderStatusCommandHandler creates the status change handler.
// journalRepo may be nil to disable the journal.
func NewChangeOrderStatusCommandHandler(
	store *state.OrderStore,
	gateway ports.OrderGateway,
	flights *state.FlightRegistry,
	notices *state.NoticeBoard,
	journalRepo ports.JournalRepository,
	logger *slog.Logger,
) *ChangeOrderStatusCommandHandler {
	logger = logger.With("component", "ChangeOrderStatusCommandHandler")
	return &ChangeOrderStatusCommandHandler{
		store:    store,
		gateway:  gateway,
		flights:  flights,
		notices:  notices,
		recorder: journalRecorder{repo: journalRepo, logger: logger},
		logger:   logger,
	}
}

// Handle applies the status change optimistically and starts the backend request.
// An error means nothing was changed.
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) (*Ticket, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	current, err := h.store.Get(cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = current.ValidateStatusChange(cmd.Status()); err != nil {
		return nil, err
	}

	patch := order.NewPatch().WithStatus(cmd.Status())
	applied, err := current.Apply(patch)
	if err != nil {
		return nil, err
	}

	flight := h.flights.Begin(ctx, cmd.OrderID())
	if _, err = h.store.Patch(cmd.OrderID(), patch); err != nil {
		h.flights.Settle(flight, nil)
		return nil, err
	}

	metrics.FlightsStartedTotal.WithLabelValues(string(journal.ActionStatusChange)).Inc()

	ticket := newTicket(flight.ID, cmd.OrderID(), applied)
	go h.send(flight, ticket, cmd, current.Status())

	return ticket, nil
}

func (h *ChangeOrderStatusCommandHandler) send(
	flight *state.Flight,
	ticket *Ticket,
	cmd ChangeOrderStatusCommand,
	previous order.Status,
) {
	id := cmd.OrderID()

	reported, err := h.gateway.ChangeStatus(flight.Context(), id, cmd.Status())
	if err != nil {
		metrics.BackendErrorsTotal.WithLabelValues("change_status").Inc()
	}

	settled := h.flights.Settle(flight, func() {
		if err != nil {
			h.patch(id, rollbackPatch(previous))
			h.notices.Error(id, fmt.Sprintf("Could not change order %s to %s: %v", id, cmd.Status(), err))
			return
		}

		h.patch(id, order.NewPatch().WithStatus(reported))
		h.notices.Success(id, fmt.Sprintf("Order %s is now %s", id, reported))
	})

	target := cmd.Status()
	if settled && err == nil {
		target = reported
	}
	h.recorder.record(flight.Context(), journal.NewEntry(
		flight.ID, id, journal.ActionStatusChange, previous, target, nil, outcomeOf(settled, err), err,
	))

	if !settled {
		err = state.ErrSuperseded
	}
	snapshot, _ := h.store.Get(id)
	ticket.resolve(snapshot, err)
}

// patch writes to the store during settlement; a refused patch is logged because
// settlement has no caller to report to.
func (h *ChangeOrderStatusCommandHandler) patch(id kernel.ID, p order.Patch) {
	if _, err := h.store.Patch(id, p); err != nil {
		h.logger.Warn("failed to settle order status", "order_id", id, "error", err)
	}
}

// rollbackPatch restores previous and unassigns any driver it forbids.
func rollbackPatch(previous order.Status) order.Patch {
	p := order.NewPatch().WithStatus(previous)
	if previous.ValidateCanHaveDriver(true) != nil {
		p = p.WithDriver(nil)
	}
	return p
}
