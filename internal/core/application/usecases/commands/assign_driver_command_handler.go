package commands

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"dashboard/internal/core/application/state"
	"dashboard/internal/core/domain/model/driver"
	"dashboard/internal/core/domain/model/journal"
	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/core/domain/model/order"
	"dashboard/internal/core/domain/services"
	"dashboard/internal/core/ports"
	"dashboard/internal/pkg/metrics"
)

// AssignDriverCommandHandler assigns drivers to orders.
//
// Handle checks that the order is accepted or assigning, has no driver and has no
// status change waiting on the backend, then
// writes the chosen driver (from the directory, or a placeholder carrying only the
// id) and the derived status to the store before the backend is asked. What a
// failed request does to that state is decided by the AssignmentFailurePolicy.
//
// Example:
//
//	handler := NewAssignDriverCommandHandler(
//	    store, directory, gateway, flights, statusFlights, notices, journalRepo, KeepOnFailure, logger,
//	)
//	cmd, _ := NewAssignDriverCommand(9, 3)
//
//	ticket, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, order.ErrAssignmentNotAllowed) {
//	    // pending, declined, already assigned or status change outstanding
//	}
type AssignDriverCommandHandler struct {
	mu sync.Mutex

	store      *state.OrderStore
	directory  services.DriverLookup
	gateway    ports.OrderGateway
	flights    *state.FlightRegistry
	status     *state.FlightRegistry
	notices    *state.NoticeBoard
	dispatcher services.DriverDispatcher
	policy     AssignmentFailurePolicy
	recorder   journalRecorder
	logger     *slog.Logger
}

// NewAssignDriverCommandHandler creates the assignment handler. statusFlights is
// the registry of the status change handler. journalRepo may be nil to disable
// the journal; an empty policy means KeepOnFailure.
func NewAssignDriverCommandHandler(
	store *state.OrderStore,
	directory services.DriverLookup,
	gateway ports.OrderGateway,
	flights *state.FlightRegistry,
	statusFlights *state.FlightRegistry,
	notices *state.NoticeBoard,
	journalRepo ports.JournalRepository,
	policy AssignmentFailurePolicy,
	logger *slog.Logger,
) *AssignDriverCommandHandler {
	if policy == "" {
		policy = KeepOnFailure
	}
	logger = logger.With("component", "AssignDriverCommandHandler")
	return &AssignDriverCommandHandler{
		store:      store,
		directory:  directory,
		gateway:    gateway,
		flights:    flights,
		status:     statusFlights,
		notices:    notices,
		dispatcher: services.NewDriverDispatcher(),
		policy:     policy,
		recorder:   journalRecorder{repo: journalRepo, logger: logger},
		logger:     logger,
	}
}

// Handle applies the assignment optimistically and starts the backend request.
// An error means nothing was changed.
func (h *AssignDriverCommandHandler) Handle(ctx context.Context, cmd AssignDriverCommand) (*Ticket, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	current, err := h.store.Get(cmd.OrderID())
	if err != nil {
		return nil, err
	}

	// Status flights begin before their optimistic write.
	if h.status.Busy(cmd.OrderID()) {
		return nil, fmt.Errorf("%w: status change of order %s is still pending",
			order.ErrAssignmentNotAllowed, cmd.OrderID())
	}

	patch, err := h.dispatcher.Dispatch(current, cmd.DriverID(), h.directory)
	if err != nil {
		return nil, err
	}

	applied, err := current.Apply(patch)
	if err != nil {
		return nil, err
	}

	flight := h.flights.Begin(ctx, cmd.OrderID())
	if _, err = h.store.Patch(cmd.OrderID(), patch); err != nil {
		h.flights.Settle(flight, nil)
		return nil, err
	}

	metrics.FlightsStartedTotal.WithLabelValues(string(journal.ActionDriverAssignment)).Inc()

	ticket := newTicket(flight.ID, cmd.OrderID(), applied)
	go h.send(flight, ticket, cmd, current, applied.Status())

	return ticket, nil
}

func (h *AssignDriverCommandHandler) send(
	flight *state.Flight,
	ticket *Ticket,
	cmd AssignDriverCommand,
	captured *order.Order,
	target order.Status,
) {
	id := cmd.OrderID()

	reported, err := h.gateway.AssignDriver(flight.Context(), id, cmd.DriverID())
	if err != nil {
		metrics.BackendErrorsTotal.WithLabelValues("assign_driver").Inc()
	}

	settled := h.flights.Settle(flight, func() {
		if err != nil {
			h.notices.Error(id, fmt.Sprintf("Could not assign driver %s to order %s: %v", cmd.DriverID(), id, err))
			if h.policy == RollbackOnFailure && h.stillApplied(id, target) {
				h.patch(id, order.NewPatch().
					WithDriver(captured.Driver()).
					WithStatus(captured.Status()))
			}
			return
		}

		if h.policy == RollbackOnFailure && reported != nil {
			h.patch(id, order.NewPatch().WithDriver(reported))
		}
		h.notices.Success(id, fmt.Sprintf("Driver %s assigned to order %s", driverLabel(reported, cmd.DriverID()), id))
	})

	driverID := cmd.DriverID()
	h.recorder.record(flight.Context(), journal.NewEntry(
		flight.ID, id, journal.ActionDriverAssignment, captured.Status(), target, &driverID, outcomeOf(settled, err), err,
	))

	if !settled {
		err = state.ErrSuperseded
	}
	snapshot, _ := h.store.Get(id)
	ticket.resolve(snapshot, err)
}

func (h *AssignDriverCommandHandler) patch(id kernel.ID, p order.Patch) {
	if _, err := h.store.Patch(id, p); err != nil {
		h.logger.Warn("failed to settle driver assignment", "order_id", id, "error", err)
	}
}

// stillApplied reports whether the stored order still carries the optimistic status.
func (h *AssignDriverCommandHandler) stillApplied(id kernel.ID, target order.Status) bool {
	current, err := h.store.Get(id)
	return err == nil && current.Status() == target
}

func driverLabel(d *driver.Driver, fallback kernel.ID) string {
	if d == nil || d.IsPlaceholder() {
		return fallback.String()
	}
	return d.Name()
}
