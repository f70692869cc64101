package state

import (
	"context"
	"errors"
	"sync"
	"time"

	"dashboard/internal/core/domain/model/kernel"
)

var ErrSuperseded = errors.New("request superseded by a newer one")

// Flight is one outstanding backend request for an order.
type Flight struct {
	ID      kernel.UUID
	OrderID kernel.ID

	ctx           context.Context
	cancel        context.CancelCauseFunc
	cancelTimeout context.CancelFunc
}

// Context bounds the backend call. It is cancelled with ErrSuperseded when a newer
// flight for the same order begins, and expires after the registry's timeout.
func (f *Flight) Context() context.Context {
	return f.ctx
}

func (f *Flight) release(cause error) {
	f.cancel(cause)
	f.cancelTimeout()
}

// FlightRegistry keeps at most one current flight per order. Beginning a flight
// supersedes the previous one; only the current flight may settle.
//
// Example:
//
//	flight := registry.Begin(ctx, orderID)
//	go func() {
//	    status, err := gateway.ChangeStatus(flight.Context(), orderID, next)
//	    registry.Settle(flight, func() {
//	        // reconcile or roll back the store
//	    })
//	}()
type FlightRegistry struct {
	timeout time.Duration

	mu      sync.Mutex
	flights map[kernel.ID]*Flight
}

// NewFlightRegistry creates a registry whose flights time out after timeout.
// A non-positive timeout disables the deadline.
func NewFlightRegistry(timeout time.Duration) *FlightRegistry {
	return &FlightRegistry{
		timeout: timeout,
		flights: make(map[kernel.ID]*Flight),
	}
}

// Begin starts a new current flight for orderID and cancels the previous one.
// The flight's context keeps parent's values but not its cancellation, so the
// request outlives the caller.
func (r *FlightRegistry) Begin(parent context.Context, orderID kernel.ID) *Flight {
	ctx, cancel := context.WithCancelCause(context.WithoutCancel(parent))
	timeoutCtx, cancelTimeout := ctx, context.CancelFunc(func() {})
	if r.timeout > 0 {
		timeoutCtx, cancelTimeout = context.WithTimeout(ctx, r.timeout)
	}

	flight := &Flight{
		ID:            kernel.NewUUID(),
		OrderID:       orderID,
		ctx:           timeoutCtx,
		cancel:        cancel,
		cancelTimeout: cancelTimeout,
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if prev, ok := r.flights[orderID]; ok {
		prev.release(ErrSuperseded)
	}
	r.flights[orderID] = flight
	return flight
}

// Settle ends flight. When it is still the current flight for its order, commit
// runs while the registry is locked and Settle returns true. A superseded flight
// settles without running commit.
func (r *FlightRegistry) Settle(flight *Flight, commit func()) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.flights[flight.OrderID]
	if !ok || current != flight {
		flight.release(ErrSuperseded)
		return false
	}

	delete(r.flights, flight.OrderID)
	if commit != nil {
		commit()
	}
	flight.release(nil)
	return true
}

// Busy reports whether orderID has an outstanding flight.
func (r *FlightRegistry) Busy(orderID kernel.ID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.flights[orderID]
	return ok
}

// CancelAll supersedes every outstanding flight.
func (r *FlightRegistry) CancelAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, flight := range r.flights {
		flight.release(ErrSuperseded)
		delete(r.flights, id)
	}
}
