package commands

import (
	"context"
	"sync"

	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/core/domain/model/order"
)

// Ticket tracks a request that was applied optimistically and is still settling
// against the backend.
//
// Example:
//
//	ticket, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err // precondition failed, nothing changed
//	}
//	settled, err := ticket.Wait(ctx)
//	if errors.Is(err, state.ErrSuperseded) {
//	    // a newer request for the same order took over
//	}
type Ticket struct {
	flightID kernel.UUID
	orderID  kernel.ID
	applied  *order.Order

	once    sync.Once
	done    chan struct{}
	settled *order.Order
	err     error
}

func newTicket(flightID kernel.UUID, orderID kernel.ID, applied *order.Order) *Ticket {
	return &Ticket{
		flightID: flightID,
		orderID:  orderID,
		applied:  applied.Clone(),
		done:     make(chan struct{}),
	}
}

func (t *Ticket) FlightID() kernel.UUID {
	return t.flightID
}

func (t *Ticket) OrderID() kernel.ID {
	return t.orderID
}

// Applied returns the order as it looked right after the optimistic update.
func (t *Ticket) Applied() *order.Order {
	return t.applied.Clone()
}

// Done is closed once the request has settled.
func (t *Ticket) Done() <-chan struct{} {
	return t.done
}

// Err returns the outcome error; it is nil until Done is closed and on success.
func (t *Ticket) Err() error {
	select {
	case <-t.done:
		return t.err
	default:
		return nil
	}
}

// Wait blocks until the request settles or ctx ends. On settlement it returns the
// order as the store holds it afterwards, which is nil when the store no longer
// has the order.
func (t *Ticket) Wait(ctx context.Context) (*order.Order, error) {
	select {
	case <-t.done:
		return t.settled.Clone(), t.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (t *Ticket) resolve(settled *order.Order, err error) {
	t.once.Do(func() {
		t.settled = settled
		t.err = err
		close(t.done)
	})
}
