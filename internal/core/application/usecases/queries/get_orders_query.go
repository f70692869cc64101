package queries

import (
	"errors"

	"dashboard/internal/core/application/state"
	"dashboard/internal/core/domain/model/order"
	"dashboard/internal/pkg/guard"
)

var (
	ErrGetOrdersQueryIsNotConstructed = errors.New(
		"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
	)
)

// GetOrdersQuery lists the session's orders with the controls the UI may offer.
//
// Example:
//
//	query := NewGetOrdersQuery()
//	handler := NewGetOrdersQueryHandler(store, statusFlights, driverFlights)
//
//	views, err := handler.Handle(ctx, query)
//	if errors.Is(err, state.ErrStoreNotLoaded) {
//	    // show the blocking error state
//	}
type GetOrdersQuery struct {
	guard guard.ConstructorGuard
}

func NewGetOrdersQuery() GetOrdersQuery {
	return GetOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// OrderView is an order plus its affordances.
//
// AllowedStatuses is empty unless the order is pending. CanAssignDriver is true
// only for accepted or assigning orders without a driver and without an
// outstanding status change. The busy flags report an outstanding backend
// request of each kind.
type OrderView struct {
	Order           *order.Order
	AllowedStatuses []order.Status
	CanAssignDriver bool
	StatusBusy      bool
	DriverBusy      bool
}

func newOrderView(o *order.Order, statusFlights, driverFlights *state.FlightRegistry) OrderView {
	statusBusy := statusFlights.Busy(o.ID())
	return OrderView{
		Order:           o,
		AllowedStatuses: o.AdminChoices(),
		CanAssignDriver: o.CanAssignDriver() && !statusBusy,
		StatusBusy:      statusBusy,
		DriverBusy:      driverFlights.Busy(o.ID()),
	}
}
