package queries

import (
	"context"

	"dashboard/internal/core/application/state"
)

// GetOrdersQueryHandler reads the order store.
type GetOrdersQueryHandler struct {
	store         *state.OrderStore
	statusFlights *state.FlightRegistry
	driverFlights *state.FlightRegistry
}

func NewGetOrdersQueryHandler(
	store *state.OrderStore,
	statusFlights *state.FlightRegistry,
	driverFlights *state.FlightRegistry,
) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{
		store:         store,
		statusFlights: statusFlights,
		driverFlights: driverFlights,
	}
}

// Handle returns every order in load order.
func (h GetOrdersQueryHandler) Handle(_ context.Context, query GetOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.store.List()
	if err != nil {
		return nil, err
	}

	views := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, newOrderView(o, h.statusFlights, h.driverFlights))
	}
	return views, nil
}
