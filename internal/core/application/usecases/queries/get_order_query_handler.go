package queries

import (
	"context"

	"dashboard/internal/core/application/state"
)

type GetOrderQueryHandler struct {
	store         *state.OrderStore
	statusFlights *state.FlightRegistry
	driverFlights *state.FlightRegistry
}

func NewGetOrderQueryHandler(
	store *state.OrderStore,
	statusFlights *state.FlightRegistry,
	driverFlights *state.FlightRegistry,
) GetOrderQueryHandler {
	return GetOrderQueryHandler{
		store:         store,
		statusFlights: statusFlights,
		driverFlights: driverFlights,
	}
}

func (h GetOrderQueryHandler) Handle(_ context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	o, err := h.store.Get(query.OrderID())
	if err != nil {
		return OrderView{}, err
	}
	return newOrderView(o, h.statusFlights, h.driverFlights), nil
}
