package queries

import (
	"context"

	"dashboard/internal/core/application/state"
)

// OrderDetailQueryHandler serves both detail queries from the same slot.
type OrderDetailQueryHandler struct {
	fetcher *state.DetailFetcher
}

func NewOrderDetailQueryHandler(fetcher *state.DetailFetcher) OrderDetailQueryHandler {
	return OrderDetailQueryHandler{fetcher: fetcher}
}

// Fetch loads the detail. A backend failure is returned and also left in the
// slot as its failed state.
func (h OrderDetailQueryHandler) Fetch(ctx context.Context, query FetchOrderDetailQuery) (state.Detail, error) {
	if err := query.Validate(); err != nil {
		return state.Detail{}, err
	}
	return h.fetcher.Fetch(ctx, query.OrderID())
}

func (h OrderDetailQueryHandler) Current(_ context.Context, query GetCurrentDetailQuery) (state.Detail, error) {
	if err := query.Validate(); err != nil {
		return state.Detail{}, err
	}
	return h.fetcher.Current(), nil
}
