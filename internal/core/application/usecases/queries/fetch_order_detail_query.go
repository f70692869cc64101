package queries

import (
	"errors"

	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/pkg/guard"
)

var (
	ErrFetchOrderDetailQueryIsNotConstructed = errors.New(
		"FetchOrderDetailQuery must be created via NewFetchOrderDetailQuery constructor",
	)
	ErrGetCurrentDetailQueryIsNotConstructed = errors.New(
		"GetCurrentDetailQuery must be created via NewGetCurrentDetailQuery constructor",
	)
)

// FetchOrderDetailQuery loads one order's detail from the backend into the
// "currently viewed" slot. The order store is not touched.
type FetchOrderDetailQuery struct {
	orderID kernel.ID

	guard guard.ConstructorGuard
}

func NewFetchOrderDetailQuery(orderID kernel.ID) (FetchOrderDetailQuery, error) {
	if err := orderID.Validate(); err != nil {
		return FetchOrderDetailQuery{}, err
	}
	return FetchOrderDetailQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q FetchOrderDetailQuery) Validate() error {
	return q.guard.Validate(ErrFetchOrderDetailQueryIsNotConstructed)
}

func (q FetchOrderDetailQuery) OrderID() kernel.ID {
	return q.orderID
}

// GetCurrentDetailQuery reads the slot without fetching.
type GetCurrentDetailQuery struct {
	guard guard.ConstructorGuard
}

func NewGetCurrentDetailQuery() GetCurrentDetailQuery {
	return GetCurrentDetailQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetCurrentDetailQuery) Validate() error {
	return q.guard.Validate(ErrGetCurrentDetailQueryIsNotConstructed)
}
