package queries

import (
	"errors"

	"dashboard/internal/pkg/guard"
)

var (
	ErrGetOverviewQueryIsNotConstructed = errors.New(
		"GetOverviewQuery must be created via NewGetOverviewQuery constructor",
	)
)

// GetOverviewQuery collects the dashboard's summary counts.
type GetOverviewQuery struct {
	guard guard.ConstructorGuard
}

func NewGetOverviewQuery() GetOverviewQuery {
	return GetOverviewQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOverviewQuery) Validate() error {
	return q.guard.Validate(ErrGetOverviewQueryIsNotConstructed)
}

// GetOverviewQueryResponse holds the count of each resource.
type GetOverviewQueryResponse struct {
	Orders     int
	Categories int
	Foods      int
	Users      int
}
