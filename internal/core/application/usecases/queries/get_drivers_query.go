package queries

import (
	"context"
	"errors"

	"dashboard/internal/core/application/state"
	"dashboard/internal/core/domain/model/driver"
	"dashboard/internal/pkg/guard"
)

var (
	ErrGetDriversQueryIsNotConstructed = errors.New(
		"GetDriversQuery must be created via NewGetDriversQuery constructor",
	)
)

// GetDriversQuery lists the drivers offered by the assignment selector.
type GetDriversQuery struct {
	guard guard.ConstructorGuard
}

func NewGetDriversQuery() GetDriversQuery {
	return GetDriversQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetDriversQuery) Validate() error {
	return q.guard.Validate(ErrGetDriversQueryIsNotConstructed)
}

type GetDriversQueryHandler struct {
	directory *state.DriverDirectory
}

func NewGetDriversQueryHandler(directory *state.DriverDirectory) GetDriversQueryHandler {
	return GetDriversQueryHandler{directory: directory}
}

func (h GetDriversQueryHandler) Handle(_ context.Context, query GetDriversQuery) ([]*driver.Driver, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.directory.List()
}
