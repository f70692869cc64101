package queries

import (
	"context"
	"errors"

	"dashboard/internal/core/application/state"
	"dashboard/internal/pkg/guard"
)

var (
	ErrGetNoticesQueryIsNotConstructed = errors.New(
		"GetNoticesQuery must be created via NewGetNoticesQuery constructor",
	)
)

// GetNoticesQuery takes the pending notices off the board. Each notice is
// returned exactly once.
type GetNoticesQuery struct {
	guard guard.ConstructorGuard
}

func NewGetNoticesQuery() GetNoticesQuery {
	return GetNoticesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetNoticesQuery) Validate() error {
	return q.guard.Validate(ErrGetNoticesQueryIsNotConstructed)
}

type GetNoticesQueryHandler struct {
	notices *state.NoticeBoard
}

func NewGetNoticesQueryHandler(notices *state.NoticeBoard) GetNoticesQueryHandler {
	return GetNoticesQueryHandler{notices: notices}
}

func (h GetNoticesQueryHandler) Handle(_ context.Context, query GetNoticesQuery) ([]state.Notice, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.notices.Drain(), nil
}
