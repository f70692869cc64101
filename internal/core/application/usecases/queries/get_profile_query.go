package queries

import (
	"context"
	"errors"
	"fmt"

	"dashboard/internal/core/application/state"
	"dashboard/internal/core/domain/model/account"
	"dashboard/internal/core/ports"
	"dashboard/internal/pkg/guard"
)

var (
	ErrGetProfileQueryIsNotConstructed = errors.New(
		"GetProfileQuery must be created via NewGetProfileQuery constructor",
	)
)

// GetProfileQuery fetches the logged-in admin's profile from the backend.
type GetProfileQuery struct {
	guard guard.ConstructorGuard
}

func NewGetProfileQuery() GetProfileQuery {
	return GetProfileQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetProfileQuery) Validate() error {
	return q.guard.Validate(ErrGetProfileQueryIsNotConstructed)
}

type GetProfileQueryHandler struct {
	session *state.Session
	auth    ports.AuthGateway
}

func NewGetProfileQueryHandler(session *state.Session, auth ports.AuthGateway) GetProfileQueryHandler {
	return GetProfileQueryHandler{session: session, auth: auth}
}

// Handle returns the backend's current profile of the session's admin.
// Fails with state.ErrNotLoggedIn when there is no session.
func (h GetProfileQueryHandler) Handle(ctx context.Context, query GetProfileQuery) (account.User, error) {
	if err := query.Validate(); err != nil {
		return account.User{}, err
	}

	admin, err := h.session.Admin()
	if err != nil {
		return account.User{}, err
	}

	user, err := h.auth.GetUser(ctx, admin.ID)
	if err != nil {
		return account.User{}, fmt.Errorf("get profile: %w", err)
	}
	return user, nil
}
