package ports

import (
	"context"

	"dashboard/internal/core/domain/model/account"
	"dashboard/internal/core/domain/model/kernel"
)

// AuthGateway defines the backend contract for authentication.
type AuthGateway interface {
	// Login exchanges credentials for a bearer token and the user's profile.
	// It does not require an active session.
	Login(ctx context.Context, credentials account.Credentials) (account.User, string, error)

	// GetUser fetches one user's profile using the session token.
	GetUser(ctx context.Context, id kernel.ID) (account.User, error)
}

// TokenSource yields the bearer token of the active session.
type TokenSource interface {
	Token() (string, error)
}
