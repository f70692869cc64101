package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"dashboard/internal/core/application/state"
	"dashboard/internal/core/domain/model/account"
	"dashboard/internal/core/ports"
	"dashboard/internal/pkg/errs"
)

// LoginCommandHandler exchanges credentials for a session and loads the order
// list and the driver directory.
//
// Only admins may log in. A failed list load does not fail the login: the list
// shows its blocking error state instead.
type LoginCommandHandler struct {
	auth      ports.AuthGateway
	session   *state.Session
	store     *state.OrderStore
	directory *state.DriverDirectory
	logger    *slog.Logger
}

func NewLoginCommandHandler(
	auth ports.AuthGateway,
	session *state.Session,
	store *state.OrderStore,
	directory *state.DriverDirectory,
	logger *slog.Logger,
) LoginCommandHandler {
	return LoginCommandHandler{
		auth:      auth,
		session:   session,
		store:     store,
		directory: directory,
		logger:    logger.With("component", "LoginCommandHandler"),
	}
}

// Handle logs in and returns the admin's profile.
func (h LoginCommandHandler) Handle(ctx context.Context, cmd LoginCommand) (account.User, error) {
	if err := cmd.Validate(); err != nil {
		return account.User{}, err
	}

	user, token, err := h.auth.Login(ctx, cmd.Credentials())
	if err != nil {
		return account.User{}, fmt.Errorf("login: %w", err)
	}

	if token == "" {
		return account.User{}, errs.NewValueIsRequiredErrorWithCause("token", errors.New("login response carried no token"))
	}

	if err = h.session.Start(user, token); err != nil {
		return account.User{}, err
	}

	if err = h.store.Load(ctx); err != nil {
		h.logger.Warn("orders could not be loaded after login", "error", err)
	}
	if err = h.directory.Load(ctx); err != nil {
		h.logger.Warn("drivers could not be loaded after login", "error", err)
	}

	h.logger.Info("admin logged in", "user_id", user.ID, "email", user.Email)
	return user, nil
}
