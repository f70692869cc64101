package commands

import (
	"errors"

	"dashboard/internal/pkg/guard"
)

var (
	ErrLogoutCommandIsNotConstructed = errors.New(
		"LogoutCommand must be created via NewLogoutCommand constructor",
	)
)

// LogoutCommand ends the admin session and discards all session state.
type LogoutCommand struct {
	guard guard.ConstructorGuard
}

func NewLogoutCommand() LogoutCommand {
	return LogoutCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c LogoutCommand) Validate() error {
	return c.guard.Validate(ErrLogoutCommandIsNotConstructed)
}
