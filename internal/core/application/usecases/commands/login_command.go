package commands

import (
	"errors"

	"dashboard/internal/core/domain/model/account"
	"dashboard/internal/pkg/guard"
)

var (
	ErrLoginCommandIsNotConstructed = errors.New(
		"LoginCommand must be created via NewLoginCommand constructor",
	)
)

// LoginCommand starts an admin session.
//
// Example:
//
//	cmd, err := NewLoginCommand("admin@example.com", "secret")
//	if err != nil {
//	    return err // blank or malformed credentials
//	}
//	admin, err := handler.Handle(ctx, cmd)
type LoginCommand struct {
	credentials account.Credentials

	guard guard.ConstructorGuard
}

func NewLoginCommand(email, password string) (LoginCommand, error) {
	credentials, err := account.NewCredentials(email, password)
	if err != nil {
		return LoginCommand{}, err
	}

	return LoginCommand{
		credentials: credentials,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c LoginCommand) Validate() error {
	return c.guard.Validate(ErrLoginCommandIsNotConstructed)
}

func (c LoginCommand) Credentials() account.Credentials {
	return c.credentials
}
