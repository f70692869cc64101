package commands

import (
	"errors"

	"dashboard/internal/pkg/guard"
)

var (
	ErrReloadDriversCommandIsNotConstructed = errors.New(
		"ReloadDriversCommand must be created via NewReloadDriversCommand constructor",
	)
)

// ReloadDriversCommand refreshes the driver directory.
type ReloadDriversCommand struct {
	guard guard.ConstructorGuard
}

func NewReloadDriversCommand() ReloadDriversCommand {
	return ReloadDriversCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c ReloadDriversCommand) Validate() error {
	return c.guard.Validate(ErrReloadDriversCommandIsNotConstructed)
}
