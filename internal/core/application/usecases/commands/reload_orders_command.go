package commands

import (
	"errors"

	"dashboard/internal/pkg/guard"
)

var (
	ErrReloadOrdersCommandIsNotConstructed = errors.New(
		"ReloadOrdersCommand must be created via NewReloadOrdersCommand constructor",
	)
)

// ReloadOrdersCommand replaces the order store with the backend's current list.
// It is issued by the refresh button and by the periodic refresh job.
type ReloadOrdersCommand struct {
	guard guard.ConstructorGuard
}

func NewReloadOrdersCommand() ReloadOrdersCommand {
	return ReloadOrdersCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c ReloadOrdersCommand) Validate() error {
	return c.guard.Validate(ErrReloadOrdersCommandIsNotConstructed)
}
