package commands

import (
	"context"
	"errors"

	"dashboard/internal/core/application/state"
	"dashboard/internal/pkg/guard"
)

var (
	ErrCloseDetailCommandIsNotConstructed = errors.New(
		"CloseDetailCommand must be created via NewCloseDetailCommand constructor",
	)
)

// CloseDetailCommand empties the "currently viewed" order slot.
type CloseDetailCommand struct {
	guard guard.ConstructorGuard
}

func NewCloseDetailCommand() CloseDetailCommand {
	return CloseDetailCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c CloseDetailCommand) Validate() error {
	return c.guard.Validate(ErrCloseDetailCommandIsNotConstructed)
}

type CloseDetailCommandHandler struct {
	detail *state.DetailFetcher
}

func NewCloseDetailCommandHandler(detail *state.DetailFetcher) CloseDetailCommandHandler {
	return CloseDetailCommandHandler{detail: detail}
}

func (h CloseDetailCommandHandler) Handle(_ context.Context, cmd CloseDetailCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	h.detail.Close()
	return nil
}
