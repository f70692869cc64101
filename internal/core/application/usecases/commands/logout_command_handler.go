package commands

import (
	"context"
	"log/slog"

	"dashboard/internal/core/application/state"
)

// LogoutCommandHandler tears the session down: outstanding requests are
// superseded, then the token, store, directory, detail slot and notices are cleared.
type LogoutCommandHandler struct {
	session   *state.Session
	store     *state.OrderStore
	directory *state.DriverDirectory
	detail    *state.DetailFetcher
	notices   *state.NoticeBoard
	flights   []*state.FlightRegistry
	logger    *slog.Logger
}

func NewLogoutCommandHandler(
	session *state.Session,
	store *state.OrderStore,
	directory *state.DriverDirectory,
	detail *state.DetailFetcher,
	notices *state.NoticeBoard,
	logger *slog.Logger,
	flights ...*state.FlightRegistry,
) LogoutCommandHandler {
	return LogoutCommandHandler{
		session:   session,
		store:     store,
		directory: directory,
		detail:    detail,
		notices:   notices,
		flights:   flights,
		logger:    logger.With("component", "LogoutCommandHandler"),
	}
}

func (h LogoutCommandHandler) Handle(_ context.Context, cmd LogoutCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	for _, registry := range h.flights {
		registry.CancelAll()
	}

	h.session.End()
	h.store.Reset()
	h.directory.Reset()
	h.detail.Close()
	h.notices.Reset()

	h.logger.Info("admin logged out")
	return nil
}
