package http

import (
	"dashboard/internal/core/application/state"
	"dashboard/internal/core/application/usecases/commands"
	"dashboard/internal/core/application/usecases/queries"
	"dashboard/internal/generated/servers"
)

var _ servers.ServerInterface = (*Server)(nil)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	Login        commands.LoginCommandHandler
	Logout       commands.LogoutCommandHandler
	ReloadOrders commands.ReloadOrdersCommandHandler
	ChangeStatus *commands.ChangeOrderStatusCommandHandler
	AssignDriver *commands.AssignDriverCommandHandler
	CloseDetail  commands.CloseDetailCommandHandler

	GetProfile  queries.GetProfileQueryHandler
	GetOrders   queries.GetOrdersQueryHandler
	GetOrder    queries.GetOrderQueryHandler
	OrderDetail queries.OrderDetailQueryHandler
	GetDrivers  queries.GetDriversQueryHandler
	GetOverview queries.GetOverviewQueryHandler
	GetNotices  queries.GetNoticesQueryHandler
	GetJournal  queries.GetJournalQueryHandler

	GetJournalEntry queries.GetJournalEntryQueryHandler
}

// Server implements servers.ServerInterface. It translates HTTP requests into
// commands and queries and their results into the generated API types.
type Server struct {
	session  *state.Session
	handlers Handlers
}

// NewServer creates a server. session gates every route except login.
func NewServer(session *state.Session, handlers Handlers) *Server {
	return &Server{
		session:  session,
		handlers: handlers,
	}
}
