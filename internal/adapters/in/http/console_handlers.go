package http

import (
	"net/http"

	"dashboard/internal/core/application/usecases/commands"
	"dashboard/internal/core/application/usecases/queries"
	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/generated/servers"
	"dashboard/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// GetDetail godoc
//
//	@Summary	Current content of the detail slot
//	@Tags		detail
//	@Produce	json
//	@Success	200	{object}	servers.Detail
//	@Router		/api/detail [get]
func (s *Server) GetDetail(ctx echo.Context) error {
	detail, err := s.handlers.OrderDetail.Current(ctx.Request().Context(), queries.NewGetCurrentDetailQuery())
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toDetail(detail))
}

// CloseDetail godoc
//
//	@Summary	Empty the detail slot
//	@Tags		detail
//	@Success	204
//	@Router		/api/detail [delete]
func (s *Server) CloseDetail(ctx echo.Context) error {
	if err := s.handlers.CloseDetail.Handle(ctx.Request().Context(), commands.NewCloseDetailCommand()); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetDrivers godoc
//
//	@Summary	Driver directory
//	@Tags		drivers
//	@Produce	json
//	@Success	200	{array}		servers.Driver
//	@Failure	502	{object}	servers.Error	"directory failed to load"
//	@Router		/api/drivers [get]
func (s *Server) GetDrivers(ctx echo.Context) error {
	drivers, err := s.handlers.GetDrivers.Handle(ctx.Request().Context(), queries.NewGetDriversQuery())
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toDrivers(drivers))
}

// GetOverview godoc
//
//	@Summary	Counts of orders, categories, foods and users
//	@Tags		overview
//	@Produce	json
//	@Success	200	{object}	servers.Overview
//	@Failure	502	{object}	servers.Error
//	@Router		/api/overview [get]
func (s *Server) GetOverview(ctx echo.Context) error {
	overview, err := s.handlers.GetOverview.Handle(ctx.Request().Context(), queries.NewGetOverviewQuery())
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, servers.Overview{
		Orders:     overview.Orders,
		Categories: overview.Categories,
		Foods:      overview.Foods,
		Users:      overview.Users,
	})
}

// GetNotices godoc
//
//	@Summary	Drain pending notices
//	@Tags		notices
//	@Produce	json
//	@Success	200	{array}	servers.Notice
//	@Router		/api/notices [get]
func (s *Server) GetNotices(ctx echo.Context) error {
	notices, err := s.handlers.GetNotices.Handle(ctx.Request().Context(), queries.NewGetNoticesQuery())
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toNotices(notices))
}

// GetJournal godoc
//
//	@Summary	Settled requests in recording order
//	@Tags		journal
//	@Produce	json
//	@Param		order_id	query		int	false	"Only entries of this order"
//	@Success	200			{array}		servers.JournalEntry
//	@Failure	503			{object}	servers.Error	"journal disabled"
//	@Router		/api/journal [get]
func (s *Server) GetJournal(ctx echo.Context, params servers.GetJournalParams) error {
	query := queries.NewGetJournalQuery()
	if params.OrderId != nil {
		var err error
		if query, err = queries.NewGetOrderJournalQuery(kernel.ID(*params.OrderId)); err != nil {
			return respondError(ctx, err)
		}
	}

	entries, err := s.handlers.GetJournal.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toJournal(entries))
}

// GetJournalEntry godoc
//
//	@Summary	One settled request
//	@Tags		journal
//	@Produce	json
//	@Param		id	path		string	true	"Journal entry id"
//	@Success	200	{object}	servers.JournalEntry
//	@Failure	400	{object}	servers.Error
//	@Failure	404	{object}	servers.Error
//	@Failure	503	{object}	servers.Error	"journal disabled"
//	@Router		/api/journal/{id} [get]
func (s *Server) GetJournalEntry(ctx echo.Context, id openapi_types.UUID) error {
	entryID, err := kernel.UUIDFromString(id.String())
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("id", err))
	}
	query, err := queries.NewGetJournalEntryQuery(entryID)
	if err != nil {
		return respondError(ctx, err)
	}

	entry, err := s.handlers.GetJournalEntry.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toJournalEntry(entry))
}
