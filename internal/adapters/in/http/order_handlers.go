package http

import (
	"net/http"

	"dashboard/internal/core/application/usecases/commands"
	"dashboard/internal/core/application/usecases/queries"
	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/core/domain/model/order"
	"dashboard/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// GetOrders godoc
//
//	@Summary	Loaded orders with their affordances
//	@Tags		orders
//	@Produce	json
//	@Success	200	{array}		servers.Order
//	@Failure	503	{object}	servers.Error	"orders are not loaded"
//	@Router		/api/orders [get]
func (s *Server) GetOrders(ctx echo.Context) error {
	views, err := s.handlers.GetOrders.Handle(ctx.Request().Context(), queries.NewGetOrdersQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]*servers.Order, 0, len(views))
	for _, v := range views {
		response = append(response, toOrderView(v))
	}
	return ctx.JSON(http.StatusOK, response)
}

// ReloadOrders godoc
//
//	@Summary	Reload the order list from the backend
//	@Tags		orders
//	@Success	204
//	@Failure	502	{object}	servers.Error
//	@Router		/api/orders/reload [post]
func (s *Server) ReloadOrders(ctx echo.Context) error {
	if err := s.handlers.ReloadOrders.Handle(ctx.Request().Context(), commands.NewReloadOrdersCommand()); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetOrder godoc
//
//	@Summary	One order from the loaded list
//	@Tags		orders
//	@Produce	json
//	@Param		id	path		int	true	"Order id"
//	@Success	200	{object}	servers.Order
//	@Failure	404	{object}	servers.Error
//	@Router		/api/orders/{id} [get]
func (s *Server) GetOrder(ctx echo.Context, id servers.OrderID) error {
	query, err := queries.NewGetOrderQuery(kernel.ID(id))
	if err != nil {
		return respondError(ctx, err)
	}

	view, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrderView(view))
}

// ChangeOrderStatus godoc
//
//	@Summary	Accept or decline an order
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int					true	"Order id"
//	@Param		wait	query		bool				false	"Wait for the backend to settle the request"
//	@Param		body	body		servers.ChangeStatusRequest	true	"Requested status"
//	@Success	200		{object}	servers.Ticket				"settled"
//	@Success	202		{object}	servers.Ticket				"applied, settling"
//	@Failure	409		{object}	servers.Error
//	@Router		/api/orders/{id}/status [patch]
func (s *Server) ChangeOrderStatus(ctx echo.Context, id servers.OrderID, params servers.ChangeOrderStatusParams) error {
	var req servers.ChangeOrderStatusJSONRequestBody
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	status, err := order.ParseStatus(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(kernel.ID(id), status)
	if err != nil {
		return respondError(ctx, err)
	}

	ticket, err := s.handlers.ChangeStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}
	return s.respondTicket(ctx, ticket, params.Wait)
}

// AssignDriver godoc
//
//	@Summary	Assign a driver to an order
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int					true	"Order id"
//	@Param		wait	query		bool				false	"Wait for the backend to settle the request"
//	@Param		body	body		servers.AssignDriverRequest	true	"Driver"
//	@Success	200		{object}	servers.Ticket				"settled"
//	@Success	202		{object}	servers.Ticket				"applied, settling"
//	@Failure	409		{object}	servers.Error
//	@Router		/api/orders/{id}/driver [patch]
func (s *Server) AssignDriver(ctx echo.Context, id servers.OrderID, params servers.AssignDriverParams) error {
	var req servers.AssignDriverJSONRequestBody
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewAssignDriverCommand(kernel.ID(id), req.DriverId)
	if err != nil {
		return respondError(ctx, err)
	}

	ticket, err := s.handlers.AssignDriver.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}
	return s.respondTicket(ctx, ticket, params.Wait)
}

// FetchOrderDetail godoc
//
//	@Summary	Load one order's detail into the detail slot
//	@Tags		detail
//	@Produce	json
//	@Param		id	path		int	true	"Order id"
//	@Success	200	{object}	servers.Detail
//	@Failure	404	{object}	servers.Detail	"failed slot"
//	@Failure	502	{object}	servers.Detail	"failed slot"
//	@Router		/api/orders/{id}/detail [get]
func (s *Server) FetchOrderDetail(ctx echo.Context, id servers.OrderID) error {
	query, err := queries.NewFetchOrderDetailQuery(kernel.ID(id))
	if err != nil {
		return respondError(ctx, err)
	}

	detail, err := s.handlers.OrderDetail.Fetch(ctx.Request().Context(), query)
	if err != nil {
		// The failed slot doubles as the error body.
		return ctx.JSON(statusFor(err), toDetail(detail))
	}
	return ctx.JSON(http.StatusOK, toDetail(detail))
}

// respondTicket answers 202 with the optimistic order, or waits for the
// settlement when wait is set.
func (s *Server) respondTicket(ctx echo.Context, ticket *commands.Ticket, wait *servers.Wait) error {
	if wait == nil || !*wait {
		return ctx.JSON(http.StatusAccepted, toTicket(ticket))
	}

	settled, err := ticket.Wait(ctx.Request().Context())
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, servers.Ticket{
		FlightId: ticket.FlightID().Bytes(),
		Order:    toOrder(settled),
		Settled:  true,
	})
}
