package http

import (
	"net/http"

	"dashboard/internal/core/application/usecases/commands"
	"dashboard/internal/core/application/usecases/queries"
	"dashboard/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// Login godoc
//
//	@Summary	Log in as admin
//	@Tags		session
//	@Accept		json
//	@Produce	json
//	@Param		body	body		servers.LoginRequest	true	"Credentials"
//	@Success	200		{object}	servers.User
//	@Failure	400		{object}	servers.Error
//	@Failure	401		{object}	servers.Error
//	@Router		/api/session [post]
func (s *Server) Login(ctx echo.Context) error {
	var req servers.LoginJSONRequestBody
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewLoginCommand(req.Email, req.Password)
	if err != nil {
		return respondError(ctx, err)
	}

	user, err := s.handlers.Login.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toUser(user))
}

// GetProfile godoc
//
//	@Summary	Profile of the logged-in admin
//	@Tags		session
//	@Produce	json
//	@Success	200	{object}	servers.User
//	@Failure	401	{object}	servers.Error
//	@Router		/api/session [get]
func (s *Server) GetProfile(ctx echo.Context) error {
	user, err := s.handlers.GetProfile.Handle(ctx.Request().Context(), queries.NewGetProfileQuery())
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toUser(user))
}

// Logout godoc
//
//	@Summary	Log out and clear every piece of session state
//	@Tags		session
//	@Success	204
//	@Router		/api/session [delete]
func (s *Server) Logout(ctx echo.Context) error {
	if err := s.handlers.Logout.Handle(ctx.Request().Context(), commands.NewLogoutCommand()); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}
