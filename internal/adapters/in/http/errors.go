package http

import (
	"context"
	"errors"
	"net/http"

	"dashboard/internal/adapters/out/backend"
	"dashboard/internal/core/application/state"
	"dashboard/internal/core/application/usecases/queries"
	"dashboard/internal/core/domain/model/account"
	"dashboard/internal/core/domain/model/order"
	"dashboard/internal/generated/servers"
	"dashboard/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusFor maps an application error to the HTTP status reported to the console.
func statusFor(err error) int {
	var (
		statusErr *backend.StatusError
		schemaErr *backend.SchemaError
		httpErr   *echo.HTTPError
	)

	switch {
	case errors.As(err, &httpErr):
		return httpErr.Code
	case errors.Is(err, state.ErrNotLoggedIn),
		errors.Is(err, account.ErrNotAdmin),
		errors.Is(err, backend.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, order.ErrTransitionNotAllowed),
		errors.Is(err, order.ErrAssignmentNotAllowed),
		errors.Is(err, state.ErrSuperseded):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, state.ErrStoreNotLoaded),
		errors.Is(err, queries.ErrJournalDisabled):
		return http.StatusServiceUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.As(err, &statusErr), errors.As(err, &schemaErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c echo.Context, err error) error {
	code := statusFor(err)

	message := err.Error()
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if m, ok := httpErr.Message.(string); ok {
			message = m
		}
	}
	if code == http.StatusInternalServerError {
		c.Logger().Error(err)
		message = http.StatusText(code)
	}

	return c.JSON(code, servers.Error{Code: code, Message: message})
}

// errorHandler renders errors escaping handlers and middleware in the same shape.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	if respErr := respondError(c, err); respErr != nil {
		c.Logger().Error(respErr)
	}
}
