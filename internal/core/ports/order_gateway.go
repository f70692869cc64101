package ports

import (
	"context"

	"dashboard/internal/core/domain/model/driver"
	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/core/domain/model/order"
)

// OrderGateway defines the backend contract for orders.
// Every method carries the session's bearer token and fails with
// the session's not-logged-in error when there is none.
type OrderGateway interface {
	// ListOrders fetches every order visible to the admin.
	ListOrders(ctx context.Context) ([]*order.Order, error)

	// GetOrder fetches the full detail of one order.
	GetOrder(ctx context.Context, id kernel.ID) (*order.Order, error)

	// ChangeStatus asks the backend to accept or decline an order.
	// Returns the status the backend reports after the change.
	ChangeStatus(ctx context.Context, id kernel.ID, status order.Status) (order.Status, error)

	// AssignDriver asks the backend to attach a driver to an order.
	// Returns the driver the backend reports, or nil when the response omits it.
	AssignDriver(ctx context.Context, id kernel.ID, driverID kernel.ID) (*driver.Driver, error)
}
