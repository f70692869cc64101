package backend

import (
	"context"
	"net/http"

	"dashboard/internal/core/domain/model/driver"
	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/core/domain/model/order"
)

const (
	pathOrders       = "/api/orders/fetch-order-details"
	pathOrder        = "/api/orders/fetch-order-detail-by-id/{id}"
	pathOrderStatus  = "/api/orders/accept-or-declined/{id}"
	pathAssignDriver = "/api/orders/assign-a-driver/{id}"
)

// ListOrders fetches every order visible to the session.
func (c *Client) ListOrders(ctx context.Context) ([]*order.Order, error) {
	var resp orderListResponse
	if err := c.do(ctx, request{method: http.MethodGet, path: pathOrders, schema: schemaOrderList}, &resp); err != nil {
		return nil, err
	}
	return ordersToDomain(resp.Data)
}

// GetOrder fetches the detailed representation of one order.
func (c *Client) GetOrder(ctx context.Context, id kernel.ID) (*order.Order, error) {
	path, err := pathWithID(pathOrder, id)
	if err != nil {
		return nil, err
	}

	var resp orderResponse
	if err = c.do(ctx, request{method: http.MethodGet, path: path, schema: schemaOrder}, &resp); err != nil {
		return nil, err
	}
	return resp.Data.toDomain()
}

// ChangeStatus asks the backend to move the order to status and returns the
// status the backend reports afterwards.
func (c *Client) ChangeStatus(ctx context.Context, id kernel.ID, status order.Status) (order.Status, error) {
	path, err := pathWithID(pathOrderStatus, id)
	if err != nil {
		return 0, err
	}

	var resp statusChangeResponse
	req := request{
		method: http.MethodPatch,
		path:   path,
		body:   statusChangeRequest{Status: status.String()},
		schema: schemaStatusChange,
	}
	if err = c.do(ctx, req, &resp); err != nil {
		return 0, err
	}
	return order.ParseStatus(resp.Order.Status)
}

// AssignDriver asks the backend to assign driverID to the order. The returned
// driver is nil when the backend omits it.
func (c *Client) AssignDriver(ctx context.Context, id kernel.ID, driverID kernel.ID) (*driver.Driver, error) {
	path, err := pathWithID(pathAssignDriver, id)
	if err != nil {
		return nil, err
	}

	var resp assignDriverResponse
	req := request{
		method: http.MethodPatch,
		path:   path,
		body:   assignDriverRequest{DriverID: driverID},
		schema: schemaAssignDriver,
	}
	if err = c.do(ctx, req, &resp); err != nil {
		return nil, err
	}
	if resp.Driver == nil {
		return nil, nil
	}
	return resp.Driver.toDomain()
}
