package backend

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"dashboard/internal/core/domain/model/driver"
)

const pathDrivers = "/api/users/get-users-by-role-name/driver"

// ListDrivers fetches every user holding the driver role.
func (c *Client) ListDrivers(ctx context.Context) ([]*driver.Driver, error) {
	var resp driverListResponse
	if err := c.do(ctx, request{method: http.MethodGet, path: pathDrivers, schema: schemaDriverList}, &resp); err != nil {
		return nil, err
	}

	drivers := make([]*driver.Driver, 0, len(resp.Data))
	var errList []error
	for _, dto := range resp.Data {
		d, err := dto.toDomain()
		if err != nil {
			errList = append(errList, fmt.Errorf("driver %s: %w", dto.ID, err))
			continue
		}
		drivers = append(drivers, d)
	}
	if len(errList) > 0 {
		return nil, errors.Join(errList...)
	}
	return drivers, nil
}
