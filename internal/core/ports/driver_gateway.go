package ports

import (
	"context"

	"dashboard/internal/core/domain/model/driver"
)

// DriverGateway fetches the users holding the driver role.
type DriverGateway interface {
	ListDrivers(ctx context.Context) ([]*driver.Driver, error)
}
