package services

import (
	"dashboard/internal/core/domain/model/driver"
	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/core/domain/model/order"
)

// DriverLookup resolves a driver id against the loaded driver list.
type DriverLookup interface {
	Find(id kernel.ID) (*driver.Driver, bool)
}

// DriverDispatcher computes the local effect of a driver assignment.
//
// Business rules:
//   - The order must be accepted or assigning and have no driver yet
//   - The driver record comes from the loaded list; unknown ids become placeholders
//   - An accepted order advances to assigning; an assigning order keeps its status
//
// Example usage:
//
//	dispatcher := services.NewDriverDispatcher()
//	patch, err := dispatcher.Dispatch(o, driverID, directory)
//	if errors.Is(err, order.ErrAssignmentNotAllowed) {
//	    // the UI should not have offered the selector
//	}
//	updated, err := o.Apply(patch)
type DriverDispatcher struct{}

// NewDriverDispatcher creates a new DriverDispatcher instance.
func NewDriverDispatcher() DriverDispatcher {
	return DriverDispatcher{}
}

// Dispatch returns the patch that assigns driverID to o.
//
// Parameters:
//   - o: the order to assign (must be valid)
//   - driverID: the chosen driver
//   - drivers: the loaded driver list; may be nil, in which case a placeholder is used
//
// Returns:
//   - order.Patch: driver plus next status, ready for Order.Apply or the order store
//   - error: order.ErrAssignmentNotAllowed or a validation error
func (d DriverDispatcher) Dispatch(o *order.Order, driverID kernel.ID, drivers DriverLookup) (order.Patch, error) {
	if err := o.Validate(); err != nil {
		return order.Patch{}, err
	}

	if err := o.ValidateAssignDriver(); err != nil {
		return order.Patch{}, err
	}

	assigned, err := d.resolveDriver(driverID, drivers)
	if err != nil {
		return order.Patch{}, err
	}

	next, err := o.Status().Assign()
	if err != nil {
		return order.Patch{}, err
	}

	return order.NewPatch().WithDriver(assigned).WithStatus(next), nil
}

// resolveDriver returns the full record for driverID when the list has it,
// otherwise a placeholder carrying only the id.
func (d DriverDispatcher) resolveDriver(driverID kernel.ID, drivers DriverLookup) (*driver.Driver, error) {
	if err := driverID.Validate(); err != nil {
		return nil, err
	}

	if drivers != nil {
		if found, ok := drivers.Find(driverID); ok {
			return found, nil
		}
	}

	return driver.NewPlaceholder(driverID)
}
