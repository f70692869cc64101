package commands

import (
	"errors"

	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/pkg/guard"
)

var (
	ErrAssignDriverCommandIsNotConstructed = errors.New(
		"AssignDriverCommand must be created via NewAssignDriverCommand constructor",
	)
)

// AssignDriverCommand represents the admin's choice of a driver for an order.
//
// Example:
//
//	cmd, err := NewAssignDriverCommand(9, 3)
//	if err != nil {
//	    return fmt.Errorf("invalid assignment: %w", err)
//	}
//	ticket, err := handler.Handle(ctx, cmd)
type AssignDriverCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.ID
	driverID kernel.ID

	guard guard.ConstructorGuard
}

// NewAssignDriverCommand creates a command to assign driverID to orderID.
func NewAssignDriverCommand(orderID, driverID kernel.ID) (AssignDriverCommand, error) {
	cmd := AssignDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDriverID(driverID),
	); err != nil {
		return AssignDriverCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignDriverCommand) Validate() error {
	return c.guard.Validate(ErrAssignDriverCommandIsNotConstructed)
}

func (c AssignDriverCommand) OrderID() kernel.ID {
	return c.orderID
}

func (c AssignDriverCommand) DriverID() kernel.ID {
	return c.driverID
}

func (c *AssignDriverCommand) setOrderID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *AssignDriverCommand) setDriverID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.driverID = id
	return nil
}
