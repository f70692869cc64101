package order

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"dashboard/internal/core/domain/model/driver"
	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// RestoreOrder or Apply.
	ErrOrderIsNotConstructed = errors.New("Order must be created via RestoreOrder constructor")
)

// Customer is the read-only customer reference shown next to an order.
type Customer struct {
	Name  string
	Email string
}

// Address is the optional delivery reference.
type Address struct {
	ID   kernel.ID
	Line string
}

// LineItem is one entry of an order's details.
type LineItem struct {
	Name     string
	Quantity int
	Price    kernel.Money
}

// Subtotal returns price times quantity.
func (i LineItem) Subtotal() kernel.Money {
	return i.Price.Times(i.Quantity)
}

// Params carries everything the backend reports about an order.
// It is the input of RestoreOrder.
type Params struct {
	ID            kernel.ID
	Number        string
	Status        Status
	Customer      Customer
	Driver        *driver.Driver
	Details       []LineItem
	Address       *Address
	Quantity      int
	Total         kernel.Money
	PaymentMethod string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Order is a snapshot of a backend order held by the console.
//
// Order follows these invariants:
//   - Must have a valid identifier and a non-blank order number
//   - Status must be a known lifecycle value
//   - Only accepted, assigning, delivering and completed orders carry a driver
//   - Quantities are never negative
//
// Orders are immutable from the outside: Apply returns a modified copy and the
// accessors hand out copies of nested values.
type Order struct {
	id            kernel.ID
	number        string
	status        Status
	customer      Customer
	driver        *driver.Driver
	details       []LineItem
	address       *Address
	quantity      int
	total         kernel.Money
	paymentMethod string
	createdAt     time.Time
	updatedAt     time.Time

	// isConstructed ensures the order was created via RestoreOrder
	isConstructed bool
}

// RestoreOrder rebuilds an order from backend data, validating every invariant.
// All violations are reported together.
//
// Example:
//
//	o, err := order.RestoreOrder(order.Params{
//	    ID:     7,
//	    Number: "ORD-0007",
//	    Status: order.Pending,
//	})
//	if err != nil {
//	    // malformed backend data
//	}
func RestoreOrder(p Params) (*Order, error) {
	o := &Order{
		customer:      p.Customer,
		details:       slices.Clone(p.Details),
		total:         p.Total,
		paymentMethod: p.PaymentMethod,
		createdAt:     p.CreatedAt,
		updatedAt:     p.UpdatedAt,
		isConstructed: true,
	}
	if p.Address != nil {
		addr := *p.Address
		o.address = &addr
	}

	if err := errors.Join(
		o.setID(p.ID),
		o.setNumber(p.Number),
		o.setStatus(p.Status),
		o.setQuantity(p.Quantity),
		o.setDetails(p.Details),
		o.setDriver(p.Driver),
	); err != nil {
		return nil, err
	}

	if err := o.status.ValidateCanHaveDriver(o.driver != nil); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

// ID returns the order's identifier.
func (o *Order) ID() kernel.ID {
	return o.id
}

// Number returns the display order number.
func (o *Order) Number() string {
	return o.number
}

// Status returns the current status.
func (o *Order) Status() Status {
	return o.status
}

// Customer returns the customer reference.
func (o *Order) Customer() Customer {
	return o.customer
}

// Driver returns a copy of the assigned driver, nil when unassigned.
func (o *Order) Driver() *driver.Driver {
	return o.driver.Clone()
}

// HasDriver reports whether a driver is assigned.
func (o *Order) HasDriver() bool {
	return o.driver != nil
}

// Details returns a copy of the line items.
func (o *Order) Details() []LineItem {
	return slices.Clone(o.details)
}

// Address returns a copy of the delivery address, nil when absent.
func (o *Order) Address() *Address {
	if o.address == nil {
		return nil
	}
	addr := *o.address
	return &addr
}

// Quantity returns the number of items ordered.
func (o *Order) Quantity() int {
	return o.quantity
}

// Total returns the order total.
func (o *Order) Total() kernel.Money {
	return o.total
}

// PaymentMethod returns the payment method label.
func (o *Order) PaymentMethod() string {
	return o.paymentMethod
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last update timestamp.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// AdminChoices returns the statuses the admin may request for this order.
func (o *Order) AdminChoices() []Status {
	return o.status.AdminChoices()
}

// ValidateStatusChange checks that the admin may move the order to next.
func (o *Order) ValidateStatusChange(next Status) error {
	return o.status.ValidateChange(next)
}

// ValidateAssignDriver checks that a driver may be assigned: the order must be
// accepted or assigning and must not have a driver yet.
func (o *Order) ValidateAssignDriver() error {
	if err := o.status.ValidateAssign(); err != nil {
		return err
	}
	if o.driver != nil {
		return fmt.Errorf("%w: order already has driver %s", ErrAssignmentNotAllowed, o.driver.ID())
	}
	return nil
}

// CanAssignDriver reports whether the UI should offer the driver selector.
func (o *Order) CanAssignDriver() bool {
	return o.ValidateAssignDriver() == nil
}

// Clone returns a deep copy, or nil for a nil order.
func (o *Order) Clone() *Order {
	if o == nil {
		return nil
	}
	c := *o
	c.driver = o.driver.Clone()
	c.details = slices.Clone(o.details)
	c.address = o.Address()
	return &c
}

// Apply returns a copy of the order with the patch applied. The receiver is left
// untouched. The result must still satisfy the driver/status invariant.
func (o *Order) Apply(p Patch) (*Order, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	c := o.Clone()
	if p.status != nil {
		if err := c.setStatus(*p.status); err != nil {
			return nil, err
		}
	}
	if p.setDriver {
		if err := c.setDriver(p.driver); err != nil {
			return nil, err
		}
	}

	if err := c.status.ValidateCanHaveDriver(c.driver != nil); err != nil {
		return nil, err
	}
	return c, nil
}

func (o *Order) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number string) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return errs.NewValueIsRequiredError("order_number")
	}
	o.number = number
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is negative", quantity))
	}
	o.quantity = quantity
	return nil
}

func (o *Order) setDetails(details []LineItem) error {
	for i, item := range details {
		if item.Quantity < 0 {
			return errs.NewValueIsInvalidErrorWithCause(
				"order_details",
				fmt.Errorf("item %d has negative quantity %d", i, item.Quantity),
			)
		}
	}
	return nil
}

func (o *Order) setDriver(d *driver.Driver) error {
	if d == nil {
		o.driver = nil
		return nil
	}
	if err := d.Validate(); err != nil {
		return err
	}
	o.driver = d.Clone()
	return nil
}
