package order

import "dashboard/internal/core/domain/model/driver"

// Patch is a shallow update of an order's mutable fields. Fields not set on the
// patch are left as they are. The zero Patch changes nothing.
//
// Example:
//
//	p := order.NewPatch().WithStatus(order.Assigning).WithDriver(sam)
//	updated, err := o.Apply(p)
type Patch struct {
	status    *Status
	driver    *driver.Driver
	setDriver bool
}

// NewPatch returns an empty patch.
func NewPatch() Patch {
	return Patch{}
}

// WithStatus sets the status.
func (p Patch) WithStatus(s Status) Patch {
	p.status = &s
	return p
}

// WithDriver sets the driver; nil unassigns.
func (p Patch) WithDriver(d *driver.Driver) Patch {
	p.driver = d.Clone()
	p.setDriver = true
	return p
}

// Status returns the patched status, if any.
func (p Patch) Status() (Status, bool) {
	if p.status == nil {
		return Unknown, false
	}
	return *p.status, true
}

// Driver returns the patched driver and whether the patch touches the driver.
func (p Patch) Driver() (*driver.Driver, bool) {
	return p.driver.Clone(), p.setDriver
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.status == nil && !p.setDriver
}
