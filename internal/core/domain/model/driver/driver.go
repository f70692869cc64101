package driver

import (
	"errors"
	"strings"

	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/pkg/errs"
	"dashboard/internal/pkg/guard"
)

// ErrDriverIsNotConstructed is returned when a Driver was not created via NewDriver or NewPlaceholder.
var ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver or NewPlaceholder constructor")

// Driver is a read-only reference to a platform user with the driver role.
type Driver struct {
	id    kernel.ID
	name  string
	guard guard.ConstructorGuard
}

// NewDriver creates a fully described driver.
//
// Returns a validation error if the id is not positive or the name is blank.
func NewDriver(id kernel.ID, name string) (*Driver, error) {
	d := &Driver{guard: guard.NewConstructorGuard()}

	if err := errors.Join(d.setID(id), d.setName(name)); err != nil {
		return nil, err
	}

	return d, nil
}

// NewPlaceholder creates a driver known only by id. It is used when an
// assignment names a driver missing from the loaded directory.
func NewPlaceholder(id kernel.ID) (*Driver, error) {
	d := &Driver{guard: guard.NewConstructorGuard()}
	if err := d.setID(id); err != nil {
		return nil, err
	}
	return d, nil
}

// Validate ensures the driver was built by a constructor.
func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

// ID returns the driver's identifier.
func (d *Driver) ID() kernel.ID {
	return d.id
}

// Name returns the display name; empty for placeholders.
func (d *Driver) Name() string {
	return d.name
}

// IsPlaceholder reports whether only the id is known.
func (d *Driver) IsPlaceholder() bool {
	return d.name == ""
}

// IsEqual compares drivers by identifier.
func (d *Driver) IsEqual(other *Driver) bool {
	return d != nil && other != nil && d.id == other.id
}

// Clone returns an independent copy, or nil for a nil driver.
func (d *Driver) Clone() *Driver {
	if d == nil {
		return nil
	}
	c := *d
	return &c
}

func (d *Driver) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	d.name = name
	return nil
}
