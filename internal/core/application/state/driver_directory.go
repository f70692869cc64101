package state

import (
	"context"
	"fmt"
	"sync"
	"time"

	"dashboard/internal/core/domain/model/driver"
	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/core/ports"
)

// DriverDirectory caches the drivers offered by the assignment selector.
// It satisfies services.DriverLookup. Like OrderStore, a Load begun before
// Reset returns ErrLoadDiscarded.
type DriverDirectory struct {
	gateway ports.DriverGateway

	mu         sync.RWMutex
	drivers    []*driver.Driver
	status     LoadStatus
	generation uint64
}

func NewDriverDirectory(gateway ports.DriverGateway) *DriverDirectory {
	return &DriverDirectory{gateway: gateway}
}

// Load fetches the driver list. A failure keeps the previous list for lookups
// but List reports the error until the next successful Load.
func (d *DriverDirectory) Load(ctx context.Context) error {
	d.mu.RLock()
	generation := d.generation
	d.mu.RUnlock()

	drivers, err := d.gateway.ListDrivers(ctx)
	if err != nil {
		d.mu.Lock()
		defer d.mu.Unlock()
		if generation != d.generation {
			return ErrLoadDiscarded
		}
		d.status = LoadStatus{State: LoadFailed, Err: err}
		return fmt.Errorf("load drivers: %w", err)
	}

	next := make([]*driver.Driver, 0, len(drivers))
	for _, dr := range drivers {
		if err := dr.Validate(); err != nil {
			continue
		}
		next = append(next, dr.Clone())
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if generation != d.generation {
		return ErrLoadDiscarded
	}
	d.drivers = next
	d.status = LoadStatus{State: Loaded, LoadedAt: time.Now().UTC()}
	return nil
}

func (d *DriverDirectory) List() ([]*driver.Driver, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	switch d.status.State {
	case Loaded:
	case LoadFailed:
		return nil, fmt.Errorf("drivers are not loaded: %w", d.status.Err)
	default:
		return []*driver.Driver{}, nil
	}

	out := make([]*driver.Driver, 0, len(d.drivers))
	for _, dr := range d.drivers {
		out = append(out, dr.Clone())
	}
	return out, nil
}

// Find returns a copy of the driver with the given id.
func (d *DriverDirectory) Find(id kernel.ID) (*driver.Driver, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, dr := range d.drivers {
		if dr.ID() == id {
			return dr.Clone(), true
		}
	}
	return nil, false
}

func (d *DriverDirectory) Status() LoadStatus {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.status
}

func (d *DriverDirectory) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.drivers = nil
	d.status = LoadStatus{}
	d.generation++
}
