package state

import (
	"context"
	"sync"

	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/core/domain/model/order"
	"dashboard/internal/core/ports"
)

// DetailState is the state of the "currently viewed" slot.
type DetailState int

const (
	DetailEmpty DetailState = iota
	DetailLoading
	DetailLoaded
	DetailFailed
)

func (s DetailState) String() string {
	switch s {
	case DetailLoading:
		return "loading"
	case DetailLoaded:
		return "loaded"
	case DetailFailed:
		return "failed"
	default:
		return "empty"
	}
}

// Detail is a snapshot of the slot.
type Detail struct {
	OrderID kernel.ID
	State   DetailState
	Order   *order.Order
	Err     error
}

// DetailFetcher loads one order's detail into a single slot that is never merged
// into the OrderStore. Concurrent fetches all write the slot; the one resolving
// last wins. Responses arriving after Close are dropped.
type DetailFetcher struct {
	gateway ports.OrderGateway

	mu         sync.Mutex
	slot       Detail
	generation uint64
}

func NewDetailFetcher(gateway ports.OrderGateway) *DetailFetcher {
	return &DetailFetcher{gateway: gateway}
}

// Fetch loads the detail of id into the slot and returns what this fetch resolved to.
// A failure is recorded in the slot and returned; it never touches the store.
func (f *DetailFetcher) Fetch(ctx context.Context, id kernel.ID) (Detail, error) {
	f.mu.Lock()
	generation := f.generation
	f.slot = Detail{OrderID: id, State: DetailLoading}
	f.mu.Unlock()

	o, err := f.gateway.GetOrder(ctx, id)

	result := Detail{OrderID: id, State: DetailLoaded, Order: o}
	if err != nil {
		result = Detail{OrderID: id, State: DetailFailed, Err: err}
	}

	f.mu.Lock()
	if f.generation == generation {
		f.slot = result
	}
	f.mu.Unlock()

	result.Order = result.Order.Clone()
	return result, err
}

func (f *DetailFetcher) Current() Detail {
	f.mu.Lock()
	defer f.mu.Unlock()
	d := f.slot
	d.Order = d.Order.Clone()
	return d
}

// Close empties the slot. Fetches still running will not refill it.
func (f *DetailFetcher) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.generation++
	f.slot = Detail{}
}
