package state

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/core/domain/model/order"
	"dashboard/internal/core/ports"
	"dashboard/internal/pkg/errs"
	"dashboard/internal/pkg/metrics"
)

var ErrStoreNotLoaded = errors.New("orders are not loaded")

// OrderStore is the session's in-memory order collection.
//
// The store is replaced wholesale by Load and changed one order at a time by
// Patch. A failed Load puts the store into a blocking error state: Get and List
// report the load error until the next successful Load. Reset starts a new
// generation; a Load begun before it returns ErrLoadDiscarded and changes nothing.
//
// Example:
//
//	store := state.NewOrderStore(gateway)
//	if err := store.Load(ctx); err != nil {
//	    // render the error instead of the list
//	}
//	ok, err := store.Patch(7, order.NewPatch().WithStatus(order.Accepted))
type OrderStore struct {
	gateway ports.OrderGateway

	mu         sync.RWMutex
	orders     []*order.Order
	index      map[kernel.ID]int
	status     LoadStatus
	generation uint64
}

func NewOrderStore(gateway ports.OrderGateway) *OrderStore {
	return &OrderStore{
		gateway: gateway,
		index:   make(map[kernel.ID]int),
	}
}

// Load fetches every order from the backend and replaces the store's content.
// There is exactly one attempt; on failure the store enters the error state.
func (s *OrderStore) Load(ctx context.Context) error {
	s.mu.RLock()
	generation := s.generation
	s.mu.RUnlock()

	orders, err := s.gateway.ListOrders(ctx)
	if err != nil {
		if !s.fail(generation, err) {
			return ErrLoadDiscarded
		}
		return fmt.Errorf("load orders: %w", err)
	}

	return s.replace(orders, &generation)
}

// Replace swaps the store's content for orders. When an id repeats, the last
// occurrence wins and keeps the position of the first.
func (s *OrderStore) Replace(orders []*order.Order) error {
	return s.replace(orders, nil)
}

// replace installs orders unless generation is set and no longer current.
func (s *OrderStore) replace(orders []*order.Order, generation *uint64) error {
	next := make([]*order.Order, 0, len(orders))
	index := make(map[kernel.ID]int, len(orders))
	var invalid error
	for _, o := range orders {
		if invalid = o.Validate(); invalid != nil {
			break
		}
		if pos, ok := index[o.ID()]; ok {
			next[pos] = o.Clone()
			continue
		}
		index[o.ID()] = len(next)
		next = append(next, o.Clone())
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if generation != nil && *generation != s.generation {
		return ErrLoadDiscarded
	}
	if invalid != nil {
		s.status = LoadStatus{State: LoadFailed, Err: invalid}
		return invalid
	}
	s.orders = next
	s.index = index
	s.status = LoadStatus{State: Loaded, LoadedAt: time.Now().UTC()}
	metrics.StoreOrders.Set(float64(len(next)))
	return nil
}

// Patch applies p to the order with the given id. It reports false and does
// nothing when the store does not hold the id. An error means the patched order
// would break an order invariant; the stored order is then left unchanged.
func (s *OrderStore) Patch(id kernel.ID, p order.Patch) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pos, ok := s.index[id]
	if !ok {
		return false, nil
	}

	updated, err := s.orders[pos].Apply(p)
	if err != nil {
		return false, err
	}
	s.orders[pos] = updated
	return true, nil
}

// Get returns a copy of one order.
func (s *OrderStore) Get(id kernel.ID) (*order.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.readableLocked(); err != nil {
		return nil, err
	}

	pos, ok := s.index[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id)
	}
	return s.orders[pos].Clone(), nil
}

// List returns copies of every order in load order.
func (s *OrderStore) List() ([]*order.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.readableLocked(); err != nil {
		return nil, err
	}

	out := make([]*order.Order, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, o.Clone())
	}
	return out, nil
}

func (s *OrderStore) Status() LoadStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// Reset empties the store and returns it to the not-loaded state.
func (s *OrderStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = nil
	s.index = make(map[kernel.ID]int)
	s.status = LoadStatus{}
	s.generation++
	metrics.StoreOrders.Set(0)
}

// fail records a load error; it reports false when generation is stale.
func (s *OrderStore) fail(generation uint64, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if generation != s.generation {
		return false
	}
	s.status = LoadStatus{State: LoadFailed, Err: err}
	return true
}

func (s *OrderStore) readableLocked() error {
	switch s.status.State {
	case Loaded:
		return nil
	case LoadFailed:
		return fmt.Errorf("%w: %w", ErrStoreNotLoaded, s.status.Err)
	default:
		return ErrStoreNotLoaded
	}
}
