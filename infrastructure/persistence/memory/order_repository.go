/*
Package memory In-memory repositories

They back the application when no database is configured and filter with
the domain specifications. Stored aggregates are copied on the way in and
on the way out, so callers never share state with the store.
*/
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"bakery/domain/order"
	"bakery/domain/shared"
)

// OrderRepository In-memory implementation of order repository
type OrderRepository struct {
	orders map[int64]*order.Order
	nextID int64
	mu     sync.RWMutex
}

// NewOrderRepository Create in-memory order repository
func NewOrderRepository() *OrderRepository {
	return &OrderRepository{
		orders: make(map[int64]*order.Order),
		nextID: 1,
	}
}

// Save assigns an id to new orders and stores a copy.
// Saving an order whose id is unknown returns a not found error.
func (r *OrderRepository) Save(_ context.Context, o *order.Order) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := o.ID()
	if id == 0 {
		id = r.nextID
		r.nextID++
	} else if _, exists := r.orders[id]; !exists {
		return 0, order.NewOrderNotFoundError(id)
	}
	r.orders[id] = o.WithID(id)
	return id, nil
}

func (r *OrderRepository) FindByID(_ context.Context, id int64) (*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, exists := r.orders[id]
	if !exists {
		return nil, order.NewOrderNotFoundError(id)
	}
	return o.Copy(), nil
}

func (r *OrderRepository) FindAll(ctx context.Context) ([]*order.Order, error) {
	return r.FindAllSatisfying(ctx, nil)
}

func (r *OrderRepository) FindAllByYear(ctx context.Context, year int) ([]*order.Order, error) {
	return r.FindAllSatisfying(ctx, order.NewByYearSpecification(year))
}

func (r *OrderRepository) FindAllByDate(ctx context.Context, date time.Time) ([]*order.Order, error) {
	return r.FindAllSatisfying(ctx, order.NewByRelevantDateSpecification(date))
}

// FindAllSatisfying returns the orders matching spec, ascending by id
func (r *OrderRepository) FindAllSatisfying(ctx context.Context, spec shared.Specification[*order.Order]) ([]*order.Order, error) {
	return shared.Filter(ctx, r.snapshot(), spec), nil
}

func (r *OrderRepository) FindLast(_ context.Context, count int) ([]*order.Order, error) {
	all := r.snapshot()
	if count < 0 {
		count = 0
	}
	if count > len(all) {
		count = len(all)
	}
	last := make([]*order.Order, 0, count)
	for i := len(all) - 1; i >= len(all)-count; i-- {
		last = append(last, all[i])
	}
	return last, nil
}

func (r *OrderRepository) Delete(_ context.Context, o *order.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.orders[o.ID()]; !exists {
		return order.NewOrderNotFoundError(o.ID())
	}
	delete(r.orders, o.ID())
	return nil
}

// snapshot returns copies of all orders ascending by id
func (r *OrderRepository) snapshot() []*order.Order {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*order.Order, 0, len(r.orders))
	for _, o := range r.orders {
		result = append(result, o.Copy())
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID() < result[j].ID() })
	return result
}
