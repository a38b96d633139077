package memory

import (
	"context"
	"sort"
	"sync"

	"bakery/domain/closingperiod"
)

// ClosingPeriodRepository In-memory implementation of closing period repository
type ClosingPeriodRepository struct {
	periods map[int64]*closingperiod.ClosingPeriod
	nextID  int64
	mu      sync.RWMutex
}

// NewClosingPeriodRepository Create in-memory closing period repository
func NewClosingPeriodRepository() *ClosingPeriodRepository {
	return &ClosingPeriodRepository{
		periods: make(map[int64]*closingperiod.ClosingPeriod),
		nextID:  1,
	}
}

func (r *ClosingPeriodRepository) Save(_ context.Context, c *closingperiod.ClosingPeriod) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := c.ID()
	if id == 0 {
		id = r.nextID
		r.nextID++
	} else if id >= r.nextID {
		r.nextID = id + 1
	}
	r.periods[id] = c.WithID(id)
	return id, nil
}

func (r *ClosingPeriodRepository) FindByID(_ context.Context, id int64) (*closingperiod.ClosingPeriod, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, exists := r.periods[id]
	if !exists {
		return nil, closingperiod.NewClosingPeriodNotFoundError(id)
	}
	return c.WithID(id), nil
}

func (r *ClosingPeriodRepository) FindAll(_ context.Context) ([]*closingperiod.ClosingPeriod, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*closingperiod.ClosingPeriod, 0, len(r.periods))
	for id, c := range r.periods {
		result = append(result, c.WithID(id))
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID() < result[j].ID() })
	return result, nil
}

func (r *ClosingPeriodRepository) Delete(_ context.Context, c *closingperiod.ClosingPeriod) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.periods[c.ID()]; !exists {
		return closingperiod.NewClosingPeriodNotFoundError(c.ID())
	}
	delete(r.periods, c.ID())
	return nil
}
