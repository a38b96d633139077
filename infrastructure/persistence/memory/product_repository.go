package memory

import (
	"context"
	"sort"
	"sync"

	"bakery/domain/product"
	"bakery/domain/shared"
)

// ProductRepository In-memory implementation of product repository
type ProductRepository struct {
	products map[int64]*product.Product
	nextID   int64
	mu       sync.RWMutex
}

// NewProductRepository Create in-memory product repository
func NewProductRepository() *ProductRepository {
	return &ProductRepository{
		products: make(map[int64]*product.Product),
		nextID:   1,
	}
}

func (r *ProductRepository) Save(_ context.Context, p *product.Product) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := p.ID()
	if id == 0 {
		id = r.nextID
		r.nextID++
	} else if id >= r.nextID {
		r.nextID = id + 1
	}
	r.products[id] = p.WithID(id)
	return id, nil
}

func (r *ProductRepository) FindByID(_ context.Context, id int64) (*product.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, exists := r.products[id]
	if !exists {
		return nil, product.NewProductNotFoundError(id)
	}
	return p.Copy(), nil
}

func (r *ProductRepository) FindAllByStatus(ctx context.Context, status product.Status) ([]*product.Product, error) {
	r.mu.RLock()
	all := make([]*product.Product, 0, len(r.products))
	for _, p := range r.products {
		all = append(all, p.Copy())
	}
	r.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool { return all[i].ID() < all[j].ID() })
	byStatus := shared.SpecificationFunc[*product.Product](func(_ context.Context, p *product.Product) bool {
		return p.Status() == status
	})
	return shared.Filter[*product.Product](ctx, all, byStatus), nil
}
