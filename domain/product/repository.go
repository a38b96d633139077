package product

import "context"

//go:generate mockgen -destination=../../mock/product_repository.go -package=mock -mock_names=Repository=MockProductRepository bakery/domain/product Repository

// Repository Product repository interface
type Repository interface {
	// FindAllByStatus Find products with the given status, ascending by id
	FindAllByStatus(ctx context.Context, status Status) ([]*Product, error)

	// FindByID Find product by ID, fails with ErrProductNotFound
	FindByID(ctx context.Context, id int64) (*Product, error)

	// Save Insert or update product, returns its id
	Save(ctx context.Context, p *Product) (int64, error)
}
