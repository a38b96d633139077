package order

import (
	"context"
	"time"
)

//go:generate mockgen -destination=../../mock/order_repository.go -package=mock -mock_names=Repository=MockOrderRepository bakery/domain/order Repository

// Repository Order repository interface
type Repository interface {
	// FindByID Find order by ID, fails with ErrOrderNotFound
	FindByID(ctx context.Context, id int64) (*Order, error)

	// FindAll Find all orders, ascending by id
	FindAll(ctx context.Context) ([]*Order, error)

	// FindAllByYear Find orders whose relevant date is within year
	FindAllByYear(ctx context.Context, year int) ([]*Order, error)

	// FindAllByDate Find orders whose relevant date is on the calendar date of date
	FindAllByDate(ctx context.Context, date time.Time) ([]*Order, error)

	// FindLast Find the count orders with the highest ids, newest first
	FindLast(ctx context.Context, count int) ([]*Order, error)

	// Save Insert or update order, returns its id
	Save(ctx context.Context, o *Order) (int64, error)

	// Delete Remove order
	Delete(ctx context.Context, o *Order) error
}
