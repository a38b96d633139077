package order

import (
	"context"
	"strconv"
	"time"

	"bakery/domain/shared"
)

// OrderedProduct Quantities of one product ordered over a period, by type
type OrderedProduct struct {
	Name             string
	PickUpCount      int
	DeliveryCount    int
	ReservationCount int
	TotalCount       int
}

// MaxRangeDays 日期区间查询最多覆盖的天数
const MaxRangeDays = 400

// DomainService Order domain service
// It queries the repository one calendar day at a time and never persists.
type DomainService struct {
	orderRepository Repository
}

// NewDomainService Create order domain service
func NewDomainService(orderRepo Repository) *DomainService {
	return &DomainService{orderRepository: orderRepo}
}

// FindAllByDateRange returns the orders of every day from start to end
// inclusive, in day order. One repository call is made per day.
func (s *DomainService) FindAllByDateRange(ctx context.Context, start, end time.Time) ([]*Order, error) {
	if err := checkRange(start, end); err != nil {
		return nil, err
	}
	var orders []*Order
	for _, day := range shared.EachDay(start, end) {
		found, err := s.orderRepository.FindAllByDate(ctx, day)
		if err != nil {
			return nil, err
		}
		orders = append(orders, found...)
	}
	return orders, nil
}

// OrderedProductsByDateRange folds the orders of every day from start to end
// inclusive into per-product counts, in first-encountered order.
func (s *DomainService) OrderedProductsByDateRange(ctx context.Context, start, end time.Time) ([]OrderedProduct, error) {
	if err := checkRange(start, end); err != nil {
		return nil, err
	}
	counter := NewOrderedProductCounter()
	for _, day := range shared.EachDay(start, end) {
		found, err := s.orderRepository.FindAllByDate(ctx, day)
		if err != nil {
			return nil, err
		}
		for _, o := range found {
			counter.Add(o)
		}
	}
	return counter.Result(), nil
}

func checkRange(start, end time.Time) error {
	if shared.DaySpan(start, end) > MaxRangeDays {
		return NewInvalidOrderError("end", "Date range cannot exceed "+strconv.Itoa(MaxRangeDays)+" days")
	}
	return nil
}

// OrderedProductCounter accumulates OrderedProduct records keyed by name.
type OrderedProductCounter struct {
	index    map[string]int
	products []OrderedProduct
}

// NewOrderedProductCounter creates an empty counter.
func NewOrderedProductCounter() *OrderedProductCounter {
	return &OrderedProductCounter{index: make(map[string]int)}
}

// Add counts every product of o in the bucket of o's type.
func (c *OrderedProductCounter) Add(o *Order) {
	for _, p := range o.products {
		i, ok := c.index[p.Product.Name]
		if !ok {
			i = len(c.products)
			c.index[p.Product.Name] = i
			c.products = append(c.products, OrderedProduct{Name: p.Product.Name})
		}
		record := &c.products[i]
		switch o.orderType {
		case TypePickUp:
			record.PickUpCount += p.Quantity
		case TypeDelivery:
			record.DeliveryCount += p.Quantity
		case TypeReservation:
			record.ReservationCount += p.Quantity
		}
		record.TotalCount += p.Quantity
	}
}

// Result returns the records in first-encountered order.
func (c *OrderedProductCounter) Result() []OrderedProduct {
	return append([]OrderedProduct{}, c.products...)
}
