package order

import (
	"context"
	"time"

	"bakery/domain/shared"
)

// ByRelevantDateSpecification matches orders whose pick-up, delivery or
// reservation date is on the calendar date of Date
type ByRelevantDateSpecification struct {
	Date time.Time
}

// IsSatisfiedBy returns true if any date of the order is on Date
func (spec ByRelevantDateSpecification) IsSatisfiedBy(_ context.Context, entity *Order) bool {
	for _, d := range []time.Time{entity.PickUpDate(), entity.DeliveryDate(), entity.ReservationDate()} {
		if !d.IsZero() && shared.SameDate(d, spec.Date) {
			return true
		}
	}
	return false
}

// ByYearSpecification matches orders whose relevant date is within Year
type ByYearSpecification struct {
	Year int
}

// IsSatisfiedBy returns true if the relevant date of the order is within Year
func (spec ByYearSpecification) IsSatisfiedBy(_ context.Context, entity *Order) bool {
	d := entity.RelevantDate()
	return !d.IsZero() && d.UTC().Year() == spec.Year
}

// NewByRelevantDateSpecification creates a specification to filter by date
func NewByRelevantDateSpecification(date time.Time) shared.Specification[*Order] {
	return ByRelevantDateSpecification{Date: date}
}

// NewByYearSpecification creates a specification to filter by year
func NewByYearSpecification(year int) shared.Specification[*Order] {
	return ByYearSpecification{Year: year}
}
