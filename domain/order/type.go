package order

import (
	"time"

	"bakery/domain/shared"
)

// Type Order type enum
type Type string

const (
	TypePickUp      Type = "PICK_UP"
	TypeDelivery    Type = "DELIVERY"
	TypeReservation Type = "RESERVATION"
)

// IsValid reports whether t is a known order type.
func (t Type) IsValid() bool {
	switch t {
	case TypePickUp, TypeDelivery, TypeReservation:
		return true
	}
	return false
}

// Label returns the display label of t.
func (t Type) Label() string {
	switch t {
	case TypePickUp:
		return "Cueillette"
	case TypeDelivery:
		return "Livraison"
	case TypeReservation:
		return "Réservation"
	}
	return string(t)
}

// ============================================================================
// Pick-up constraints
// ============================================================================

// MaximumHourToPlaceAPickUpOrder is the business hour from which an order
// counts as placed on the following day.
const MaximumHourToPlaceAPickUpOrder = 19

// firstAvailablePickUpDay maps the day an order is placed on to the first
// day its pick-up is available.
var firstAvailablePickUpDay = map[time.Weekday]time.Weekday{
	time.Sunday:    time.Tuesday,
	time.Monday:    time.Thursday,
	time.Tuesday:   time.Thursday,
	time.Wednesday: time.Saturday,
	time.Thursday:  time.Tuesday,
	time.Friday:    time.Tuesday,
	time.Saturday:  time.Tuesday,
}

// ClosingDays are the week days the bakery is always closed.
var ClosingDays = []time.Weekday{time.Sunday, time.Monday}

// IsClosingDay reports whether the calendar date of date is a closing day.
func IsClosingDay(date time.Time) bool {
	weekday := date.UTC().Weekday()
	for _, d := range ClosingDays {
		if d == weekday {
			return true
		}
	}
	return false
}

// FirstAvailablePickUpDay returns the first pick-up week day for an order
// placed on placedOn.
func FirstAvailablePickUpDay(placedOn time.Weekday) time.Weekday {
	return firstAvailablePickUpDay[placedOn]
}

// EarliestPickUpDate returns the first date, anchored at noon UTC, on which an
// order placed at now can be picked up. now is expected in the business zone.
func EarliestPickUpDate(now time.Time) time.Time {
	placed := shared.AtNoonUTC(now)
	if now.Hour() >= MaximumHourToPlaceAPickUpOrder {
		placed = placed.AddDate(0, 0, 1)
	}
	available := FirstAvailablePickUpDay(placed.Weekday())
	earliest := placed.AddDate(0, 0, 1)
	for earliest.Weekday() != available {
		earliest = earliest.AddDate(0, 0, 1)
	}
	return earliest
}
