package shared

import (
	"time"
	_ "time/tzdata"
)

// BusinessTimeZone is the fixed time zone the bakery operates in.
const BusinessTimeZone = "Canada/Eastern"

// DateLayout is the canonical date-only representation.
const DateLayout = "2006-01-02"

const day = 24 * time.Hour

var businessLocation = loadBusinessLocation(BusinessTimeZone)

func loadBusinessLocation(name string) *time.Location {
	if loc, err := time.LoadLocation(name); err == nil {
		return loc
	}
	if loc, err := time.LoadLocation("America/Toronto"); err == nil {
		return loc
	}
	return time.UTC
}

// BusinessLocation returns the location of BusinessTimeZone.
func BusinessLocation() *time.Location {
	return businessLocation
}

// IsFirstDateBeforeSecondDateIgnoringHours reports whether first falls on an
// earlier calendar day than second. The comparison is done in first's location:
// first's date is combined with second's clock and compared to second.
func IsFirstDateBeforeSecondDateIgnoringHours(first, second time.Time) bool {
	loc := first.Location()
	s := second.In(loc)
	candidate := time.Date(first.Year(), first.Month(), first.Day(),
		s.Hour(), s.Minute(), s.Second(), s.Nanosecond(), loc)
	return candidate.Before(second)
}

// NumberOfDaysBetween returns the number of started days between a and b.
func NumberOfDaysBetween(a, b time.Time) int {
	d := a.Sub(b)
	if d < 0 {
		d = -d
	}
	return int((d + day - 1) / day)
}

// ParseDateWithTimeAtNoonUTC keeps the date part of an ISO date or date-time
// and anchors it at 12:00 UTC. An empty input yields the zero time.
func ParseDateWithTimeAtNoonUTC(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	if len(value) > len(DateLayout) {
		value = value[:len(DateLayout)]
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, err
	}
	return AtNoonUTC(t), nil
}

// AtNoonUTC anchors the calendar date of t at 12:00 UTC.
func AtNoonUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, time.UTC)
}

// DateAsISOStringWithoutTime formats t as YYYY-MM-DD in UTC. The zero time
// yields an empty string.
func DateAsISOStringWithoutTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(DateLayout)
}

// CurrentDateAtBusinessTimeZone returns now in the business location.
func CurrentDateAtBusinessTimeZone() time.Time {
	return time.Now().In(businessLocation)
}

// SameDate reports whether a and b are on the same UTC calendar date.
func SameDate(a, b time.Time) bool {
	return DateAsISOStringWithoutTime(a) == DateAsISOStringWithoutTime(b)
}

// DaySpan returns the number of calendar dates from start to end inclusive,
// zero when end is before start.
func DaySpan(start, end time.Time) int {
	from := AtNoonUTC(start.UTC())
	to := AtNoonUTC(end.UTC())
	if to.Before(from) {
		return 0
	}
	return int(to.Sub(from).Hours()/24) + 1
}

// EachDay returns every calendar date from start to end inclusive, anchored
// at noon UTC. It is empty when end is before start.
func EachDay(start, end time.Time) []time.Time {
	from := AtNoonUTC(start.UTC())
	to := AtNoonUTC(end.UTC())
	var days []time.Time
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// ============================================================================
// Clock
// ============================================================================

// Clock provides the reference instant for date policies.
type Clock interface {
	Now() time.Time
}

// BusinessClock returns the current time in the business location.
type BusinessClock struct {
	loc *time.Location
}

// NewBusinessClock creates a clock for the named time zone. An empty name
// selects BusinessTimeZone.
func NewBusinessClock(timeZone string) (*BusinessClock, error) {
	if timeZone == "" || timeZone == BusinessTimeZone {
		return &BusinessClock{loc: businessLocation}, nil
	}
	loc, err := time.LoadLocation(timeZone)
	if err != nil {
		return nil, err
	}
	return &BusinessClock{loc: loc}, nil
}

// Now implements Clock.
func (c *BusinessClock) Now() time.Time {
	return time.Now().In(c.loc)
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

// Now implements Clock.
func (f ClockFunc) Now() time.Time {
	return f()
}

// FixedClock always returns t.
func FixedClock(t time.Time) Clock {
	return ClockFunc(func() time.Time { return t })
}
