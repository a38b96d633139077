package shared

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := ParseDateWithTimeAtNoonUTC(value)
	require.NoError(t, err)
	return d
}

func TestIsFirstDateBeforeSecondDateIgnoringHours(t *testing.T) {
	loc := BusinessLocation()

	tests := []struct {
		name   string
		first  time.Time
		second time.Time
		want   bool
	}{
		{
			name:   "previous day",
			first:  time.Date(2020, 1, 10, 10, 0, 0, 0, loc),
			second: mustParse(t, "2020-01-11"),
			want:   true,
		},
		{
			name:   "same day earlier hour",
			first:  time.Date(2020, 1, 11, 1, 0, 0, 0, loc),
			second: mustParse(t, "2020-01-11"),
			want:   false,
		},
		{
			name:   "same day later hour",
			first:  time.Date(2020, 1, 11, 23, 0, 0, 0, loc),
			second: mustParse(t, "2020-01-11"),
			want:   false,
		},
		{
			name:   "next day",
			first:  time.Date(2020, 1, 12, 8, 0, 0, 0, loc),
			second: mustParse(t, "2020-01-11"),
			want:   false,
		},
		{
			name:   "evening in business zone is already next day in UTC",
			first:  time.Date(2020, 1, 10, 21, 30, 0, 0, loc),
			second: mustParse(t, "2020-01-11"),
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsFirstDateBeforeSecondDateIgnoringHours(tt.first, tt.second))
		})
	}
}

func TestIsFirstDateBeforeSecondDateIgnoringHours_DoesNotAlterInputs(t *testing.T) {
	first := time.Date(2020, 3, 4, 5, 6, 7, 8, BusinessLocation())
	second := time.Date(2020, 3, 9, 10, 11, 12, 13, time.UTC)
	firstCopy, secondCopy := first, second

	IsFirstDateBeforeSecondDateIgnoringHours(first, second)

	assert.True(t, first.Equal(firstCopy))
	assert.True(t, second.Equal(secondCopy))
	assert.Equal(t, firstCopy.Location(), first.Location())
}

func TestNumberOfDaysBetween(t *testing.T) {
	base := time.Date(2021, 6, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, NumberOfDaysBetween(base, base))
	assert.Equal(t, 1, NumberOfDaysBetween(base, base.Add(time.Millisecond)))
	assert.Equal(t, 1, NumberOfDaysBetween(base, base.Add(24*time.Hour)))
	assert.Equal(t, 2, NumberOfDaysBetween(base, base.Add(25*time.Hour)))
	assert.Equal(t, 10, NumberOfDaysBetween(base, base.AddDate(0, 0, 10)))

	later := base.Add(49 * time.Hour)
	assert.Equal(t, NumberOfDaysBetween(base, later), NumberOfDaysBetween(later, base))
}

func TestParseDateWithTimeAtNoonUTC(t *testing.T) {
	bare := mustParse(t, "2019-11-15")
	full := mustParse(t, "2019-11-15T15:09:05.119Z")

	assert.True(t, bare.Equal(full))
	assert.Equal(t, time.Date(2019, 11, 15, 12, 0, 0, 0, time.UTC), bare)

	empty, err := ParseDateWithTimeAtNoonUTC("")
	require.NoError(t, err)
	assert.True(t, empty.IsZero())

	_, err = ParseDateWithTimeAtNoonUTC("15/11/2019")
	assert.Error(t, err)
}

func TestDateAsISOStringWithoutTime(t *testing.T) {
	for _, s := range []string{"2019-11-15", "2020-02-29", "2021-12-31", "2022-01-01"} {
		assert.Equal(t, s, DateAsISOStringWithoutTime(mustParse(t, s)))
	}
	assert.Equal(t, "", DateAsISOStringWithoutTime(time.Time{}))
}

func TestEachDay(t *testing.T) {
	start := mustParse(t, "2020-02-27")
	end := mustParse(t, "2020-03-01")

	days := EachDay(start, end)
	require.Len(t, days, 4)
	assert.Equal(t, "2020-02-27", DateAsISOStringWithoutTime(days[0]))
	assert.Equal(t, "2020-02-29", DateAsISOStringWithoutTime(days[2]))
	assert.Equal(t, "2020-03-01", DateAsISOStringWithoutTime(days[3]))

	assert.Len(t, EachDay(start, start), 1)
	assert.Empty(t, EachDay(end, start))
}

func TestDaySpan(t *testing.T) {
	start := mustParse(t, "2020-02-27")
	end := mustParse(t, "2020-03-01")

	assert.Equal(t, 4, DaySpan(start, end))
	assert.Equal(t, 1, DaySpan(start, start))
	assert.Equal(t, 0, DaySpan(end, start))
	assert.Equal(t, 366, DaySpan(mustParse(t, "2020-01-01"), mustParse(t, "2020-12-31")))
}

func TestBusinessClock(t *testing.T) {
	clock, err := NewBusinessClock("")
	require.NoError(t, err)
	assert.Equal(t, BusinessLocation(), clock.Now().Location())

	_, err = NewBusinessClock("Not/AZone")
	assert.Error(t, err)

	fixed := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, fixed, FixedClock(fixed).Now())
}

func TestSpecificationComposition(t *testing.T) {
	ctx := context.Background()
	even := SpecificationFunc[int](func(_ context.Context, n int) bool { return n%2 == 0 })
	positive := SpecificationFunc[int](func(_ context.Context, n int) bool { return n > 0 })

	values := []int{-2, -1, 0, 1, 2, 3, 4}

	assert.Equal(t, []int{2, 4}, Filter(ctx, values, And[int](even, positive)))
	assert.Equal(t, []int{-2, 0, 1, 2, 3, 4}, Filter(ctx, values, Or[int](even, positive)))
	assert.Equal(t, []int{-1, 1, 3}, Filter(ctx, values, Not[int](even)))
	assert.Equal(t, values, Filter[int](ctx, values, nil))
}
