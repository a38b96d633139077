/*
Package closingperiod Closing period subdomain

A closing period is an inclusive range of calendar dates during which the
bakery takes no order.
*/
package closingperiod

import (
	"context"
	"errors"
	"strconv"
	"time"

	"bakery/domain/shared"
)

var (
	// ErrClosingPeriodNotFound 关闭期间未找到
	ErrClosingPeriodNotFound = errors.New("closing period not found")

	// ErrInvalidClosingPeriod 关闭期间不合法
	ErrInvalidClosingPeriod = errors.New("invalid closing period")
)

// NewClosingPeriodNotFoundError 创建关闭期间未找到错误
func NewClosingPeriodNotFoundError(id int64) error {
	return shared.NewError(shared.ErrNotFound, ErrClosingPeriodNotFound, "closing_period", "",
		"Closing period with id "+strconv.FormatInt(id, 10)+" not found")
}

// NewInvalidClosingPeriodError 创建关闭期间校验错误
func NewInvalidClosingPeriodError(field, message string) error {
	return shared.NewError(shared.ErrInvalidInput, ErrInvalidClosingPeriod, "closing_period", field, message)
}

// ClosingPeriod Closing period aggregate root
type ClosingPeriod struct {
	id        int64
	startDate time.Time
	endDate   time.Time
}

// Command carries the bounds of a new closing period.
type Command struct {
	StartDate time.Time
	EndDate   time.Time
}

// New validates cmd and returns a closing period anchored at noon UTC.
func New(cmd Command) (*ClosingPeriod, error) {
	if cmd.StartDate.IsZero() {
		return nil, NewInvalidClosingPeriodError("startDate", "Closing period start date is required")
	}
	if cmd.EndDate.IsZero() {
		return nil, NewInvalidClosingPeriodError("endDate", "Closing period end date is required")
	}
	start := shared.AtNoonUTC(cmd.StartDate.UTC())
	end := shared.AtNoonUTC(cmd.EndDate.UTC())
	if end.Before(start) {
		return nil, NewInvalidClosingPeriodError("endDate", "Closing period end date must not be before its start date")
	}
	return &ClosingPeriod{startDate: start, endDate: end}, nil
}

// ReconstructionDTO is used by repositories to rebuild a closing period.
type ReconstructionDTO struct {
	ID        int64
	StartDate time.Time
	EndDate   time.Time
}

// RebuildFromDTO rebuilds a closing period from storage.
func RebuildFromDTO(dto ReconstructionDTO) *ClosingPeriod {
	return &ClosingPeriod{id: dto.ID, startDate: dto.StartDate, endDate: dto.EndDate}
}

// WithID returns a copy of c carrying id.
func (c *ClosingPeriod) WithID(id int64) *ClosingPeriod {
	cp := *c
	cp.id = id
	return &cp
}

// Contains reports whether the calendar date of date is within [start, end].
func (c *ClosingPeriod) Contains(date time.Time) bool {
	d := shared.DateAsISOStringWithoutTime(date)
	return d >= shared.DateAsISOStringWithoutTime(c.startDate) &&
		d <= shared.DateAsISOStringWithoutTime(c.endDate)
}

func (c *ClosingPeriod) ID() int64            { return c.id }
func (c *ClosingPeriod) StartDate() time.Time { return c.startDate }
func (c *ClosingPeriod) EndDate() time.Time   { return c.endDate }

//go:generate mockgen -destination=../../mock/closing_period_repository.go -package=mock -mock_names=Repository=MockClosingPeriodRepository bakery/domain/closingperiod Repository

// Repository Closing period repository interface
type Repository interface {
	FindAll(ctx context.Context) ([]*ClosingPeriod, error)

	// FindByID fails with ErrClosingPeriodNotFound
	FindByID(ctx context.Context, id int64) (*ClosingPeriod, error)

	Save(ctx context.Context, c *ClosingPeriod) (int64, error)
	Delete(ctx context.Context, c *ClosingPeriod) error
}
