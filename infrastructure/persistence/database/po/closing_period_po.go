package po

import (
	"fmt"

	"bakery/domain/closingperiod"
	"bakery/domain/shared"
)

// ClosingPeriodPO Closing period persistence object
type ClosingPeriodPO struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	StartDate string `gorm:"size:10;not null"`
	EndDate   string `gorm:"size:10;not null"`
}

// TableName Specify table name
func (ClosingPeriodPO) TableName() string {
	return "closing_periods"
}

// FromClosingPeriodDomain Convert domain model to persistence object
func FromClosingPeriodDomain(c *closingperiod.ClosingPeriod) *ClosingPeriodPO {
	return &ClosingPeriodPO{
		ID:        c.ID(),
		StartDate: shared.DateAsISOStringWithoutTime(c.StartDate()),
		EndDate:   shared.DateAsISOStringWithoutTime(c.EndDate()),
	}
}

// ToDomain Convert persistence object to domain model
func (p *ClosingPeriodPO) ToDomain() (*closingperiod.ClosingPeriod, error) {
	start, err := shared.ParseDateWithTimeAtNoonUTC(p.StartDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start date of closing period %d: %w", p.ID, err)
	}
	end, err := shared.ParseDateWithTimeAtNoonUTC(p.EndDate)
	if err != nil {
		return nil, fmt.Errorf("invalid end date of closing period %d: %w", p.ID, err)
	}
	return closingperiod.RebuildFromDTO(closingperiod.ReconstructionDTO{
		ID:        p.ID,
		StartDate: start,
		EndDate:   end,
	}), nil
}
