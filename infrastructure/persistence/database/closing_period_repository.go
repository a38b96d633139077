package database

import (
	"context"
	"errors"

	"bakery/domain/closingperiod"
	"bakery/infrastructure/persistence/database/po"

	"gorm.io/gorm"
)

// ClosingPeriodRepository GORM implementation of closing period repository
type ClosingPeriodRepository struct {
	db *gorm.DB
}

// NewClosingPeriodRepository Create closing period repository
func NewClosingPeriodRepository(db *gorm.DB) *ClosingPeriodRepository {
	return &ClosingPeriodRepository{db: db}
}

func (r *ClosingPeriodRepository) Save(ctx context.Context, c *closingperiod.ClosingPeriod) (int64, error) {
	periodPO := po.FromClosingPeriodDomain(c)
	db := r.db.WithContext(ctx)
	if periodPO.ID == 0 {
		if err := db.Create(periodPO).Error; err != nil {
			return 0, err
		}
		return periodPO.ID, nil
	}
	if err := db.Save(periodPO).Error; err != nil {
		return 0, err
	}
	return periodPO.ID, nil
}

func (r *ClosingPeriodRepository) FindByID(ctx context.Context, id int64) (*closingperiod.ClosingPeriod, error) {
	var periodPO po.ClosingPeriodPO
	result := r.db.WithContext(ctx).First(&periodPO, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, closingperiod.NewClosingPeriodNotFoundError(id)
		}
		return nil, result.Error
	}
	return periodPO.ToDomain()
}

func (r *ClosingPeriodRepository) FindAll(ctx context.Context) ([]*closingperiod.ClosingPeriod, error) {
	var periodPOs []po.ClosingPeriodPO
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&periodPOs).Error; err != nil {
		return nil, err
	}

	periods := make([]*closingperiod.ClosingPeriod, 0, len(periodPOs))
	for i := range periodPOs {
		c, err := periodPOs[i].ToDomain()
		if err != nil {
			return nil, err
		}
		periods = append(periods, c)
	}
	return periods, nil
}

func (r *ClosingPeriodRepository) Delete(ctx context.Context, c *closingperiod.ClosingPeriod) error {
	result := r.db.WithContext(ctx).Delete(&po.ClosingPeriodPO{}, c.ID())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return closingperiod.NewClosingPeriodNotFoundError(c.ID())
	}
	return nil
}
