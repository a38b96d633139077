package database

import (
	"context"
	"errors"

	"bakery/domain/feature"
	"bakery/infrastructure/persistence/database/po"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FeatureRepository GORM implementation of feature repository
type FeatureRepository struct {
	db *gorm.DB
}

// NewFeatureRepository Create feature repository
func NewFeatureRepository(db *gorm.DB) *FeatureRepository {
	return &FeatureRepository{db: db}
}

func (r *FeatureRepository) FindByName(ctx context.Context, name string) (*feature.Feature, error) {
	var featurePO po.FeaturePO
	result := r.db.WithContext(ctx).First(&featurePO, "name = ?", name)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, feature.NewFeatureNotFoundError(name)
		}
		return nil, result.Error
	}
	return featurePO.ToDomain(), nil
}

// Save upserts the feature by name
func (r *FeatureRepository) Save(ctx context.Context, f *feature.Feature) error {
	featurePO := po.FeaturePO{Name: f.Name(), Status: string(f.Status())}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"status"}),
	}).Create(&featurePO).Error
}
