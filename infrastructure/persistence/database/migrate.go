package database

import (
	"fmt"

	"bakery/domain/feature"
	"bakery/infrastructure/persistence/database/po"
	"bakery/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Migrate creates or updates the schema and seeds the feature flags.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&po.OrderPO{}, &po.ProductPO{}, &po.ClosingPeriodPO{}, &po.FeaturePO{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return SeedFeatures(db)
}

// SeedFeatures inserts PRODUCT_ORDERING as enabled unless it already exists.
func SeedFeatures(db *gorm.DB) error {
	var count int64
	if err := db.Model(&po.FeaturePO{}).Where("name = ?", feature.ProductOrdering).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to read features: %w", err)
	}
	if count > 0 {
		return nil
	}

	seed := po.FeaturePO{Name: feature.ProductOrdering, Status: string(feature.StatusEnabled)}
	if err := db.Create(&seed).Error; err != nil {
		return fmt.Errorf("failed to seed features: %w", err)
	}
	logger.Info("Feature seeded", zap.String("name", seed.Name), zap.String("status", seed.Status))
	return nil
}
