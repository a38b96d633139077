package po

import (
	"bakery/domain/feature"
)

// FeaturePO Feature flag persistence object
type FeaturePO struct {
	ID     int64  `gorm:"primaryKey;autoIncrement"`
	Name   string `gorm:"size:64;uniqueIndex;not null"`
	Status string `gorm:"size:10;not null"`
}

// TableName Specify table name
func (FeaturePO) TableName() string {
	return "features"
}

// ToDomain Convert persistence object to domain model
func (p *FeaturePO) ToDomain() *feature.Feature {
	return feature.New(p.Name, feature.Status(p.Status))
}
