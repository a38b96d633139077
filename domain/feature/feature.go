/*
Package feature Feature flag subdomain
*/
package feature

import (
	"context"
	"errors"

	"bakery/domain/shared"
)

// ProductOrdering gates whether customers may currently place orders.
const ProductOrdering = "PRODUCT_ORDERING"

// Status Feature status enum
type Status string

const (
	StatusEnabled  Status = "ENABLED"
	StatusDisabled Status = "DISABLED"
)

var (
	// ErrFeatureNotFound 功能开关未找到
	ErrFeatureNotFound = errors.New("feature not found")

	// ErrProductOrderingDisabled 下单功能已关闭
	ErrProductOrderingDisabled = errors.New("product ordering disabled")
)

// NewFeatureNotFoundError 创建功能开关未找到错误
func NewFeatureNotFoundError(name string) error {
	return shared.NewError(shared.ErrNotFound, ErrFeatureNotFound, "feature", "", "Feature "+name+" not found")
}

// NewProductOrderingDisabledError 创建下单功能关闭错误
func NewProductOrderingDisabledError() error {
	return shared.NewError(shared.ErrUnavailable, ErrProductOrderingDisabled, "feature", "",
		"Product ordering feature has to be enabled to order products")
}

// Feature Feature flag aggregate root, identified by name
type Feature struct {
	name   string
	status Status
}

// New creates a feature.
func New(name string, status Status) *Feature {
	return &Feature{name: name, status: status}
}

// Copy returns an independent copy of f.
func (f *Feature) Copy() *Feature {
	c := *f
	return &c
}

// Enable sets the status to ENABLED.
func (f *Feature) Enable() { f.status = StatusEnabled }

// Disable sets the status to DISABLED.
func (f *Feature) Disable() { f.status = StatusDisabled }

func (f *Feature) Name() string    { return f.name }
func (f *Feature) Status() Status  { return f.status }
func (f *Feature) IsEnabled() bool { return f.status == StatusEnabled }

//go:generate mockgen -destination=../../mock/feature_repository.go -package=mock -mock_names=Repository=MockFeatureRepository bakery/domain/feature Repository

// Repository Feature repository interface
type Repository interface {
	// FindByName fails with ErrFeatureNotFound
	FindByName(ctx context.Context, name string) (*Feature, error)

	Save(ctx context.Context, f *Feature) error
}
