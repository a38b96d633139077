/*
Package feature Application Layer - PRODUCT_ORDERING toggle
*/
package feature

import (
	"context"

	"bakery/application"
	"bakery/domain/feature"
	"bakery/domain/user"
	"bakery/pkg/logger"

	"go.uber.org/zap"
)

// StatusResponse 功能开关状态
type StatusResponse struct {
	Status string `json:"status"`
}

// ApplicationService Feature application service
type ApplicationService struct {
	featureRepo feature.Repository
}

// NewApplicationService Create feature application service
func NewApplicationService(featureRepo feature.Repository) *ApplicationService {
	return &ApplicationService{featureRepo: featureRepo}
}

// EnableProductOrdering lets customers place orders again.
func (s *ApplicationService) EnableProductOrdering(ctx context.Context, u *user.User) error {
	return s.toggle(ctx, u, "EnableProductOrdering", (*feature.Feature).Enable)
}

// DisableProductOrdering stops customer orders; the admin can still order.
func (s *ApplicationService) DisableProductOrdering(ctx context.Context, u *user.User) error {
	return s.toggle(ctx, u, "DisableProductOrdering", (*feature.Feature).Disable)
}

func (s *ApplicationService) toggle(ctx context.Context, u *user.User, useCase string, transition func(*feature.Feature)) error {
	if err := application.RequireAdmin(ctx, u, useCase); err != nil {
		return err
	}

	existing, err := s.featureRepo.FindByName(ctx, feature.ProductOrdering)
	if err != nil {
		return err
	}
	toggled := existing.Copy()
	transition(toggled)
	if err := s.featureRepo.Save(ctx, toggled); err != nil {
		return err
	}

	logger.FromContext(ctx).Info("Feature toggled",
		zap.String("name", toggled.Name()),
		zap.String("status", string(toggled.Status())))
	return nil
}

// GetProductOrderingStatus is public.
func (s *ApplicationService) GetProductOrderingStatus(ctx context.Context) (*StatusResponse, error) {
	f, err := s.featureRepo.FindByName(ctx, feature.ProductOrdering)
	if err != nil {
		return nil, err
	}
	return &StatusResponse{Status: string(f.Status())}, nil
}
