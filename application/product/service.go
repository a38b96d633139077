/*
Package product Application Layer - Product management use cases, admin only
*/
package product

import (
	"context"

	"bakery/application"
	"bakery/domain/product"
	"bakery/domain/user"
	"bakery/pkg/logger"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ProductRequest 创建或修改商品的入参
type ProductRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
}

// ProductResponse 商品返回模型
type ProductResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Status      string `json:"status"`
}

// ApplicationService Product application service
type ApplicationService struct {
	productRepo    product.Repository
	productFactory product.Factory
}

// NewApplicationService Create product application service
func NewApplicationService(productRepo product.Repository, productFactory product.Factory) *ApplicationService {
	return &ApplicationService{productRepo: productRepo, productFactory: productFactory}
}

func toCommand(req ProductRequest) product.Command {
	return product.Command{Name: req.Name, Description: req.Description, Price: req.Price}
}

func toProductResponse(p *product.Product) *ProductResponse {
	return &ProductResponse{
		ID:          p.ID(),
		Name:        p.Name(),
		Description: p.Description(),
		Price:       p.Price().StringFixed(2),
		Status:      string(p.Status()),
	}
}

// AddNewProduct creates an ACTIVE product and returns its id.
func (s *ApplicationService) AddNewProduct(ctx context.Context, u *user.User, req ProductRequest) (int64, error) {
	if err := application.RequireAdmin(ctx, u, "AddNewProduct"); err != nil {
		return 0, err
	}

	p, err := s.productFactory.Create(toCommand(req))
	if err != nil {
		return 0, err
	}
	id, err := s.productRepo.Save(ctx, p)
	if err != nil {
		return 0, err
	}

	logger.FromContext(ctx).Info("Product created", zap.Int64("product_id", id), zap.String("name", p.Name()))
	return id, nil
}

// UpdateExistingProduct replaces name, description and price.
func (s *ApplicationService) UpdateExistingProduct(ctx context.Context, u *user.User, id int64, req ProductRequest) error {
	if err := application.RequireAdmin(ctx, u, "UpdateExistingProduct"); err != nil {
		return err
	}

	existing, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	updated := existing.Copy()
	if err := updated.UpdateWith(toCommand(req)); err != nil {
		return err
	}
	if _, err := s.productRepo.Save(ctx, updated); err != nil {
		return err
	}

	logger.FromContext(ctx).Info("Product updated", zap.Int64("product_id", id))
	return nil
}

// ArchiveProduct removes the product from the orderable ones.
// Past orders keep their snapshot.
func (s *ApplicationService) ArchiveProduct(ctx context.Context, u *user.User, id int64) error {
	if err := application.RequireAdmin(ctx, u, "ArchiveProduct"); err != nil {
		return err
	}

	existing, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	archived := existing.Copy()
	archived.Archive()
	if _, err := s.productRepo.Save(ctx, archived); err != nil {
		return err
	}

	logger.FromContext(ctx).Info("Product archived", zap.Int64("product_id", id))
	return nil
}

// GetActiveProducts returns the ACTIVE products, ascending by id.
func (s *ApplicationService) GetActiveProducts(ctx context.Context, u *user.User) ([]*ProductResponse, error) {
	if err := application.RequireAdmin(ctx, u, "GetActiveProducts"); err != nil {
		return nil, err
	}

	products, err := s.productRepo.FindAllByStatus(ctx, product.StatusActive)
	if err != nil {
		return nil, err
	}
	responses := make([]*ProductResponse, len(products))
	for i, p := range products {
		responses[i] = toProductResponse(p)
	}
	return responses, nil
}
