package database

import (
	"context"
	"errors"

	"bakery/domain/product"
	"bakery/infrastructure/persistence/database/po"

	"gorm.io/gorm"
)

// ProductRepository GORM implementation of product repository
type ProductRepository struct {
	db *gorm.DB
}

// NewProductRepository Create product repository
func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Save(ctx context.Context, p *product.Product) (int64, error) {
	productPO := po.FromProductDomain(p)
	db := r.db.WithContext(ctx)
	if productPO.ID == 0 {
		if err := db.Create(productPO).Error; err != nil {
			return 0, err
		}
		return productPO.ID, nil
	}
	if err := db.Model(productPO).Select("*").Omit("created_at").Updates(productPO).Error; err != nil {
		return 0, err
	}
	return productPO.ID, nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id int64) (*product.Product, error) {
	var productPO po.ProductPO
	result := r.db.WithContext(ctx).First(&productPO, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, product.NewProductNotFoundError(id)
		}
		return nil, result.Error
	}
	return productPO.ToDomain(), nil
}

func (r *ProductRepository) FindAllByStatus(ctx context.Context, status product.Status) ([]*product.Product, error) {
	var productPOs []po.ProductPO
	if err := r.db.WithContext(ctx).
		Where("status = ?", string(status)).
		Order("id ASC").
		Find(&productPOs).Error; err != nil {
		return nil, err
	}

	products := make([]*product.Product, len(productPOs))
	for i := range productPOs {
		products[i] = productPOs[i].ToDomain()
	}
	return products, nil
}
