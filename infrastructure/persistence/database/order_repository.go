package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bakery/domain/order"
	"bakery/domain/shared"
	"bakery/infrastructure/persistence/database/po"
	"bakery/infrastructure/persistence/specification"

	"gorm.io/gorm"
)

// PersonalDataCipher protects the personal columns of orders at rest
type PersonalDataCipher interface {
	Encrypt(value string) (string, error)
	Decrypt(value string) (string, error)
}

// OrderRepository GORM implementation of order repository
// Client contact fields and delivery address are encrypted when a cipher is set
type OrderRepository struct {
	db         *gorm.DB
	cipher     PersonalDataCipher
	translator specification.Translator
}

// NewOrderRepository Create order repository, cipher may be nil
func NewOrderRepository(db *gorm.DB, cipher PersonalDataCipher) *OrderRepository {
	return &OrderRepository{
		db:         db,
		cipher:     cipher,
		translator: specification.NewGormTranslator(),
	}
}

// Save Insert new orders, update existing ones
func (r *OrderRepository) Save(ctx context.Context, o *order.Order) (int64, error) {
	orderPO, err := po.FromOrderDomain(o)
	if err != nil {
		return 0, err
	}
	if err := r.encrypt(orderPO); err != nil {
		return 0, err
	}

	db := r.db.WithContext(ctx)
	if orderPO.ID == 0 {
		if err := db.Create(orderPO).Error; err != nil {
			return 0, err
		}
		return orderPO.ID, nil
	}
	result := db.Model(orderPO).Select("*").Omit("created_at").Updates(orderPO)
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected == 0 {
		// MySQL 对值未变化的行也返回 0，需再确认是否存在
		var count int64
		if err := db.Model(&po.OrderPO{}).Where("id = ?", orderPO.ID).Count(&count).Error; err != nil {
			return 0, err
		}
		if count == 0 {
			return 0, order.NewOrderNotFoundError(orderPO.ID)
		}
	}
	return orderPO.ID, nil
}

// FindByID Find order by ID
func (r *OrderRepository) FindByID(ctx context.Context, id int64) (*order.Order, error) {
	var orderPO po.OrderPO
	result := r.db.WithContext(ctx).First(&orderPO, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, order.NewOrderNotFoundError(id)
		}
		return nil, result.Error
	}
	return r.toDomain(&orderPO)
}

func (r *OrderRepository) FindAll(ctx context.Context) ([]*order.Order, error) {
	return r.FindAllSatisfying(ctx, nil)
}

func (r *OrderRepository) FindAllByYear(ctx context.Context, year int) ([]*order.Order, error) {
	return r.FindAllSatisfying(ctx, order.NewByYearSpecification(year))
}

func (r *OrderRepository) FindAllByDate(ctx context.Context, date time.Time) ([]*order.Order, error) {
	return r.FindAllSatisfying(ctx, order.NewByRelevantDateSpecification(date))
}

// FindAllSatisfying returns the orders matching spec, ascending by id
// Specifications without SQL translation are applied in memory
func (r *OrderRepository) FindAllSatisfying(ctx context.Context, spec shared.Specification[*order.Order]) ([]*order.Order, error) {
	query := r.db.WithContext(ctx).Model(&po.OrderPO{})
	scope := r.translator.Translate(spec)
	if scope != nil {
		query = query.Scopes(scope)
	}

	var orderPOs []po.OrderPO
	if err := query.Order("id ASC").Find(&orderPOs).Error; err != nil {
		return nil, err
	}
	orders, err := r.toDomainList(orderPOs)
	if err != nil {
		return nil, err
	}
	if scope == nil && spec != nil {
		orders = shared.Filter(ctx, orders, spec)
	}
	return orders, nil
}

func (r *OrderRepository) FindLast(ctx context.Context, count int) ([]*order.Order, error) {
	var orderPOs []po.OrderPO
	if err := r.db.WithContext(ctx).Order("id DESC").Limit(count).Find(&orderPOs).Error; err != nil {
		return nil, err
	}
	return r.toDomainList(orderPOs)
}

func (r *OrderRepository) Delete(ctx context.Context, o *order.Order) error {
	result := r.db.WithContext(ctx).Delete(&po.OrderPO{}, o.ID())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return order.NewOrderNotFoundError(o.ID())
	}
	return nil
}

func (r *OrderRepository) toDomainList(orderPOs []po.OrderPO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(orderPOs))
	for i := range orderPOs {
		o, err := r.toDomain(&orderPOs[i])
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func (r *OrderRepository) toDomain(orderPO *po.OrderPO) (*order.Order, error) {
	if err := r.decrypt(orderPO); err != nil {
		return nil, err
	}
	return orderPO.ToDomain()
}

func (r *OrderRepository) personalFields(orderPO *po.OrderPO) []*string {
	return []*string{
		&orderPO.ClientName,
		&orderPO.ClientPhoneNumber,
		&orderPO.ClientEmailAddress,
		&orderPO.DeliveryAddress,
	}
}

func (r *OrderRepository) encrypt(orderPO *po.OrderPO) error {
	if r.cipher == nil {
		return nil
	}
	for _, field := range r.personalFields(orderPO) {
		encrypted, err := r.cipher.Encrypt(*field)
		if err != nil {
			return fmt.Errorf("failed to encrypt personal data: %w", err)
		}
		*field = encrypted
	}
	return nil
}

func (r *OrderRepository) decrypt(orderPO *po.OrderPO) error {
	if r.cipher == nil {
		return nil
	}
	for _, field := range r.personalFields(orderPO) {
		decrypted, err := r.cipher.Decrypt(*field)
		if err != nil {
			return fmt.Errorf("failed to decrypt personal data of order %d: %w", orderPO.ID, err)
		}
		*field = decrypted
	}
	return nil
}
