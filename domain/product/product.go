/*
Package product Product subdomain

Products are managed by the administrator and referenced by orders through
an immutable Snapshot taken when the order is validated.
*/
package product

import (
	"github.com/shopspring/decimal"
)

// Status Product status enum
type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusArchived Status = "ARCHIVED"
)

// Product Product aggregate root
type Product struct {
	id          int64
	name        string
	description string
	price       decimal.Decimal
	status      Status
}

// Command carries the writable fields of a product.
type Command struct {
	Name        string
	Description string
	Price       decimal.Decimal
}

// Snapshot is the copy of a product stored inside an order.
type Snapshot struct {
	ID          int64
	Name        string
	Description string
	Price       decimal.Decimal
}

// Factory creates products from commands.
type Factory interface {
	Create(cmd Command) (*Product, error)
}

type factory struct{}

// NewFactory returns the default product factory.
func NewFactory() Factory {
	return factory{}
}

// Create validates cmd and returns a new ACTIVE product without id.
func (factory) Create(cmd Command) (*Product, error) {
	if err := validate(cmd); err != nil {
		return nil, err
	}
	return &Product{
		name:        cmd.Name,
		description: cmd.Description,
		price:       cmd.Price,
		status:      StatusActive,
	}, nil
}

func validate(cmd Command) error {
	if cmd.Name == "" {
		return NewInvalidProductError("name", "Product name is required")
	}
	if cmd.Price.IsNegative() {
		return NewInvalidProductError("price", "Product price must be positive")
	}
	return nil
}

// ReconstructionDTO is used by repositories to rebuild a product.
type ReconstructionDTO struct {
	ID          int64
	Name        string
	Description string
	Price       decimal.Decimal
	Status      Status
}

// RebuildFromDTO rebuilds a product from storage.
func RebuildFromDTO(dto ReconstructionDTO) *Product {
	return &Product{
		id:          dto.ID,
		name:        dto.Name,
		description: dto.Description,
		price:       dto.Price,
		status:      dto.Status,
	}
}

// Copy returns an independent copy of p.
func (p *Product) Copy() *Product {
	c := *p
	return &c
}

// WithID returns a copy of p carrying id.
func (p *Product) WithID(id int64) *Product {
	c := p.Copy()
	c.id = id
	return c
}

// UpdateWith replaces the writable fields after validating cmd.
func (p *Product) UpdateWith(cmd Command) error {
	if err := validate(cmd); err != nil {
		return err
	}
	p.name = cmd.Name
	p.description = cmd.Description
	p.price = cmd.Price
	return nil
}

// Archive marks p as no longer orderable.
func (p *Product) Archive() {
	p.status = StatusArchived
}

// Snapshot returns the order-time copy of p.
func (p *Product) Snapshot() Snapshot {
	return Snapshot{
		ID:          p.id,
		Name:        p.name,
		Description: p.description,
		Price:       p.price,
	}
}

func (p *Product) ID() int64              { return p.id }
func (p *Product) Name() string           { return p.name }
func (p *Product) Description() string    { return p.description }
func (p *Product) Price() decimal.Decimal { return p.price }
func (p *Product) Status() Status         { return p.status }
func (p *Product) IsActive() bool         { return p.status == StatusActive }
