package po

import (
	"encoding/json"
	"fmt"
	"time"

	"bakery/domain/order"
	"bakery/domain/product"
	"bakery/domain/shared"

	"github.com/shopspring/decimal"
)

// OrderPO Order persistence object
// Note: Only used for database mapping, does not contain any business logic
// Dates are stored as YYYY-MM-DD strings and NULL when absent
type OrderPO struct {
	ID                 int64     `gorm:"primaryKey;autoIncrement"`
	ClientName         string    `gorm:"size:512"`
	ClientPhoneNumber  string    `gorm:"size:512"`
	ClientEmailAddress string    `gorm:"size:512"`
	Products           string    `gorm:"type:text;not null"`
	Type               string    `gorm:"size:12;not null"`
	PickUpDate         *string   `gorm:"size:10;index"`
	DeliveryDate       *string   `gorm:"size:10;index"`
	DeliveryAddress    string    `gorm:"size:1024"`
	ReservationDate    *string   `gorm:"size:10;index"`
	Note               string    `gorm:"type:text"`
	Checked            bool      `gorm:"not null;default:false"`
	CreatedAt          time.Time `gorm:"autoCreateTime"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime"`
}

// TableName Specify table name
func (OrderPO) TableName() string {
	return "orders"
}

// OrderedProductPO Product snapshot stored in the products column
type OrderedProductPO struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
}

// FromOrderDomain Convert domain model to persistence object
func FromOrderDomain(o *order.Order) (*OrderPO, error) {
	lines := o.Products()
	products := make([]OrderedProductPO, len(lines))
	for i, l := range lines {
		products[i] = OrderedProductPO{
			ID:          l.Product.ID,
			Name:        l.Product.Name,
			Description: l.Product.Description,
			Price:       l.Product.Price,
			Quantity:    l.Quantity,
		}
	}
	encoded, err := json.Marshal(products)
	if err != nil {
		return nil, fmt.Errorf("failed to encode order products: %w", err)
	}

	return &OrderPO{
		ID:                 o.ID(),
		ClientName:         o.ClientName(),
		ClientPhoneNumber:  o.ClientPhoneNumber(),
		ClientEmailAddress: o.ClientEmailAddress(),
		Products:           string(encoded),
		Type:               string(o.Type()),
		PickUpDate:         dateColumn(o.PickUpDate()),
		DeliveryDate:       dateColumn(o.DeliveryDate()),
		DeliveryAddress:    o.DeliveryAddress(),
		ReservationDate:    dateColumn(o.ReservationDate()),
		Note:               o.Note(),
		Checked:            o.IsChecked(),
	}, nil
}

// ToDomain Convert persistence object to domain model
func (p *OrderPO) ToDomain() (*order.Order, error) {
	var products []OrderedProductPO
	if err := json.Unmarshal([]byte(p.Products), &products); err != nil {
		return nil, fmt.Errorf("failed to decode products of order %d: %w", p.ID, err)
	}
	lines := make([]order.ProductWithQuantity, len(products))
	for i, pr := range products {
		lines[i] = order.ProductWithQuantity{
			Product: product.Snapshot{
				ID:          pr.ID,
				Name:        pr.Name,
				Description: pr.Description,
				Price:       pr.Price,
			},
			Quantity: pr.Quantity,
		}
	}

	pickUpDate, err := parseDateColumn(p.PickUpDate)
	if err != nil {
		return nil, err
	}
	deliveryDate, err := parseDateColumn(p.DeliveryDate)
	if err != nil {
		return nil, err
	}
	reservationDate, err := parseDateColumn(p.ReservationDate)
	if err != nil {
		return nil, err
	}

	return order.RebuildFromDTO(order.ReconstructionDTO{
		ID:                 p.ID,
		ClientName:         p.ClientName,
		ClientPhoneNumber:  p.ClientPhoneNumber,
		ClientEmailAddress: p.ClientEmailAddress,
		Products:           lines,
		Type:               order.Type(p.Type),
		PickUpDate:         pickUpDate,
		DeliveryDate:       deliveryDate,
		ReservationDate:    reservationDate,
		DeliveryAddress:    p.DeliveryAddress,
		Note:               p.Note,
		Checked:            p.Checked,
	}), nil
}

func dateColumn(t time.Time) *string {
	if t.IsZero() {
		return nil
	}
	s := shared.DateAsISOStringWithoutTime(t)
	return &s
}

func parseDateColumn(value *string) (time.Time, error) {
	if value == nil {
		return time.Time{}, nil
	}
	t, err := shared.ParseDateWithTimeAtNoonUTC(*value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date column %q: %w", *value, err)
	}
	return t, nil
}
