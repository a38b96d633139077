/*
Package order Order subdomain - Core layer of the bakery backend

The Order aggregate guarantees that only valid orders are ever persisted:
  - it is created through a Factory, which validates a Command against the
    active products and closing periods
  - it is never mutated as read from storage; callers Copy it first and then
    apply a transition (Check, Uncheck, Factory.UpdateWith)
  - its products are snapshots, so archiving a product later does not affect
    past orders
*/
package order

import (
	"time"

	"bakery/domain/product"
)

// Order Order aggregate root
type Order struct {
	id                 int64
	clientName         string
	clientPhoneNumber  string
	clientEmailAddress string
	products           []ProductWithQuantity
	orderType          Type
	pickUpDate         time.Time
	deliveryDate       time.Time
	reservationDate    time.Time
	deliveryAddress    string
	note               string
	checked            bool
}

// ProductWithQuantity Ordered product snapshot and its quantity
type ProductWithQuantity struct {
	Product  product.Snapshot
	Quantity int
}

// ProductQuantity references an active product in a Command.
type ProductQuantity struct {
	ProductID int64
	Quantity  int
}

// Command Order creation or update request
// Dates are expected at noon UTC; a zero date means absent.
type Command struct {
	ClientName         string
	ClientPhoneNumber  string
	ClientEmailAddress string
	Products           []ProductQuantity
	Type               Type
	PickUpDate         time.Time
	DeliveryDate       time.Time
	ReservationDate    time.Time
	DeliveryAddress    string
	Note               string
}

// ============================================================================
// ReconstructionDTO - For Repository Layer Use Only
// ============================================================================

// ReconstructionDTO Order reconstruction data transfer object
// Limited to repository layer usage, for reconstructing Order aggregate root from storage
type ReconstructionDTO struct {
	ID                 int64
	ClientName         string
	ClientPhoneNumber  string
	ClientEmailAddress string
	Products           []ProductWithQuantity
	Type               Type
	PickUpDate         time.Time
	DeliveryDate       time.Time
	ReservationDate    time.Time
	DeliveryAddress    string
	Note               string
	Checked            bool
}

// RebuildFromDTO Reconstruct Order aggregate root from DTO without validation
func RebuildFromDTO(dto ReconstructionDTO) *Order {
	return &Order{
		id:                 dto.ID,
		clientName:         dto.ClientName,
		clientPhoneNumber:  dto.ClientPhoneNumber,
		clientEmailAddress: dto.ClientEmailAddress,
		products:           append([]ProductWithQuantity(nil), dto.Products...),
		orderType:          dto.Type,
		pickUpDate:         dto.PickUpDate,
		deliveryDate:       dto.DeliveryDate,
		reservationDate:    dto.ReservationDate,
		deliveryAddress:    dto.DeliveryAddress,
		note:               dto.Note,
		checked:            dto.Checked,
	}
}

// ============================================================================
// Transitions
// ============================================================================

// Copy returns an independent copy of o.
func (o *Order) Copy() *Order {
	c := *o
	c.products = append([]ProductWithQuantity(nil), o.products...)
	return &c
}

// WithID returns a copy of o carrying the id assigned by storage.
func (o *Order) WithID(id int64) *Order {
	c := o.Copy()
	c.id = id
	return c
}

// Check marks o as handled by the administrator.
func (o *Order) Check() {
	o.checked = true
}

// Uncheck clears the checked flag.
func (o *Order) Uncheck() {
	o.checked = false
}

// apply replaces everything but id and checked with validated values.
func (o *Order) apply(v validated) {
	o.clientName = v.clientName
	o.clientPhoneNumber = v.clientPhoneNumber
	o.clientEmailAddress = v.clientEmailAddress
	o.products = v.products
	o.orderType = v.orderType
	o.pickUpDate = v.pickUpDate
	o.deliveryDate = v.deliveryDate
	o.reservationDate = v.reservationDate
	o.deliveryAddress = v.deliveryAddress
	o.note = v.note
}

// ============================================================================
// Getters
// ============================================================================

func (o *Order) ID() int64                  { return o.id }
func (o *Order) ClientName() string         { return o.clientName }
func (o *Order) ClientPhoneNumber() string  { return o.clientPhoneNumber }
func (o *Order) ClientEmailAddress() string { return o.clientEmailAddress }
func (o *Order) Type() Type                 { return o.orderType }
func (o *Order) PickUpDate() time.Time      { return o.pickUpDate }
func (o *Order) DeliveryDate() time.Time    { return o.deliveryDate }
func (o *Order) ReservationDate() time.Time { return o.reservationDate }
func (o *Order) DeliveryAddress() string    { return o.deliveryAddress }
func (o *Order) Note() string               { return o.note }
func (o *Order) IsChecked() bool            { return o.checked }

// Products returns a copy of the ordered products.
func (o *Order) Products() []ProductWithQuantity {
	return append([]ProductWithQuantity(nil), o.products...)
}

// RelevantDate returns whichever of the pick-up, delivery or reservation
// date is set, in that order of precedence.
func (o *Order) RelevantDate() time.Time {
	switch {
	case !o.pickUpDate.IsZero():
		return o.pickUpDate
	case !o.deliveryDate.IsZero():
		return o.deliveryDate
	default:
		return o.reservationDate
	}
}
