package order

import (
	"strconv"
	"time"

	"bakery/domain/closingperiod"
	"bakery/domain/product"
	"bakery/domain/shared"
)

// Factory creates and updates orders, validating them against the active
// products and closing periods at hand.
type Factory interface {
	// Create validates cmd and returns a new order without id.
	// Admins bypass contact and date policies but never product checks.
	Create(cmd Command, activeProducts []*product.Product, closingPeriods []*closingperiod.ClosingPeriod, isAdmin bool) (*Order, error)

	// UpdateWith validates cmd with the full policy and replaces the content
	// of o, keeping its id and checked flag. o is left untouched on error.
	UpdateWith(o *Order, cmd Command, activeProducts []*product.Product, closingPeriods []*closingperiod.ClosingPeriod) error
}

type factory struct {
	clock shared.Clock
}

// NewFactory returns a Factory validating dates against clock.
func NewFactory(clock shared.Clock) Factory {
	return &factory{clock: clock}
}

func (f *factory) Create(cmd Command, activeProducts []*product.Product, closingPeriods []*closingperiod.ClosingPeriod, isAdmin bool) (*Order, error) {
	v, err := validate(cmd, activeProducts, closingPeriods, !isAdmin, f.clock.Now())
	if err != nil {
		return nil, err
	}
	o := &Order{}
	o.apply(v)
	return o, nil
}

func (f *factory) UpdateWith(o *Order, cmd Command, activeProducts []*product.Product, closingPeriods []*closingperiod.ClosingPeriod) error {
	v, err := validate(cmd, activeProducts, closingPeriods, true, f.clock.Now())
	if err != nil {
		return err
	}
	o.apply(v)
	return nil
}

// validated holds the normalized content of a valid command.
type validated struct {
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
}

// validate is the single validation path of orders. enforcePolicy toggles the
// contact and date rules; type, product and quantity rules always apply.
func validate(cmd Command, activeProducts []*product.Product, closingPeriods []*closingperiod.ClosingPeriod, enforcePolicy bool, now time.Time) (validated, error) {
	if !cmd.Type.IsValid() {
		return validated{}, NewInvalidOrderError("type", "Order type has to be one of PICK_UP, DELIVERY or RESERVATION")
	}

	date, dateField := relevantDate(cmd)

	if enforcePolicy {
		if err := validatePolicy(cmd, date, dateField, closingPeriods, now); err != nil {
			return validated{}, err
		}
	}

	products, err := resolveProducts(cmd.Products, activeProducts)
	if err != nil {
		return validated{}, err
	}

	v := validated{
		clientName:         cmd.ClientName,
		clientPhoneNumber:  cmd.ClientPhoneNumber,
		clientEmailAddress: cmd.ClientEmailAddress,
		products:           products,
		orderType:          cmd.Type,
		note:               cmd.Note,
	}
	switch cmd.Type {
	case TypePickUp:
		v.pickUpDate = date
	case TypeDelivery:
		v.deliveryDate = date
		v.deliveryAddress = cmd.DeliveryAddress
	case TypeReservation:
		v.reservationDate = date
	}
	return v, nil
}

func relevantDate(cmd Command) (time.Time, string) {
	switch cmd.Type {
	case TypeDelivery:
		return cmd.DeliveryDate, "deliveryDate"
	case TypeReservation:
		return cmd.ReservationDate, "reservationDate"
	default:
		return cmd.PickUpDate, "pickUpDate"
	}
}

func validatePolicy(cmd Command, date time.Time, dateField string, closingPeriods []*closingperiod.ClosingPeriod, now time.Time) error {
	if cmd.ClientName == "" {
		return NewInvalidOrderError("clientName", "Client name has to be defined")
	}
	if cmd.ClientPhoneNumber == "" {
		return NewInvalidOrderError("clientPhoneNumber", "Client phone number has to be defined")
	}
	if cmd.ClientEmailAddress == "" {
		return NewInvalidOrderError("clientEmailAddress", "Client email address has to be defined")
	}

	if date.IsZero() {
		return NewInvalidOrderError(dateField, "Order date has to be defined for a "+string(cmd.Type)+" order")
	}
	if !shared.IsFirstDateBeforeSecondDateIgnoringHours(now, date) {
		return NewInvalidOrderError(dateField, "Order date has to be in the future")
	}

	if cmd.Type == TypeDelivery && cmd.DeliveryAddress == "" {
		return NewInvalidOrderError("deliveryAddress", "Delivery address has to be defined for a DELIVERY order")
	}

	if cmd.Type == TypePickUp {
		earliest := EarliestPickUpDate(now)
		if shared.DateAsISOStringWithoutTime(date) < shared.DateAsISOStringWithoutTime(earliest) {
			return NewInvalidOrderError(dateField,
				"Pick-up date has to be on or after "+shared.DateAsISOStringWithoutTime(earliest))
		}
	}

	if IsClosingDay(date) {
		return NewInvalidOrderError(dateField, "Order date can not be a closing day of the bakery")
	}

	for _, period := range closingPeriods {
		if period.Contains(date) {
			return NewInvalidOrderError(dateField, "Order date can not be within a closing period, from "+
				shared.DateAsISOStringWithoutTime(period.StartDate())+" to "+
				shared.DateAsISOStringWithoutTime(period.EndDate()))
		}
	}
	return nil
}

// resolveProducts builds snapshots from the active products, never from the
// caller's payload.
func resolveProducts(requested []ProductQuantity, activeProducts []*product.Product) ([]ProductWithQuantity, error) {
	if len(requested) == 0 {
		return nil, NewInvalidOrderError("products", "Order has to contain at least one product")
	}

	byID := make(map[int64]*product.Product, len(activeProducts))
	for _, p := range activeProducts {
		byID[p.ID()] = p
	}

	result := make([]ProductWithQuantity, 0, len(requested))
	for _, r := range requested {
		p, ok := byID[r.ProductID]
		if !ok {
			return nil, NewInvalidOrderError("products",
				"Product with id "+strconv.FormatInt(r.ProductID, 10)+" is not an active product")
		}
		if r.Quantity <= 0 {
			return nil, NewInvalidOrderError("products",
				"Quantity of product "+p.Name()+" has to be a positive integer")
		}
		result = append(result, ProductWithQuantity{Product: p.Snapshot(), Quantity: r.Quantity})
	}
	return result, nil
}
