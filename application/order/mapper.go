package order

import (
	"time"

	"bakery/domain/order"
	"bakery/domain/shared"
)

func toCommand(req OrderRequest) (order.Command, error) {
	pickUpDate, err := parseOptionalDate("pickUpDate", req.PickUpDate)
	if err != nil {
		return order.Command{}, err
	}
	deliveryDate, err := parseOptionalDate("deliveryDate", req.DeliveryDate)
	if err != nil {
		return order.Command{}, err
	}
	reservationDate, err := parseOptionalDate("reservationDate", req.ReservationDate)
	if err != nil {
		return order.Command{}, err
	}

	products := make([]order.ProductQuantity, len(req.Products))
	for i, p := range req.Products {
		products[i] = order.ProductQuantity{ProductID: p.ProductID, Quantity: p.Quantity}
	}

	return order.Command{
		ClientName:         req.ClientName,
		ClientPhoneNumber:  req.ClientPhoneNumber,
		ClientEmailAddress: req.ClientEmailAddress,
		Products:           products,
		Type:               order.Type(req.Type),
		PickUpDate:         pickUpDate,
		DeliveryDate:       deliveryDate,
		ReservationDate:    reservationDate,
		DeliveryAddress:    req.DeliveryAddress,
		Note:               req.Note,
	}, nil
}

func parseOptionalDate(field, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	date, err := shared.ParseDateWithTimeAtNoonUTC(value)
	if err != nil {
		return time.Time{}, order.NewInvalidOrderError(field, "Date "+value+" is invalid")
	}
	return date, nil
}

func formatOptionalDate(date time.Time) string {
	if date.IsZero() {
		return ""
	}
	return shared.DateAsISOStringWithoutTime(date)
}

func toOrderResponse(o *order.Order) *OrderResponse {
	products := make([]ProductWithQuantityResponse, len(o.Products()))
	for i, p := range o.Products() {
		products[i] = ProductWithQuantityResponse{
			Product: ProductSnapshotResponse{
				ID:          p.Product.ID,
				Name:        p.Product.Name,
				Description: p.Product.Description,
				Price:       p.Product.Price.StringFixed(2),
			},
			Quantity: p.Quantity,
		}
	}

	return &OrderResponse{
		ID:                 o.ID(),
		ClientName:         o.ClientName(),
		ClientPhoneNumber:  o.ClientPhoneNumber(),
		ClientEmailAddress: o.ClientEmailAddress(),
		Products:           products,
		Type:               string(o.Type()),
		PickUpDate:         formatOptionalDate(o.PickUpDate()),
		DeliveryDate:       formatOptionalDate(o.DeliveryDate()),
		ReservationDate:    formatOptionalDate(o.ReservationDate()),
		DeliveryAddress:    o.DeliveryAddress(),
		Note:               o.Note(),
		Checked:            o.IsChecked(),
	}
}

func toOrderResponses(orders []*order.Order) []*OrderResponse {
	responses := make([]*OrderResponse, len(orders))
	for i, o := range orders {
		responses[i] = toOrderResponse(o)
	}
	return responses
}

func toOrderedProductResponses(products []order.OrderedProduct) []OrderedProductResponse {
	responses := make([]OrderedProductResponse, len(products))
	for i, p := range products {
		responses[i] = OrderedProductResponse(p)
	}
	return responses
}
