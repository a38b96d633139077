/*
Package notification Order notification subdomain

A notification is built from a persisted order and handed to a Repository,
which delivers it (email, message broker or log).
*/
package notification

import (
	"context"
	"fmt"
	"strings"

	"bakery/domain/order"
	"bakery/domain/shared"
)

// OrderNotification Message sent to the bakery for a new order
type OrderNotification struct {
	Subject string
	Body    string
}

//go:generate mockgen -destination=../../mock/notification_repository.go -package=mock -mock_names=Repository=MockNotificationRepository bakery/domain/notification Repository

// Repository delivers notifications.
type Repository interface {
	Send(ctx context.Context, n OrderNotification) error
}

// Factory builds the notification of a saved order.
type Factory interface {
	Create(o *order.Order) OrderNotification
}

type factory struct{}

// NewFactory returns the default notification factory.
func NewFactory() Factory {
	return factory{}
}

// Create renders the subject and body for o, which must carry its id.
func (factory) Create(o *order.Order) OrderNotification {
	var b strings.Builder
	fmt.Fprintf(&b, "Client : %s\n", o.ClientName())
	fmt.Fprintf(&b, "Téléphone : %s\n", o.ClientPhoneNumber())
	fmt.Fprintf(&b, "Courriel : %s\n", o.ClientEmailAddress())
	fmt.Fprintf(&b, "Type : %s\n", o.Type().Label())
	fmt.Fprintf(&b, "Date : %s\n", shared.DateAsISOStringWithoutTime(o.RelevantDate()))
	if o.Type() == order.TypeDelivery {
		fmt.Fprintf(&b, "Adresse de livraison : %s\n", o.DeliveryAddress())
	}
	if o.Note() != "" {
		fmt.Fprintf(&b, "Note : %s\n", o.Note())
	}
	b.WriteString("Produits :\n")
	for _, p := range o.Products() {
		fmt.Fprintf(&b, "- %d x %s\n", p.Quantity, p.Product.Name)
	}

	return OrderNotification{
		Subject: fmt.Sprintf("Nouvelle commande #%d", o.ID()),
		Body:    b.String(),
	}
}
