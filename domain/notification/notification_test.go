package notification

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"bakery/domain/order"
	"bakery/domain/product"
)

func TestFactory_Create(t *testing.T) {
	o := order.RebuildFromDTO(order.ReconstructionDTO{
		ID:                 42,
		ClientName:         "Jeanne Tremblay",
		ClientPhoneNumber:  "514-555-0101",
		ClientEmailAddress: "jeanne@example.com",
		Products: []order.ProductWithQuantity{
			{Product: product.Snapshot{ID: 1, Name: "Baguette", Price: decimal.NewFromInt(3)}, Quantity: 2},
			{Product: product.Snapshot{ID: 2, Name: "Croissant", Price: decimal.NewFromInt(2)}, Quantity: 6},
		},
		Type:            order.TypeDelivery,
		DeliveryDate:    time.Date(2021, 3, 12, 12, 0, 0, 0, time.UTC),
		DeliveryAddress: "1 rue Principale",
		Note:            "Sonner deux fois",
	})

	n := NewFactory().Create(o)

	assert.Equal(t, "Nouvelle commande #42", n.Subject)
	assert.Contains(t, n.Body, "Client : Jeanne Tremblay\n")
	assert.Contains(t, n.Body, "Type : Livraison\n")
	assert.Contains(t, n.Body, "Date : 2021-03-12\n")
	assert.Contains(t, n.Body, "Adresse de livraison : 1 rue Principale\n")
	assert.Contains(t, n.Body, "Note : Sonner deux fois\n")
	assert.Contains(t, n.Body, "- 2 x Baguette\n- 6 x Croissant\n")
}

func TestFactory_CreateOmitsDeliveryAddressForPickUp(t *testing.T) {
	o := order.RebuildFromDTO(order.ReconstructionDTO{
		ID:         7,
		Type:       order.TypePickUp,
		PickUpDate: time.Date(2021, 3, 13, 12, 0, 0, 0, time.UTC),
		Products: []order.ProductWithQuantity{
			{Product: product.Snapshot{ID: 1, Name: "Baguette"}, Quantity: 1},
		},
	})

	n := NewFactory().Create(o)

	assert.Equal(t, "Nouvelle commande #7", n.Subject)
	assert.Contains(t, n.Body, "Type : Cueillette\n")
	assert.NotContains(t, n.Body, "Adresse de livraison")
	assert.NotContains(t, n.Body, "Note :")
}
