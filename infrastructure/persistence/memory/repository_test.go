package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bakery/domain/closingperiod"
	"bakery/domain/feature"
	"bakery/domain/order"
	"bakery/domain/product"
	"bakery/domain/shared"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := shared.ParseDateWithTimeAtNoonUTC(s)
	require.NoError(t, err)
	return d
}

func newOrder(dto order.ReconstructionDTO) *order.Order {
	dto.Products = []order.ProductWithQuantity{{Product: product.Snapshot{ID: 1, Name: "Baguette"}, Quantity: 1}}
	return order.RebuildFromDTO(dto)
}

func TestOrderRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository()

	id1, err := repo.Save(ctx, newOrder(order.ReconstructionDTO{Type: order.TypePickUp, PickUpDate: date(t, "2020-03-05")}))
	require.NoError(t, err)
	id2, err := repo.Save(ctx, newOrder(order.ReconstructionDTO{Type: order.TypeDelivery, DeliveryDate: date(t, "2020-03-05")}))
	require.NoError(t, err)
	id3, err := repo.Save(ctx, newOrder(order.ReconstructionDTO{Type: order.TypeReservation, ReservationDate: date(t, "2021-01-02")}))
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, []int64{id1, id2, id3})

	found, err := repo.FindByID(ctx, id2)
	require.NoError(t, err)
	assert.Equal(t, order.TypeDelivery, found.Type())

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, ids(all))

	byDate, err := repo.FindAllByDate(ctx, date(t, "2020-03-05"))
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, ids(byDate))

	byYear, err := repo.FindAllByYear(ctx, 2021)
	require.NoError(t, err)
	assert.Equal(t, []int64{3}, ids(byYear))

	last, err := repo.FindLast(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 2}, ids(last))

	everything, err := repo.FindLast(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 2, 1}, ids(everything))

	checked := found.Copy()
	checked.Check()
	_, err = repo.Save(ctx, checked)
	require.NoError(t, err)
	reloaded, err := repo.FindByID(ctx, id2)
	require.NoError(t, err)
	assert.True(t, reloaded.IsChecked())
	assert.False(t, found.IsChecked())

	require.NoError(t, repo.Delete(ctx, reloaded))
	_, err = repo.FindByID(ctx, id2)
	assert.True(t, errors.Is(err, order.ErrOrderNotFound))
	assert.True(t, errors.Is(err, shared.ErrNotFound))
	assert.True(t, errors.Is(repo.Delete(ctx, reloaded), order.ErrOrderNotFound))

	_, err = repo.Save(ctx, reloaded)
	assert.True(t, errors.Is(err, order.ErrOrderNotFound))
	remaining, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 3}, ids(remaining))
}

func ids(orders []*order.Order) []int64 {
	result := make([]int64, 0, len(orders))
	for _, o := range orders {
		result = append(result, o.ID())
	}
	return result
}

func TestProductRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository()
	factory := product.NewFactory()

	baguette, err := factory.Create(product.Command{Name: "Baguette", Price: decimal.NewFromInt(3)})
	require.NoError(t, err)
	croissant, err := factory.Create(product.Command{Name: "Croissant", Price: decimal.NewFromInt(2)})
	require.NoError(t, err)

	baguetteID, err := repo.Save(ctx, baguette)
	require.NoError(t, err)
	croissantID, err := repo.Save(ctx, croissant)
	require.NoError(t, err)

	stored, err := repo.FindByID(ctx, croissantID)
	require.NoError(t, err)
	archived := stored.Copy()
	archived.Archive()
	_, err = repo.Save(ctx, archived)
	require.NoError(t, err)

	active, err := repo.FindAllByStatus(ctx, product.StatusActive)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, baguetteID, active[0].ID())

	archivedProducts, err := repo.FindAllByStatus(ctx, product.StatusArchived)
	require.NoError(t, err)
	require.Len(t, archivedProducts, 1)
	assert.Equal(t, "Croissant", archivedProducts[0].Name())

	_, err = repo.FindByID(ctx, 42)
	assert.True(t, errors.Is(err, product.ErrProductNotFound))
}

func TestClosingPeriodRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewClosingPeriodRepository()

	c, err := closingperiod.New(closingperiod.Command{StartDate: date(t, "2020-12-24"), EndDate: date(t, "2021-01-03")})
	require.NoError(t, err)
	id, err := repo.Save(ctx, c)
	require.NoError(t, err)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, id, all[0].ID())

	found, err := repo.FindByID(ctx, id)
	require.NoError(t, err)
	require.NoError(t, repo.Delete(ctx, found))

	_, err = repo.FindByID(ctx, id)
	assert.True(t, errors.Is(err, closingperiod.ErrClosingPeriodNotFound))
}

func TestFeatureRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewFeatureRepository()

	f, err := repo.FindByName(ctx, feature.ProductOrdering)
	require.NoError(t, err)
	assert.True(t, f.IsEnabled())

	f.Disable()
	reloaded, err := repo.FindByName(ctx, feature.ProductOrdering)
	require.NoError(t, err)
	assert.True(t, reloaded.IsEnabled())

	require.NoError(t, repo.Save(ctx, f))
	reloaded, err = repo.FindByName(ctx, feature.ProductOrdering)
	require.NoError(t, err)
	assert.False(t, reloaded.IsEnabled())

	_, err = repo.FindByName(ctx, "UNKNOWN")
	assert.True(t, errors.Is(err, feature.ErrFeatureNotFound))
}
