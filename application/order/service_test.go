package order

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bakery/domain/feature"
	"bakery/domain/notification"
	"bakery/domain/order"
	"bakery/domain/product"
	"bakery/domain/shared"
	"bakery/domain/user"
	"bakery/mock"
)

// Tuesday 2020-01-07, 10:00 in the business zone.
var tuesdayMorning = time.Date(2020, 1, 7, 10, 0, 0, 0, shared.BusinessLocation())

type fixture struct {
	orders        *mock.MockOrderRepository
	products      *mock.MockProductRepository
	closing       *mock.MockClosingPeriodRepository
	features      *mock.MockFeatureRepository
	notifications *mock.MockNotificationRepository
	service       *ApplicationService
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		orders:        mock.NewMockOrderRepository(ctrl),
		products:      mock.NewMockProductRepository(ctrl),
		closing:       mock.NewMockClosingPeriodRepository(ctrl),
		features:      mock.NewMockFeatureRepository(ctrl),
		notifications: mock.NewMockNotificationRepository(ctrl),
	}
	f.service = NewApplicationService(f.orders, f.products, f.closing, f.features, f.notifications,
		order.NewFactory(shared.FixedClock(tuesdayMorning)))
	return f
}

func (f *fixture) expectCollaborators() {
	f.products.EXPECT().FindAllByStatus(gomock.Any(), product.StatusActive).Return([]*product.Product{
		product.RebuildFromDTO(product.ReconstructionDTO{
			ID: 1, Name: "Baguette", Price: decimal.RequireFromString("3.25"), Status: product.StatusActive,
		}),
	}, nil)
	f.closing.EXPECT().FindAll(gomock.Any()).Return(nil, nil)
}

func (f *fixture) expectProductOrdering(status feature.Status) {
	f.features.EXPECT().FindByName(gomock.Any(), feature.ProductOrdering).Return(feature.New(feature.ProductOrdering, status), nil)
}

func pickUpRequest() OrderRequest {
	return OrderRequest{
		ClientName:         gofakeit.Name(),
		ClientPhoneNumber:  gofakeit.Phone(),
		ClientEmailAddress: gofakeit.Email(),
		Products:           []ProductQuantityRequest{{ProductID: 1, Quantity: 3}},
		Type:               string(order.TypePickUp),
		PickUpDate:         "2020-01-09",
	}
}

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := shared.ParseDateWithTimeAtNoonUTC(s)
	require.NoError(t, err)
	return d
}

func storedOrder(t *testing.T, id int64, checked bool) *order.Order {
	return order.RebuildFromDTO(order.ReconstructionDTO{
		ID:                 id,
		ClientName:         gofakeit.Name(),
		ClientPhoneNumber:  gofakeit.Phone(),
		ClientEmailAddress: gofakeit.Email(),
		Products: []order.ProductWithQuantity{
			{Product: product.Snapshot{ID: 1, Name: "Baguette", Price: decimal.RequireFromString("3.25")}, Quantity: 1},
		},
		Type:       order.TypePickUp,
		PickUpDate: date(t, "2020-01-09"),
		Checked:    checked,
	})
}

func TestOrderProducts_AnonymousOrderIsNotified(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	req := pickUpRequest()

	f.expectProductOrdering(feature.StatusEnabled)
	f.expectCollaborators()
	save := f.orders.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, o *order.Order) (int64, error) {
		assert.Equal(t, int64(0), o.ID())
		assert.Equal(t, req.ClientName, o.ClientName())
		return 42, nil
	})
	f.notifications.EXPECT().Send(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, n notification.OrderNotification) error {
		assert.Equal(t, "Nouvelle commande #42", n.Subject)
		assert.Contains(t, n.Body, req.ClientName)
		assert.Contains(t, n.Body, "3 x Baguette")
		return nil
	}).After(save).Times(1)

	id, err := f.service.OrderProducts(ctx, user.Anonymous(), req)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
}

func TestOrderProducts_AdminSkipsFeatureFlagAndNotification(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.expectCollaborators()
	f.orders.EXPECT().Save(ctx, gomock.Any()).Return(int64(7), nil)

	// no contact, past date: allowed for the admin
	id, err := f.service.OrderProducts(ctx, user.Admin(), OrderRequest{
		Products:   []ProductQuantityRequest{{ProductID: 1, Quantity: 1}},
		Type:       string(order.TypeDelivery),
		PickUpDate: "2019-12-01",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
}

func TestOrderProducts_OrderingDisabled(t *testing.T) {
	f := newFixture(t)
	f.expectProductOrdering(feature.StatusDisabled)

	_, err := f.service.OrderProducts(context.Background(), user.Anonymous(), pickUpRequest())
	assert.True(t, errors.Is(err, feature.ErrProductOrderingDisabled))
	assert.True(t, errors.Is(err, shared.ErrUnavailable))
}

func TestOrderProducts_InvalidOrderIsNotSaved(t *testing.T) {
	f := newFixture(t)
	f.expectProductOrdering(feature.StatusEnabled)
	f.expectCollaborators()

	req := pickUpRequest()
	req.ClientName = ""

	_, err := f.service.OrderProducts(context.Background(), user.Anonymous(), req)
	assert.True(t, errors.Is(err, order.ErrInvalidOrder))
}

func TestOrderProducts_MalformedDate(t *testing.T) {
	f := newFixture(t)
	f.expectProductOrdering(feature.StatusEnabled)

	req := pickUpRequest()
	req.PickUpDate = "09/01/2020"

	_, err := f.service.OrderProducts(context.Background(), user.Anonymous(), req)
	assert.True(t, errors.Is(err, order.ErrInvalidOrder))
}

func TestOrderProducts_NotificationFailureKeepsOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.expectProductOrdering(feature.StatusEnabled)
	f.expectCollaborators()
	f.orders.EXPECT().Save(ctx, gomock.Any()).Return(int64(3), nil)
	f.notifications.EXPECT().Send(ctx, gomock.Any()).Return(errors.New("smtp unavailable"))

	id, err := f.service.OrderProducts(ctx, user.New("client"), pickUpRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(3), id)
}

func TestUpdateExistingOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	existing := storedOrder(t, 5, true)
	req := pickUpRequest()
	req.PickUpDate = "2020-01-10"

	f.expectCollaborators()
	f.orders.EXPECT().FindByID(ctx, int64(5)).Return(existing, nil)
	f.orders.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, o *order.Order) (int64, error) {
		assert.Equal(t, int64(5), o.ID())
		assert.True(t, o.IsChecked())
		assert.Equal(t, req.ClientName, o.ClientName())
		assert.Equal(t, "2020-01-10", shared.DateAsISOStringWithoutTime(o.PickUpDate()))
		return 5, nil
	})

	require.NoError(t, f.service.UpdateExistingOrder(ctx, user.Admin(), 5, req))
	assert.Equal(t, "2020-01-09", shared.DateAsISOStringWithoutTime(existing.PickUpDate()))
}

func TestUpdateExistingOrder_NotFound(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.expectCollaborators()
	f.orders.EXPECT().FindByID(ctx, int64(9)).Return(nil, order.NewOrderNotFoundError(9))

	err := f.service.UpdateExistingOrder(ctx, user.Admin(), 9, pickUpRequest())
	assert.True(t, errors.Is(err, order.ErrOrderNotFound))
}

func TestCheckAndUncheckOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	unchecked := storedOrder(t, 1, false)
	checked := storedOrder(t, 2, true)

	f.orders.EXPECT().FindByID(ctx, int64(1)).Return(unchecked, nil)
	f.orders.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, o *order.Order) (int64, error) {
		assert.True(t, o.IsChecked())
		return o.ID(), nil
	})
	require.NoError(t, f.service.CheckOrder(ctx, user.Admin(), 1))
	assert.False(t, unchecked.IsChecked())

	f.orders.EXPECT().FindByID(ctx, int64(2)).Return(checked, nil)
	f.orders.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, o *order.Order) (int64, error) {
		assert.False(t, o.IsChecked())
		return o.ID(), nil
	})
	require.NoError(t, f.service.UncheckOrder(ctx, user.Admin(), 2))
	assert.True(t, checked.IsChecked())
}

func TestDeleteOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	existing := storedOrder(t, 4, false)

	f.orders.EXPECT().FindByID(ctx, int64(4)).Return(existing, nil)
	f.orders.EXPECT().Delete(ctx, existing).Return(nil)

	require.NoError(t, f.service.DeleteOrder(ctx, user.Admin(), 4))
}

func TestGetOrders(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	year := 2020

	f.orders.EXPECT().FindAll(ctx).Return([]*order.Order{storedOrder(t, 1, false), storedOrder(t, 2, true)}, nil)
	all, err := f.service.GetOrders(ctx, user.Admin(), nil)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, int64(1), all[0].ID)
	assert.Equal(t, "2020-01-09", all[0].PickUpDate)
	assert.Equal(t, "3.25", all[0].Products[0].Product.Price)
	assert.True(t, all[1].Checked)

	f.orders.EXPECT().FindAllByYear(ctx, 2020).Return([]*order.Order{storedOrder(t, 1, false)}, nil)
	byYear, err := f.service.GetOrders(ctx, user.Admin(), &year)
	require.NoError(t, err)
	assert.Len(t, byYear, 1)
}

func TestGetOrdersByDateRange_OneLookupPerDay(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	start := date(t, "2020-01-08")

	f.orders.EXPECT().FindAllByDate(ctx, gomock.Any()).Return(nil, nil).Times(1)
	_, err := f.service.GetOrdersByDateRange(ctx, user.Admin(), start, start)
	require.NoError(t, err)

	gomock.InOrder(
		f.orders.EXPECT().FindAllByDate(ctx, date(t, "2020-01-08")).Return([]*order.Order{storedOrder(t, 1, false)}, nil),
		f.orders.EXPECT().FindAllByDate(ctx, date(t, "2020-01-09")).Return(nil, nil),
		f.orders.EXPECT().FindAllByDate(ctx, date(t, "2020-01-10")).Return([]*order.Order{storedOrder(t, 2, false)}, nil),
	)
	orders, err := f.service.GetOrdersByDateRange(ctx, user.Admin(), start, start.AddDate(0, 0, 2))
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, int64(1), orders[0].ID)
	assert.Equal(t, int64(2), orders[1].ID)
}

func TestGetOrderedProductsByDateRange(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	d := date(t, "2020-01-09")

	f.orders.EXPECT().FindAllByDate(ctx, d).Return([]*order.Order{storedOrder(t, 1, false), storedOrder(t, 2, false)}, nil)

	products, err := f.service.GetOrderedProductsByDateRange(ctx, user.Admin(), d, d)
	require.NoError(t, err)
	assert.Equal(t, []OrderedProductResponse{{Name: "Baguette", PickUpCount: 2, TotalCount: 2}}, products)
}

func TestGetLastOrders(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.orders.EXPECT().FindLast(ctx, 2).Return([]*order.Order{storedOrder(t, 9, false), storedOrder(t, 8, false)}, nil)

	orders, err := f.service.GetLastOrders(ctx, user.Admin(), 2)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, int64(9), orders[0].ID)
}

func TestAdminOnlyUseCasesRejectOtherUsers(t *testing.T) {
	ctx := context.Background()
	d := time.Date(2020, 1, 9, 12, 0, 0, 0, time.UTC)
	year := 2020

	useCases := map[string]func(s *ApplicationService, u *user.User) error{
		"UpdateExistingOrder": func(s *ApplicationService, u *user.User) error {
			return s.UpdateExistingOrder(ctx, u, 1, pickUpRequest())
		},
		"CheckOrder":   func(s *ApplicationService, u *user.User) error { return s.CheckOrder(ctx, u, 1) },
		"UncheckOrder": func(s *ApplicationService, u *user.User) error { return s.UncheckOrder(ctx, u, 1) },
		"DeleteOrder":  func(s *ApplicationService, u *user.User) error { return s.DeleteOrder(ctx, u, 1) },
		"GetOrders": func(s *ApplicationService, u *user.User) error {
			_, err := s.GetOrders(ctx, u, &year)
			return err
		},
		"GetOrdersForExport": func(s *ApplicationService, u *user.User) error {
			_, err := s.GetOrdersForExport(ctx, u, nil)
			return err
		},
		"GetOrdersByDate": func(s *ApplicationService, u *user.User) error {
			_, err := s.GetOrdersByDate(ctx, u, d)
			return err
		},
		"GetOrdersByDateRange": func(s *ApplicationService, u *user.User) error {
			_, err := s.GetOrdersByDateRange(ctx, u, d, d)
			return err
		},
		"GetOrderedProductsByDateRange": func(s *ApplicationService, u *user.User) error {
			_, err := s.GetOrderedProductsByDateRange(ctx, u, d, d)
			return err
		},
		"GetLastOrders": func(s *ApplicationService, u *user.User) error {
			_, err := s.GetLastOrders(ctx, u, 5)
			return err
		},
	}

	for name, useCase := range useCases {
		for _, u := range []*user.User{nil, user.Anonymous(), user.New("client")} {
			t.Run(name+"/"+u.Username(), func(t *testing.T) {
				// any repository call fails the test
				f := newFixture(t)
				err := useCase(f.service, u)
				assert.True(t, errors.Is(err, user.ErrInvalidUser))
				assert.True(t, errors.Is(err, shared.ErrUnauthorized))
			})
		}
	}
}
