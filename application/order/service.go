/*
Package order Application Layer - Order use cases

Responsibilities of the application layer:
1. Receive requests from controllers together with the resolved caller
2. Check authorization before touching any repository
3. Fetch the read-only collaborators (active products, closing periods, feature flag)
4. Let the domain factory validate, then persist with a single save or delete
5. Return DTOs to the caller

Orders read from storage are never mutated in place: they are copied first,
then a transition is applied to the copy, which is what gets saved.
*/
package order

import (
	"context"
	"time"

	"bakery/application"
	"bakery/domain/closingperiod"
	"bakery/domain/feature"
	"bakery/domain/notification"
	"bakery/domain/order"
	"bakery/domain/product"
	"bakery/domain/user"
	"bakery/pkg/logger"
	"bakery/pkg/metric"

	"go.uber.org/zap"
)

// ApplicationService Order application service
type ApplicationService struct {
	orderRepo           order.Repository
	productRepo         product.Repository
	closingPeriodRepo   closingperiod.Repository
	featureRepo         feature.Repository
	notificationRepo    notification.Repository
	orderFactory        order.Factory
	notificationFactory notification.Factory
	orderDomainService  *order.DomainService
}

// NewApplicationService Create order application service
func NewApplicationService(
	orderRepo order.Repository,
	productRepo product.Repository,
	closingPeriodRepo closingperiod.Repository,
	featureRepo feature.Repository,
	notificationRepo notification.Repository,
	orderFactory order.Factory,
) *ApplicationService {
	return &ApplicationService{
		orderRepo:           orderRepo,
		productRepo:         productRepo,
		closingPeriodRepo:   closingPeriodRepo,
		featureRepo:         featureRepo,
		notificationRepo:    notificationRepo,
		orderFactory:        orderFactory,
		notificationFactory: notification.NewFactory(),
		orderDomainService:  order.NewDomainService(orderRepo),
	}
}

// ============================================================================
// Commands
// ============================================================================

// OrderProducts places a new order and returns its id.
// Anyone may order while PRODUCT_ORDERING is enabled; the admin always may.
func (s *ApplicationService) OrderProducts(ctx context.Context, u *user.User, req OrderRequest) (int64, error) {
	isAdmin := user.IsAdmin(u)
	if !isAdmin {
		productOrdering, err := s.featureRepo.FindByName(ctx, feature.ProductOrdering)
		if err != nil {
			return 0, err
		}
		if !productOrdering.IsEnabled() {
			return 0, feature.NewProductOrderingDisabledError()
		}
	}

	cmd, err := toCommand(req)
	if err != nil {
		return 0, err
	}
	activeProducts, closingPeriods, err := s.collaborators(ctx)
	if err != nil {
		return 0, err
	}

	o, err := s.orderFactory.Create(cmd, activeProducts, closingPeriods, isAdmin)
	if err != nil {
		return 0, err
	}
	id, err := s.orderRepo.Save(ctx, o)
	if err != nil {
		return 0, err
	}

	metric.RecordOrderCreated(string(o.Type()))
	logger.FromContext(ctx).Info("Order created",
		zap.Int64("order_id", id),
		zap.String("type", string(o.Type())),
		zap.Bool("by_admin", isAdmin))

	if !isAdmin {
		s.notify(ctx, o.WithID(id))
	}
	return id, nil
}

// notify 发送新订单通知，失败只记录日志，订单已保存
func (s *ApplicationService) notify(ctx context.Context, o *order.Order) {
	n := s.notificationFactory.Create(o)
	if err := s.notificationRepo.Send(ctx, n); err != nil {
		logger.FromContext(ctx).Error("Failed to send order notification",
			zap.Int64("order_id", o.ID()),
			zap.Error(err))
	}
}

// UpdateExistingOrder re-validates the order with the full policy and saves it.
func (s *ApplicationService) UpdateExistingOrder(ctx context.Context, u *user.User, id int64, req OrderRequest) error {
	if err := application.RequireAdmin(ctx, u, "UpdateExistingOrder"); err != nil {
		return err
	}

	cmd, err := toCommand(req)
	if err != nil {
		return err
	}
	activeProducts, closingPeriods, err := s.collaborators(ctx)
	if err != nil {
		return err
	}
	existing, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	updated := existing.Copy()
	if err := s.orderFactory.UpdateWith(updated, cmd, activeProducts, closingPeriods); err != nil {
		return err
	}
	if _, err := s.orderRepo.Save(ctx, updated); err != nil {
		return err
	}

	logger.FromContext(ctx).Info("Order updated", zap.Int64("order_id", id))
	return nil
}

// CheckOrder marks the order as handled.
func (s *ApplicationService) CheckOrder(ctx context.Context, u *user.User, id int64) error {
	return s.toggle(ctx, u, id, "CheckOrder", (*order.Order).Check)
}

// UncheckOrder clears the handled mark.
func (s *ApplicationService) UncheckOrder(ctx context.Context, u *user.User, id int64) error {
	return s.toggle(ctx, u, id, "UncheckOrder", (*order.Order).Uncheck)
}

func (s *ApplicationService) toggle(ctx context.Context, u *user.User, id int64, useCase string, transition func(*order.Order)) error {
	if err := application.RequireAdmin(ctx, u, useCase); err != nil {
		return err
	}

	existing, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	toggled := existing.Copy()
	transition(toggled)
	if _, err := s.orderRepo.Save(ctx, toggled); err != nil {
		return err
	}

	logger.FromContext(ctx).Info("Order check state changed",
		zap.Int64("order_id", id),
		zap.Bool("checked", toggled.IsChecked()))
	return nil
}

// DeleteOrder removes the order.
func (s *ApplicationService) DeleteOrder(ctx context.Context, u *user.User, id int64) error {
	if err := application.RequireAdmin(ctx, u, "DeleteOrder"); err != nil {
		return err
	}

	existing, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.orderRepo.Delete(ctx, existing); err != nil {
		return err
	}

	logger.FromContext(ctx).Info("Order deleted", zap.Int64("order_id", id))
	return nil
}

// ============================================================================
// Queries
// ============================================================================

// GetOrders returns every order, or those of year when year is not nil.
func (s *ApplicationService) GetOrders(ctx context.Context, u *user.User, year *int) ([]*OrderResponse, error) {
	orders, err := s.findOrders(ctx, u, year)
	if err != nil {
		return nil, err
	}
	return toOrderResponses(orders), nil
}

// GetOrdersForExport returns the domain orders, used by the CSV export.
func (s *ApplicationService) GetOrdersForExport(ctx context.Context, u *user.User, year *int) ([]*order.Order, error) {
	return s.findOrders(ctx, u, year)
}

func (s *ApplicationService) findOrders(ctx context.Context, u *user.User, year *int) ([]*order.Order, error) {
	if err := application.RequireAdmin(ctx, u, "GetOrders"); err != nil {
		return nil, err
	}
	if year != nil {
		return s.orderRepo.FindAllByYear(ctx, *year)
	}
	return s.orderRepo.FindAll(ctx)
}

// GetOrdersByDate returns the orders whose relevant date is date.
func (s *ApplicationService) GetOrdersByDate(ctx context.Context, u *user.User, date time.Time) ([]*OrderResponse, error) {
	if err := application.RequireAdmin(ctx, u, "GetOrdersByDate"); err != nil {
		return nil, err
	}
	orders, err := s.orderRepo.FindAllByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	return toOrderResponses(orders), nil
}

// GetOrdersByDateRange returns the orders of each day from start to end inclusive.
func (s *ApplicationService) GetOrdersByDateRange(ctx context.Context, u *user.User, start, end time.Time) ([]*OrderResponse, error) {
	if err := application.RequireAdmin(ctx, u, "GetOrdersByDateRange"); err != nil {
		return nil, err
	}
	orders, err := s.orderDomainService.FindAllByDateRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	return toOrderResponses(orders), nil
}

// GetOrderedProductsByDateRange sums ordered quantities per product and type.
func (s *ApplicationService) GetOrderedProductsByDateRange(ctx context.Context, u *user.User, start, end time.Time) ([]OrderedProductResponse, error) {
	if err := application.RequireAdmin(ctx, u, "GetOrderedProductsByDateRange"); err != nil {
		return nil, err
	}
	products, err := s.orderDomainService.OrderedProductsByDateRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	return toOrderedProductResponses(products), nil
}

// GetLastOrders returns the count most recent orders, newest first.
func (s *ApplicationService) GetLastOrders(ctx context.Context, u *user.User, count int) ([]*OrderResponse, error) {
	if err := application.RequireAdmin(ctx, u, "GetLastOrders"); err != nil {
		return nil, err
	}
	orders, err := s.orderRepo.FindLast(ctx, count)
	if err != nil {
		return nil, err
	}
	return toOrderResponses(orders), nil
}

// collaborators 每次调用都重新读取在售商品和关闭期间
func (s *ApplicationService) collaborators(ctx context.Context) ([]*product.Product, []*closingperiod.ClosingPeriod, error) {
	activeProducts, err := s.productRepo.FindAllByStatus(ctx, product.StatusActive)
	if err != nil {
		return nil, nil, err
	}
	closingPeriods, err := s.closingPeriodRepo.FindAll(ctx)
	if err != nil {
		return nil, nil, err
	}
	return activeProducts, closingPeriods, nil
}
