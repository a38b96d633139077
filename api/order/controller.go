/*
Package order - 订单 API 控制器

职责:
1. 接收 HTTP 请求，解析参数
2. 调用应用服务处理业务逻辑，调用者由认证中间件解析
3. 使用 response 包统一处理响应和错误

错误处理原则:
1. 参数绑定错误: 使用 response.HandleError 直接返回 400
2. 业务错误: 使用 response.HandleAppError 自动映射状态码
*/
package order

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"
	"time"

	"bakery/api/ctxutil"
	"bakery/api/middleware"
	"bakery/api/response"
	orderapp "bakery/application/order"
	"bakery/domain/order"
	"bakery/domain/shared"

	"github.com/gin-gonic/gin"
)

const defaultLastOrdersCount = 10

// csvHeader CSV 导出的列
var csvHeader = []string{
	"orderId", "clientName", "clientPhoneNumber", "clientEmailAddress", "product", "quantity",
	"type", "pickUpDate", "deliveryDate", "deliveryAddress", "reservationDate", "note",
}

// Controller 订单控制器
type Controller struct {
	orderService *orderapp.ApplicationService
}

// NewController 创建订单控制器
func NewController(orderService *orderapp.ApplicationService) *Controller {
	return &Controller{
		orderService: orderService,
	}
}

// RegisterRoutes 注册订单路由，除下单外都需要管理员 token
func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	orderGroup := router.Group("/orders")
	{
		orderGroup.POST("", c.PostOrder)

		admin := orderGroup.Group("", middleware.RequireAuth())
		admin.GET("", c.GetOrders)
		admin.GET("/last", c.GetLastOrders)
		admin.GET("/csv", c.GetOrdersAsCSV)
		admin.GET("/date/:date", c.GetOrdersByDate)
		admin.GET("/range/:start/:end", c.GetOrdersByDateRange)
		admin.GET("/products/:start/:end", c.GetOrderedProducts)
		admin.PUT("/:id", c.PutOrder)
		admin.PUT("/:id/check", c.CheckOrder)
		admin.PUT("/:id/uncheck", c.UncheckOrder)
		admin.DELETE("/:id", c.DeleteOrder)
	}
}

// PostOrder 下单
// POST /api/orders
func (c *Controller) PostOrder(ctx *gin.Context) {
	var req orderapp.OrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleError(ctx, err, "invalid request parameters", http.StatusBadRequest)
		return
	}

	id, err := c.orderService.OrderProducts(ctxutil.WithRequestID(ctx), ctxutil.CurrentUser(ctx), req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	location := "/api/orders/" + strconv.FormatInt(id, 10)
	response.HandleCreated(ctx, location, response.CreatedResponse{ID: id}, "order created successfully")
}

// PutOrder 修改订单
// PUT /api/orders/:id
func (c *Controller) PutOrder(ctx *gin.Context) {
	id, ok := orderID(ctx)
	if !ok {
		return
	}
	var req orderapp.OrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleError(ctx, err, "invalid request parameters", http.StatusBadRequest)
		return
	}

	if err := c.orderService.UpdateExistingOrder(ctxutil.WithRequestID(ctx), ctxutil.CurrentUser(ctx), id, req); err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleSuccess(ctx, nil, "order updated successfully")
}

// CheckOrder PUT /api/orders/:id/check
func (c *Controller) CheckOrder(ctx *gin.Context) {
	id, ok := orderID(ctx)
	if !ok {
		return
	}
	if err := c.orderService.CheckOrder(ctxutil.WithRequestID(ctx), ctxutil.CurrentUser(ctx), id); err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleSuccess(ctx, nil, "order checked")
}

// UncheckOrder PUT /api/orders/:id/uncheck
func (c *Controller) UncheckOrder(ctx *gin.Context) {
	id, ok := orderID(ctx)
	if !ok {
		return
	}
	if err := c.orderService.UncheckOrder(ctxutil.WithRequestID(ctx), ctxutil.CurrentUser(ctx), id); err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleSuccess(ctx, nil, "order unchecked")
}

// DeleteOrder DELETE /api/orders/:id
func (c *Controller) DeleteOrder(ctx *gin.Context) {
	id, ok := orderID(ctx)
	if !ok {
		return
	}
	if err := c.orderService.DeleteOrder(ctxutil.WithRequestID(ctx), ctxutil.CurrentUser(ctx), id); err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleNoContent(ctx)
}

// GetOrders GET /api/orders?year=
func (c *Controller) GetOrders(ctx *gin.Context) {
	year, ok := yearQuery(ctx)
	if !ok {
		return
	}
	orders, err := c.orderService.GetOrders(ctxutil.WithRequestID(ctx), ctxutil.CurrentUser(ctx), year)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleSuccess(ctx, orders, "orders retrieved successfully")
}

// GetLastOrders GET /api/orders/last?count=
func (c *Controller) GetLastOrders(ctx *gin.Context) {
	count := defaultLastOrdersCount
	if raw := ctx.Query("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			response.HandleError(ctx, err, "count must be a positive integer", http.StatusBadRequest)
			return
		}
		count = n
	}

	orders, err := c.orderService.GetLastOrders(ctxutil.WithRequestID(ctx), ctxutil.CurrentUser(ctx), count)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleSuccess(ctx, orders, "orders retrieved successfully")
}

// GetOrdersByDate GET /api/orders/date/:date
func (c *Controller) GetOrdersByDate(ctx *gin.Context) {
	date, ok := dateParam(ctx, "date")
	if !ok {
		return
	}
	orders, err := c.orderService.GetOrdersByDate(ctxutil.WithRequestID(ctx), ctxutil.CurrentUser(ctx), date)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleSuccess(ctx, orders, "orders retrieved successfully")
}

// GetOrdersByDateRange GET /api/orders/range/:start/:end
func (c *Controller) GetOrdersByDateRange(ctx *gin.Context) {
	start, end, ok := dateRange(ctx)
	if !ok {
		return
	}
	orders, err := c.orderService.GetOrdersByDateRange(ctxutil.WithRequestID(ctx), ctxutil.CurrentUser(ctx), start, end)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleSuccess(ctx, orders, "orders retrieved successfully")
}

// GetOrderedProducts GET /api/orders/products/:start/:end
func (c *Controller) GetOrderedProducts(ctx *gin.Context) {
	start, end, ok := dateRange(ctx)
	if !ok {
		return
	}
	products, err := c.orderService.GetOrderedProductsByDateRange(ctxutil.WithRequestID(ctx), ctxutil.CurrentUser(ctx), start, end)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleSuccess(ctx, products, "ordered products retrieved successfully")
}

// GetOrdersAsCSV 每个订单商品一行
// GET /api/orders/csv?year=
func (c *Controller) GetOrdersAsCSV(ctx *gin.Context) {
	year, ok := yearQuery(ctx)
	if !ok {
		return
	}
	orders, err := c.orderService.GetOrdersForExport(ctxutil.WithRequestID(ctx), ctxutil.CurrentUser(ctx), year)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	body, err := ordersAsCSV(orders)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	ctx.Data(http.StatusOK, "text/csv; charset=utf-8", body)
}

func ordersAsCSV(orders []*order.Order) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, o := range orders {
		for _, p := range o.Products() {
			line := []string{
				strconv.FormatInt(o.ID(), 10),
				o.ClientName(),
				o.ClientPhoneNumber(),
				o.ClientEmailAddress(),
				p.Product.Name,
				strconv.Itoa(p.Quantity),
				o.Type().Label(),
				formatDate(o.PickUpDate()),
				formatDate(o.DeliveryDate()),
				o.DeliveryAddress(),
				formatDate(o.ReservationDate()),
				o.Note(),
			}
			if err := w.Write(line); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func formatDate(date time.Time) string {
	if date.IsZero() {
		return ""
	}
	return shared.DateAsISOStringWithoutTime(date)
}

func orderID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.HandleError(ctx, err, "order ID must be a positive integer", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func yearQuery(ctx *gin.Context) (*int, bool) {
	raw := ctx.Query("year")
	if raw == "" {
		return nil, true
	}
	year, err := strconv.Atoi(raw)
	if err != nil {
		response.HandleError(ctx, err, "year must be an integer", http.StatusBadRequest)
		return nil, false
	}
	return &year, true
}

func dateParam(ctx *gin.Context, name string) (time.Time, bool) {
	raw := ctx.Param(name)
	date, err := shared.ParseDateWithTimeAtNoonUTC(raw)
	if err != nil {
		response.HandleError(ctx, err, "Date "+raw+" is invalid", http.StatusBadRequest)
		return time.Time{}, false
	}
	return date, true
}

func dateRange(ctx *gin.Context) (time.Time, time.Time, bool) {
	start, ok := dateParam(ctx, "start")
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	end, ok := dateParam(ctx, "end")
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}
