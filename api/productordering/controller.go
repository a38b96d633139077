// Package productordering - PRODUCT_ORDERING 开关 API
package productordering

import (
	"bakery/api/ctxutil"
	"bakery/api/middleware"
	"bakery/api/response"
	featureapp "bakery/application/feature"

	"github.com/gin-gonic/gin"
)

// Controller 下单开关控制器
type Controller struct {
	featureService *featureapp.ApplicationService
}

func NewController(featureService *featureapp.ApplicationService) *Controller {
	return &Controller{featureService: featureService}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/product-ordering")
	{
		group.GET("/status", c.GetStatus)
		group.PUT("/enable", middleware.RequireAuth(), c.Enable)
		group.PUT("/disable", middleware.RequireAuth(), c.Disable)
	}
}

// GetStatus GET /api/product-ordering/status
func (c *Controller) GetStatus(ctx *gin.Context) {
	status, err := c.featureService.GetProductOrderingStatus(ctxutil.WithRequestID(ctx))
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleSuccess(ctx, status, "product ordering status retrieved successfully")
}

// Enable PUT /api/product-ordering/enable
func (c *Controller) Enable(ctx *gin.Context) {
	if err := c.featureService.EnableProductOrdering(ctxutil.WithRequestID(ctx), ctxutil.CurrentUser(ctx)); err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleSuccess(ctx, nil, "product ordering enabled")
}

// Disable PUT /api/product-ordering/disable
func (c *Controller) Disable(ctx *gin.Context) {
	if err := c.featureService.DisableProductOrdering(ctxutil.WithRequestID(ctx), ctxutil.CurrentUser(ctx)); err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleSuccess(ctx, nil, "product ordering disabled")
}
