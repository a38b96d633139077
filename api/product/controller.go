// Package product - 商品 API 控制器，全部需要管理员 token
package product

import (
	"net/http"
	"strconv"

	"bakery/api/ctxutil"
	"bakery/api/middleware"
	"bakery/api/response"
	productapp "bakery/application/product"

	"github.com/gin-gonic/gin"
)

// Controller 商品控制器
type Controller struct {
	productService *productapp.ApplicationService
}

// NewController 创建商品控制器
func NewController(productService *productapp.ApplicationService) *Controller {
	return &Controller{productService: productService}
}

// RegisterRoutes 注册商品路由
func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	productGroup := router.Group("/products", middleware.RequireAuth())
	{
		productGroup.GET("", c.GetProducts)
		productGroup.POST("", c.PostProduct)
		productGroup.PUT("/:id", c.PutProduct)
		productGroup.PUT("/:id/archive", c.ArchiveProduct)
	}
}

// GetProducts GET /api/products
func (c *Controller) GetProducts(ctx *gin.Context) {
	products, err := c.productService.GetActiveProducts(ctxutil.WithRequestID(ctx), ctxutil.CurrentUser(ctx))
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleSuccess(ctx, products, "products retrieved successfully")
}

// PostProduct POST /api/products
func (c *Controller) PostProduct(ctx *gin.Context) {
	var req productapp.ProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleError(ctx, err, "invalid request parameters", http.StatusBadRequest)
		return
	}

	id, err := c.productService.AddNewProduct(ctxutil.WithRequestID(ctx), ctxutil.CurrentUser(ctx), req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleCreated(ctx, "/api/products/"+strconv.FormatInt(id, 10), response.CreatedResponse{ID: id}, "product created successfully")
}

// PutProduct PUT /api/products/:id
func (c *Controller) PutProduct(ctx *gin.Context) {
	id, ok := productID(ctx)
	if !ok {
		return
	}
	var req productapp.ProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleError(ctx, err, "invalid request parameters", http.StatusBadRequest)
		return
	}

	if err := c.productService.UpdateExistingProduct(ctxutil.WithRequestID(ctx), ctxutil.CurrentUser(ctx), id, req); err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleSuccess(ctx, nil, "product updated successfully")
}

// ArchiveProduct PUT /api/products/:id/archive
func (c *Controller) ArchiveProduct(ctx *gin.Context) {
	id, ok := productID(ctx)
	if !ok {
		return
	}
	if err := c.productService.ArchiveProduct(ctxutil.WithRequestID(ctx), ctxutil.CurrentUser(ctx), id); err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleSuccess(ctx, nil, "product archived successfully")
}

func productID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.HandleError(ctx, err, "product ID must be a positive integer", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}
