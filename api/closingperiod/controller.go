// Package closingperiod - 关闭期间 API 控制器
package closingperiod

import (
	"net/http"
	"strconv"

	"bakery/api/ctxutil"
	"bakery/api/middleware"
	"bakery/api/response"
	closingperiodapp "bakery/application/closingperiod"

	"github.com/gin-gonic/gin"
)

// Controller 关闭期间控制器
type Controller struct {
	closingPeriodService *closingperiodapp.ApplicationService
}

// NewController 创建关闭期间控制器
func NewController(closingPeriodService *closingperiodapp.ApplicationService) *Controller {
	return &Controller{closingPeriodService: closingPeriodService}
}

// RegisterRoutes 查询公开，新增和删除需要管理员 token
func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/closing-periods")
	{
		group.GET("", c.GetClosingPeriods)
		group.POST("", middleware.RequireAuth(), c.PostClosingPeriod)
		group.DELETE("/:id", middleware.RequireAuth(), c.DeleteClosingPeriod)
	}
}

// GetClosingPeriods GET /api/closing-periods
func (c *Controller) GetClosingPeriods(ctx *gin.Context) {
	periods, err := c.closingPeriodService.GetClosingPeriods(ctxutil.WithRequestID(ctx))
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleSuccess(ctx, periods, "closing periods retrieved successfully")
}

// PostClosingPeriod POST /api/closing-periods
func (c *Controller) PostClosingPeriod(ctx *gin.Context) {
	var req closingperiodapp.ClosingPeriodRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleError(ctx, err, "invalid request parameters", http.StatusBadRequest)
		return
	}

	id, err := c.closingPeriodService.AddNewClosingPeriod(ctxutil.WithRequestID(ctx), ctxutil.CurrentUser(ctx), req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleCreated(ctx, "/api/closing-periods/"+strconv.FormatInt(id, 10), response.CreatedResponse{ID: id}, "closing period created successfully")
}

// DeleteClosingPeriod DELETE /api/closing-periods/:id
func (c *Controller) DeleteClosingPeriod(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.HandleError(ctx, err, "closing period ID must be a positive integer", http.StatusBadRequest)
		return
	}

	if err := c.closingPeriodService.DeleteClosingPeriod(ctxutil.WithRequestID(ctx), ctxutil.CurrentUser(ctx), id); err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleNoContent(ctx)
}
