// Package authentication - 管理员登录 API
package authentication

import (
	"context"
	"net/http"

	"bakery/api/ctxutil"
	"bakery/api/middleware"
	"bakery/api/response"

	"github.com/gin-gonic/gin"
)

// Authenticator checks the admin credentials and issues an access token.
type Authenticator interface {
	Login(ctx context.Context, username, password string) (string, error)
}

// LoginRequest 登录入参
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse 登录返回
type LoginResponse struct {
	AccessToken string `json:"accessToken"`
}

// ProfileResponse 当前用户
type ProfileResponse struct {
	Username string `json:"username"`
}

// Controller 认证控制器
type Controller struct {
	authenticator Authenticator
}

func NewController(authenticator Authenticator) *Controller {
	return &Controller{authenticator: authenticator}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/authentication")
	{
		group.POST("/login", c.Login)
		group.GET("/profile", middleware.RequireAuth(), c.Profile)
	}
}

// Login POST /api/authentication/login
func (c *Controller) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleError(ctx, err, "invalid request parameters", http.StatusBadRequest)
		return
	}

	token, err := c.authenticator.Login(ctxutil.WithRequestID(ctx), req.Username, req.Password)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}
	response.HandleSuccess(ctx, LoginResponse{AccessToken: token}, "login successful")
}

// Profile GET /api/authentication/profile
func (c *Controller) Profile(ctx *gin.Context) {
	response.HandleSuccess(ctx, ProfileResponse{Username: ctxutil.CurrentUser(ctx).Username()}, "profile retrieved successfully")
}
