package ctxutil

import (
	"context"

	"bakery/api/response"
	"bakery/domain/user"
	"bakery/infrastructure/persistence"

	"github.com/gin-gonic/gin"
)

// UserKey gin context 中保存当前用户的键
const UserKey = "user"

// WithRequestID 返回带请求 ID 的 context，供应用层与仓储记录日志
func WithRequestID(ctx *gin.Context) context.Context {
	requestID := response.GetRequestID(ctx)
	return persistence.ContextWithRequestID(ctx.Request.Context(), requestID)
}

func RequestIDFromContext(ctx context.Context) string {
	return persistence.RequestIDFromContext(ctx)
}

// SetUser is called by the authentication middleware.
func SetUser(ctx *gin.Context, u *user.User) {
	ctx.Set(UserKey, u)
}

// CurrentUser returns the caller, ANONYMOUS when none was resolved.
func CurrentUser(ctx *gin.Context) *user.User {
	if v, exists := ctx.Get(UserKey); exists {
		if u, ok := v.(*user.User); ok && u != nil {
			return u
		}
	}
	return user.Anonymous()
}
