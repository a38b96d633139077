package middleware

import (
	"strings"

	"bakery/api/ctxutil"
	"bakery/api/response"
	"bakery/domain/user"
	"bakery/pkg/errors"
	"bakery/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const authenticatedKey = "authenticated"

// TokenVerifier resolves the user an access token was issued to.
type TokenVerifier interface {
	Verify(token string) (*user.User, error)
}

// AuthMiddleware 解析 Bearer token；缺失或无效时用户为 ANONYMOUS
func AuthMiddleware(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			ctxutil.SetUser(c, user.Anonymous())
			c.Next()
			return
		}

		u, err := verifier.Verify(token)
		if err != nil {
			logger.FromContext(c.Request.Context()).Debug("Access token rejected", zap.Error(err))
			ctxutil.SetUser(c, user.Anonymous())
			c.Next()
			return
		}

		ctxutil.SetUser(c, u)
		c.Set(authenticatedKey, true)
		c.Next()
	}
}

// RequireAuth rejects requests without a valid access token with 401.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool(authenticatedKey) {
			response.HandleAppError(c, errors.Unauthorized("Unauthorized"))
			return
		}
		c.Next()
	}
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
