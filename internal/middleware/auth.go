package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	apperrors "github.com/wfunc/anima-counter/internal/errors"
	"github.com/wfunc/anima-counter/internal/service"
)

const (
	contextUserID   = "userID"
	contextUsername = "username"
)

// AuthMiddleware JWT认证中间件
type AuthMiddleware struct {
	authService service.AuthService
}

// NewAuthMiddleware 创建认证中间件
func NewAuthMiddleware(authService service.AuthService) *AuthMiddleware {
	return &AuthMiddleware{
		authService: authService,
	}
}

// RequireAuth 需要认证的中间件
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			AbortWithError(c, apperrors.New(apperrors.ErrAuthentication, "缺少认证令牌"))
			return
		}

		claims, err := m.authService.ValidateToken(c.Request.Context(), token)
		if err != nil {
			AbortWithError(c, err)
			return
		}

		c.Set(contextUserID, claims.UserID)
		c.Set(contextUsername, claims.Username)
		c.Next()
	}
}

// extractToken 从 Authorization 或 X-Access-Token 头获取令牌
func extractToken(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return strings.TrimSpace(parts[1])
		}
	}
	return c.GetHeader("X-Access-Token")
}

// GetUserID 从上下文获取用户ID
func GetUserID(c *gin.Context) (uint, bool) {
	if userID, exists := c.Get(contextUserID); exists {
		if id, ok := userID.(uint); ok {
			return id, true
		}
	}
	return 0, false
}
