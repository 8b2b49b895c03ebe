package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/wfunc/anima-counter/internal/config"
	apperrors "github.com/wfunc/anima-counter/internal/errors"
	"github.com/wfunc/anima-counter/internal/logger"
)

const (
	// RequestIDHeader 请求ID头
	RequestIDHeader  = "X-Request-ID"
	contextRequestID = "requestID"
)

// RequestID 为每个请求分配ID，沿用客户端传入的合法值
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Set(contextRequestID, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// GetRequestID 获取请求ID
func GetRequestID(c *gin.Context) string {
	return c.GetString(contextRequestID)
}

// Logger 请求日志
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}

		c.Next()

		logger.LogRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start), c.ClientIP(), GetRequestID(c))
	}
}

// Recovery 捕获panic并返回内部错误
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.LogPanic(r, debug.Stack())
				AbortWithError(c, apperrors.New(apperrors.ErrInternal, fmt.Sprint(r)))
			}
		}()
		c.Next()
	}
}

// CORS 跨域配置
func CORS(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Access-Token", RequestIDHeader},
		ExposeHeaders:    []string{RequestIDHeader, "Retry-After"},
		AllowCredentials: true,
		MaxAge:           cfg.MaxAge,
	}
	if len(cfg.AllowedOrigins) == 0 || (len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*") {
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	return cors.New(corsCfg)
}
