//go:build swagger

package api

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// registerSwaggerRoutes 注册 Swagger UI 路由（仅在 -tags swagger 时启用）
func registerSwaggerRoutes(engine *gin.Engine) {
	engine.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL(openAPIPath),
		ginSwagger.DocExpansion("none"),
	))
}
