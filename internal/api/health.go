package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/wfunc/anima-counter/internal/database"
	"go.uber.org/zap"
)

// HealthResponse 健康检查响应
type HealthResponse struct {
	Status    string    `json:"status"`
	Database  string    `json:"database"`
	Timestamp time.Time `json:"timestamp"`
}

// healthCheck 健康检查
// @Summary 健康检查
// @Description 检查服务与数据库连接状态
// @Tags System
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func (r *Router) healthCheck(c *gin.Context) {
	resp := HealthResponse{
		Status:    "OK",
		Database:  "connected",
		Timestamp: time.Now().UTC(),
	}
	status := http.StatusOK
	if err := database.Ping(c.Request.Context(), r.db); err != nil {
		r.log.Warn("健康检查数据库不可用", zap.Error(err))
		resp.Status = "DEGRADED"
		resp.Database = "disconnected"
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, resp)
}
