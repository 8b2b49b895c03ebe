package middleware

import (
	"github.com/gin-gonic/gin"
	apperrors "github.com/wfunc/anima-counter/internal/errors"
	"github.com/wfunc/anima-counter/internal/logger"
	"go.uber.org/zap"
)

// ErrorResponse 统一错误响应
type ErrorResponse struct {
	Code      string                 `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Fields    []apperrors.FieldError `json:"fields,omitempty"`
	RequestID string                 `json:"request_id,omitempty"`
}

// AbortWithError 写出错误响应并终止处理链，内部错误只记录日志不返回原因
func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	appErr, ok := apperrors.As(err)
	if !ok {
		appErr = apperrors.Wrap(err, apperrors.ErrInternal)
	}

	resp := ErrorResponse{
		Code:      appErr.Key(),
		Message:   appErr.Message,
		Details:   appErr.Details,
		Fields:    appErr.Fields,
		RequestID: GetRequestID(c),
	}
	if appErr.IsInternal() {
		logger.LogError(err, "请求处理失败",
			zap.String("path", c.Request.URL.Path),
			zap.String("request_id", resp.RequestID),
			zap.Int("code", int(appErr.Code)),
		)
		resp.Message = "服务器内部错误"
		resp.Details = ""
	}

	_ = c.Error(err)
	c.AbortWithStatusJSON(appErr.HTTPStatus(), resp)
}
