package api

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	apperrors "github.com/wfunc/anima-counter/internal/errors"
	"github.com/wfunc/anima-counter/internal/middleware"
	"github.com/wfunc/anima-counter/internal/service"
)

// ErrorResponse 错误响应
type ErrorResponse = middleware.ErrorResponse

// MessageResponse 仅包含提示信息的响应
type MessageResponse struct {
	Message string `json:"message"`
}

// DeletedResponse 批量删除结果
type DeletedResponse struct {
	Message string `json:"message"`
	Deleted int64  `json:"deleted"`
}

// respondError 统一错误出口
func respondError(c *gin.Context, err error) {
	middleware.AbortWithError(c, err)
}

// bindJSON 解析请求体，失败时直接写出参数错误
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		respondError(c, bindingError(err))
		return false
	}
	return true
}

// bindingError 将 gin 绑定错误转换为带字段的参数错误
func bindingError(err error) error {
	var (
		verrs     validator.ValidationErrors
		typeErr   *json.UnmarshalTypeError
		syntaxErr *json.SyntaxError
	)
	switch {
	case stderrors.As(err, &verrs):
		return service.ValidationError(verrs)
	case stderrors.As(err, &typeErr):
		return apperrors.Validation(apperrors.FieldError{Field: typeErr.Field, Message: "类型错误，应为" + typeErr.Type.String()})
	case stderrors.As(err, &syntaxErr), stderrors.Is(err, io.EOF), stderrors.Is(err, io.ErrUnexpectedEOF):
		return apperrors.New(apperrors.ErrInvalidParam, "请求体不是合法的JSON")
	}
	return apperrors.Wrap(err, apperrors.ErrInvalidParam)
}

// currentUser 获取已认证用户ID
func currentUser(c *gin.Context) (uint, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		respondError(c, apperrors.New(apperrors.ErrAuthentication))
	}
	return userID, ok
}

// currentProfile 获取已授权档案ID
func currentProfile(c *gin.Context) (uint, bool) {
	profile, ok := middleware.GetProfile(c)
	if !ok {
		respondError(c, apperrors.New(apperrors.ErrPermissionDenied))
		return 0, false
	}
	return profile.ID, true
}

func respondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

func respondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}
