package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

// ErrorsTestSuite 错误包测试套件
type ErrorsTestSuite struct {
	suite.Suite
}

func (suite *ErrorsTestSuite) TestNew() {
	err := New(ErrInvalidParam)
	suite.NotNil(err)
	suite.Equal(ErrInvalidParam, err.Code)
	suite.Equal("无效的参数", err.Message)
	suite.Empty(err.Details)

	err = New(ErrNotFound, "法术不存在")
	suite.Equal("资源未找到", err.Message)
	suite.Equal("法术不存在", err.Details)

	err = New(ErrDatabaseConnect, "连接失败", "driver: sqlite")
	suite.Equal("连接失败; driver: sqlite", err.Details)

	// 未注册的错误码回退到未知错误消息
	err = New(ErrorCode(9999))
	suite.Equal("未知错误", err.Message)
}

func (suite *ErrorsTestSuite) TestNewf() {
	err := Newf(ErrInvalidParam, "字段 %s 的值 %d 无效", "zeon", -1)
	suite.Equal("字段 zeon 的值 -1 无效", err.Details)
}

func (suite *ErrorsTestSuite) TestWrap() {
	originalErr := errors.New("原始错误")
	wrappedErr := Wrap(originalErr, ErrDatabaseQuery)
	suite.Equal(ErrDatabaseQuery, wrappedErr.Code)
	suite.Equal("原始错误", wrappedErr.Details)
	suite.Equal(originalErr, wrappedErr.Cause)
	suite.True(errors.Is(wrappedErr, originalErr))

	suite.Nil(Wrap(nil, ErrUnknown))

	appErr := New(ErrNotFound, "资源不存在")
	wrappedAppErr := Wrap(appErr, ErrInvalidParam, "额外信息")
	suite.Equal(ErrNotFound, wrappedAppErr.Code)
	suite.Contains(wrappedAppErr.Details, "额外信息")
}

func (suite *ErrorsTestSuite) TestWrapf() {
	originalErr := errors.New("连接超时")
	wrappedErr := Wrapf(originalErr, ErrDatabaseConnect, "数据库 %s 连接失败", "sqlite")
	suite.Equal("数据库 sqlite 连接失败", wrappedErr.Details)
	suite.Equal(originalErr, wrappedErr.Cause)
}

func (suite *ErrorsTestSuite) TestIsAndGetCode() {
	err := New(ErrPermissionDenied)
	suite.True(Is(err, ErrPermissionDenied))
	suite.False(Is(err, ErrNotFound))
	suite.False(Is(nil, ErrPermissionDenied))

	// fmt包装后仍可识别
	wrapped := fmt.Errorf("外层: %w", New(ErrLastProfile))
	suite.True(Is(wrapped, ErrLastProfile))
	suite.Equal(ErrLastProfile, GetCode(wrapped))

	suite.Equal(ErrorCode(0), GetCode(nil))
	suite.Equal(ErrUnknown, GetCode(errors.New("plain")))
}

func (suite *ErrorsTestSuite) TestValidationFields() {
	err := Validation(FieldError{Field: "username", Message: "required"})
	suite.Equal(ErrInvalidParam, err.Code)
	suite.Len(err.Fields, 1)
	suite.Equal("VALIDATION_ERROR", err.Key())

	err.WithFields(FieldError{Field: "password", Message: "min"})
	suite.Len(err.Fields, 2)
}

func (suite *ErrorsTestSuite) TestHTTPStatus() {
	cases := map[ErrorCode]int{
		ErrInvalidParam:      http.StatusBadRequest,
		ErrNoPreviousTurn:    http.StatusBadRequest,
		ErrLastProfile:       http.StatusBadRequest,
		ErrUnknownAction:     http.StatusBadRequest,
		ErrNotFound:          http.StatusNotFound,
		ErrAlreadyExists:     http.StatusConflict,
		ErrPermissionDenied:  http.StatusForbidden,
		ErrAuthentication:    http.StatusUnauthorized,
		ErrTokenExpired:      http.StatusUnauthorized,
		ErrAccountDisabled:   http.StatusUnauthorized,
		ErrRateLimitExceeded: http.StatusTooManyRequests,
		ErrDatabaseQuery:     http.StatusInternalServerError,
		ErrInternal:          http.StatusInternalServerError,
	}
	for code, status := range cases {
		suite.Equal(status, New(code).HTTPStatus(), "code %d", code)
	}
	suite.True(New(ErrDatabaseInsert).IsInternal())
	suite.False(New(ErrNotFound).IsInternal())
}

func (suite *ErrorsTestSuite) TestKey() {
	suite.Equal("ACCESS_DENIED", New(ErrPermissionDenied).Key())
	suite.Equal("CONFLICT", New(ErrAlreadyExists).Key())
	suite.Equal("INTERNAL_ERROR", New(ErrDatabaseQuery).Key())
}

func (suite *ErrorsTestSuite) TestStackCapture() {
	err := New(ErrInternal)
	suite.NotEmpty(err.Stack)
	suite.NotEmpty(err.GetStack())
	for _, frame := range err.Stack {
		suite.NotContains(frame.Function, "runtime.Callers")
	}
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}
