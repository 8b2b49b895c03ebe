package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"runtime"
	"strings"
)

// ErrorCode 错误码类型
type ErrorCode int

// 错误码定义（按模块分组）
const (
	// 通用错误 (1000-1999)
	ErrUnknown          ErrorCode = 1000
	ErrInvalidParam     ErrorCode = 1001
	ErrNotFound         ErrorCode = 1002
	ErrAlreadyExists    ErrorCode = 1003
	ErrPermissionDenied ErrorCode = 1004
	ErrTimeout          ErrorCode = 1005
	ErrCanceled         ErrorCode = 1006
	ErrInternal         ErrorCode = 1007

	// 角色/战斗状态错误 (2000-2999)
	ErrLastProfile    ErrorCode = 2000
	ErrNoPreviousTurn ErrorCode = 2001
	ErrUnknownAction  ErrorCode = 2002
	ErrInvalidAmount  ErrorCode = 2003

	// 数据库错误 (5000-5999)
	ErrDatabaseConnect ErrorCode = 5000
	ErrDatabaseQuery   ErrorCode = 5001
	ErrDatabaseInsert  ErrorCode = 5002
	ErrDatabaseUpdate  ErrorCode = 5003
	ErrDatabaseDelete  ErrorCode = 5004
	ErrTransaction     ErrorCode = 5005

	// 配置错误 (6000-6999)
	ErrConfigLoad     ErrorCode = 6000
	ErrConfigValidate ErrorCode = 6001

	// 安全错误 (7000-7999)
	ErrAuthentication    ErrorCode = 7000
	ErrTokenExpired      ErrorCode = 7001
	ErrTokenInvalid      ErrorCode = 7002
	ErrAccountDisabled   ErrorCode = 7003
	ErrRateLimitExceeded ErrorCode = 7004
)

// 错误码消息映射
var errorMessages = map[ErrorCode]string{
	ErrUnknown:          "未知错误",
	ErrInvalidParam:     "无效的参数",
	ErrNotFound:         "资源未找到",
	ErrAlreadyExists:    "资源已存在",
	ErrPermissionDenied: "无权访问该资源",
	ErrTimeout:          "操作超时",
	ErrCanceled:         "操作已取消",
	ErrInternal:         "服务器内部错误",

	ErrLastProfile:    "不能删除唯一的角色",
	ErrNoPreviousTurn: "已经是第0回合",
	ErrUnknownAction:  "未知的操作类型",
	ErrInvalidAmount:  "数值不能为负数",

	ErrDatabaseConnect: "数据库连接失败",
	ErrDatabaseQuery:   "数据库查询失败",
	ErrDatabaseInsert:  "数据库插入失败",
	ErrDatabaseUpdate:  "数据库更新失败",
	ErrDatabaseDelete:  "数据库删除失败",
	ErrTransaction:     "事务处理失败",

	ErrConfigLoad:     "配置加载失败",
	ErrConfigValidate: "配置验证失败",

	ErrAuthentication:    "认证失败",
	ErrTokenExpired:      "令牌已过期",
	ErrTokenInvalid:      "无效的令牌",
	ErrAccountDisabled:   "账号已停用",
	ErrRateLimitExceeded: "请求频率超限",
}

// 对外暴露的错误标识
var errorKeys = map[ErrorCode]string{
	ErrInvalidParam:      "VALIDATION_ERROR",
	ErrNotFound:          "NOT_FOUND",
	ErrAlreadyExists:     "CONFLICT",
	ErrPermissionDenied:  "ACCESS_DENIED",
	ErrTimeout:           "TIMEOUT",
	ErrCanceled:          "CANCELED",
	ErrLastProfile:       "LAST_PROFILE",
	ErrNoPreviousTurn:    "NO_PREVIOUS_TURN",
	ErrUnknownAction:     "UNKNOWN_ACTION",
	ErrInvalidAmount:     "VALIDATION_ERROR",
	ErrAuthentication:    "UNAUTHORIZED",
	ErrTokenExpired:      "TOKEN_EXPIRED",
	ErrTokenInvalid:      "TOKEN_INVALID",
	ErrAccountDisabled:   "ACCOUNT_DISABLED",
	ErrRateLimitExceeded: "RATE_LIMITED",
}

// FieldError 字段级校验错误
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// AppError 应用错误结构
type AppError struct {
	Code    ErrorCode    `json:"code"`
	Message string       `json:"message"`
	Details string       `json:"details,omitempty"`
	Fields  []FieldError `json:"fields,omitempty"`
	Cause   error        `json:"-"`
	Stack   []StackFrame `json:"-"`
}

// StackFrame 调用栈帧
type StackFrame struct {
	Function string `json:"function"`
	File     string `json:"file"`
	Line     int    `json:"line"`
}

// Error 实现error接口
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("[%d] %s: %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap 返回原始错误
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithDetails 添加详细信息
func (e *AppError) WithDetails(details string) *AppError {
	e.Details = details
	return e
}

// WithFields 添加字段错误
func (e *AppError) WithFields(fields ...FieldError) *AppError {
	e.Fields = append(e.Fields, fields...)
	return e
}

// New 创建新的应用错误
func New(code ErrorCode, details ...string) *AppError {
	message, ok := errorMessages[code]
	if !ok {
		message = errorMessages[ErrUnknown]
	}

	err := &AppError{
		Code:    code,
		Message: message,
	}
	if len(details) > 0 {
		err.Details = strings.Join(details, "; ")
	}

	err.captureStack(2)
	return err
}

// Newf 创建格式化的应用错误
func Newf(code ErrorCode, format string, args ...interface{}) *AppError {
	return New(code, fmt.Sprintf(format, args...))
}

// Validation 创建带字段详情的参数错误
func Validation(fields ...FieldError) *AppError {
	err := New(ErrInvalidParam)
	err.Fields = fields
	return err
}

// Wrap 包装错误
func Wrap(err error, code ErrorCode, details ...string) *AppError {
	if err == nil {
		return nil
	}

	// 已经是AppError时保留原始错误码
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		if len(details) > 0 {
			appErr.Details = strings.Join(details, "; ") + "; " + appErr.Details
		}
		return appErr
	}

	wrapped := New(code, details...)
	wrapped.Cause = err
	if wrapped.Details == "" {
		wrapped.Details = err.Error()
	}
	return wrapped
}

// Wrapf 包装格式化错误
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *AppError {
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// As 提取AppError
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// Is 判断错误是否为指定错误码
func Is(err error, code ErrorCode) bool {
	appErr, ok := As(err)
	return ok && appErr.Code == code
}

// GetCode 获取错误码
func GetCode(err error) ErrorCode {
	if err == nil {
		return 0
	}
	if appErr, ok := As(err); ok {
		return appErr.Code
	}
	return ErrUnknown
}

// captureStack 捕获调用栈
func (e *AppError) captureStack(skip int) {
	pcs := make([]uintptr, 32)
	n := runtime.Callers(skip+1, pcs)
	if n == 0 {
		return
	}

	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if !strings.Contains(frame.Function, "runtime.") &&
			!strings.Contains(frame.Function, "anima-counter/internal/errors.") {
			e.Stack = append(e.Stack, StackFrame{
				Function: frame.Function,
				File:     frame.File,
				Line:     frame.Line,
			})
		}
		if !more || len(e.Stack) >= 10 {
			break
		}
	}
}

// GetStack 获取格式化的调用栈
func (e *AppError) GetStack() string {
	var builder strings.Builder
	for i, frame := range e.Stack {
		builder.WriteString(fmt.Sprintf("%d. %s\n   %s:%d\n", i+1, frame.Function, frame.File, frame.Line))
	}
	return builder.String()
}

// Key 返回对外的错误标识
func (e *AppError) Key() string {
	if key, ok := errorKeys[e.Code]; ok {
		return key
	}
	return "INTERNAL_ERROR"
}

// HTTPStatus 返回对应的HTTP状态码
func (e *AppError) HTTPStatus() int {
	switch e.Code {
	case ErrInvalidParam, ErrNoPreviousTurn, ErrUnknownAction, ErrInvalidAmount, ErrLastProfile:
		return http.StatusBadRequest
	case ErrNotFound:
		return http.StatusNotFound
	case ErrAlreadyExists:
		return http.StatusConflict
	case ErrPermissionDenied:
		return http.StatusForbidden
	case ErrTimeout:
		return http.StatusRequestTimeout
	case ErrAuthentication, ErrTokenExpired, ErrTokenInvalid, ErrAccountDisabled:
		return http.StatusUnauthorized
	case ErrRateLimitExceeded:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// IsInternal 是否为不可对外暴露细节的内部错误
func (e *AppError) IsInternal() bool {
	return e.HTTPStatus() >= http.StatusInternalServerError
}
