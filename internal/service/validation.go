package service

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	apperrors "github.com/wfunc/anima-counter/internal/errors"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// Validator 返回与 gin 一致使用 binding 标签的校验器
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		validate.SetTagName("binding")
		validate.RegisterTagNameFunc(JSONFieldName)
	})
	return validate
}

// JSONFieldName 字段错误使用 json 名称
func JSONFieldName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}

// validateStruct 校验请求，失败时返回带字段详情的参数错误
func validateStruct(req interface{}) error {
	if err := Validator().Struct(req); err != nil {
		return ValidationError(err)
	}
	return nil
}

// ValidationError 将校验器错误转换为应用错误
func ValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) {
		return apperrors.Wrap(err, apperrors.ErrInvalidParam)
	}
	fields := make([]apperrors.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, apperrors.FieldError{
			Field:   fe.Field(),
			Message: fieldMessage(fe),
		})
	}
	return apperrors.Validation(fields...)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "不能为空"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("长度不能少于%s个字符", fe.Param())
		}
		return fmt.Sprintf("不能小于%s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("长度不能超过%s个字符", fe.Param())
		}
		return fmt.Sprintf("不能大于%s", fe.Param())
	case "alphanum":
		return "只能包含字母和数字"
	case "email":
		return "邮箱格式不正确"
	case "oneof":
		return fmt.Sprintf("必须是以下之一: %s", fe.Param())
	default:
		return fmt.Sprintf("校验失败(%s)", fe.Tag())
	}
}
