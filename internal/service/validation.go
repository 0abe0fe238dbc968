package service

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	apperrors "lucky-draw-backend/pkg/app_errors"

	"github.com/go-playground/validator/v10"
)

// phonePattern E.164 格式，可省略開頭的 +
var phonePattern = regexp.MustCompile(`^\+?[1-9]\d{7,14}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// 錯誤訊息使用 json 欄位名稱
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	return v
}

// validateStruct 將 validator 的第一個錯誤轉成 ValidationError
func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
		fe := fieldErrors[0]
		return apperrors.NewValidationError(fe.Field(), describeRule(fe))
	}
	return apperrors.NewValidationError("", err.Error())
}

func describeRule(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "phone":
		return "must be a valid phone number"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	default:
		return fmt.Sprintf("failed on %s", fe.Tag())
	}
}
