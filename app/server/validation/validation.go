package validation

import (
	"errors"
	"fmt"
	"github.com/go-playground/validator/v10"
	"reflect"
	"slices"
	"society-cms/app/server/models"
	"society-cms/app/server/utils"
	"strings"
)

// FieldError 单个字段的校验错误，序列化后放在 400 响应的 details 里
type FieldError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// 错误里使用 json 字段名，和前端保持一致
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// 空字符串交给 required / min 处理
	_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if s == "" {
			return true
		}
		_, err := utils.ParseDate(s)
		return err == nil
	})
	_ = v.RegisterValidation("resourcetype", oneOf(models.ResourceTypes))
	_ = v.RegisterValidation("resourcecategory", oneOf(models.ResourceCategories))
	_ = v.RegisterValidation("courselevel", oneOf(models.CourseLevels))
	_ = v.RegisterValidation("formstatus", oneOf(models.InductionStatuses))

	return &Validator{validate: v}
}

func oneOf(vocabulary []string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return slices.Contains(vocabulary, fl.Field().String())
	}
}

// Validate 实现 echo.Validator
func (v *Validator) Validate(i any) error {
	return v.validate.Struct(i)
}

// Details 把校验错误转换为字段错误列表；不是校验错误时返回 nil
func Details(err error) []FieldError {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil
	}

	details := make([]FieldError, 0, len(validationErrs))
	for _, e := range validationErrs {
		details = append(details, FieldError{
			Field:   e.Field(),
			Tag:     e.Tag(),
			Message: message(e),
		})
	}
	return details
}

func message(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Field())
	case "email":
		return "Valid email is required"
	case "min":
		if e.Kind() == reflect.Slice {
			return fmt.Sprintf("%s must contain at least %s item(s)", e.Field(), e.Param())
		}
		return fmt.Sprintf("%s must be at least %s characters", e.Field(), e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", e.Field(), e.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", e.Field(), e.Param())
	case "isodate":
		return fmt.Sprintf("%s must be an ISO 8601 date", e.Field())
	case "resourcetype":
		return fmt.Sprintf("%s must be one of: %s", e.Field(), strings.Join(models.ResourceTypes, ", "))
	case "resourcecategory":
		return fmt.Sprintf("%s must be one of: %s", e.Field(), strings.Join(models.ResourceCategories, ", "))
	case "courselevel":
		return fmt.Sprintf("%s must be one of: %s", e.Field(), strings.Join(models.CourseLevels, ", "))
	case "formstatus":
		return fmt.Sprintf("%s must be one of: %s", e.Field(), strings.Join(models.InductionStatuses, ", "))
	default:
		return fmt.Sprintf("%s is invalid", e.Field())
	}
}
