// Package validator adapts go-playground/validator to echo.
package validator

import (
	"reflect"
	"strings"

	"vora/internal/domain/entity"

	playground "github.com/go-playground/validator/v10"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *playground.Validate
}

// New returns a validator that reports JSON field names and knows the storefront enums.
func New() *CustomValidator {
	v := playground.New(playground.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	_ = v.RegisterValidation("category", func(fl playground.FieldLevel) bool {
		return entity.Category(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("category_filter", func(fl playground.FieldLevel) bool {
		return entity.Category(fl.Field().String()).IsFilter()
	})
	_ = v.RegisterValidation("currency", func(fl playground.FieldLevel) bool {
		return entity.Currency(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("page", func(fl playground.FieldLevel) bool {
		return entity.Page(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("account_type", func(fl playground.FieldLevel) bool {
		value := fl.Field().String()
		return value == "" || entity.AccountType(value).IsValid()
	})

	return &CustomValidator{validate: v}
}

// Validate runs struct validation.
func (cv *CustomValidator) Validate(i any) error {
	return cv.validate.Struct(i)
}
