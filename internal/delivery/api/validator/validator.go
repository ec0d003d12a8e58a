// Package validator plugs go-playground/validator into echo.
package validator

import (
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// CustomValidator implements echo.Validator
type CustomValidator struct {
	validate *validator.Validate
}

func New() *CustomValidator {
	return &CustomValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

func (cv *CustomValidator) Validate(i any) error {
	return cv.validate.Struct(i)
}

// Describe renders validation errors as "field:rule" pairs sorted by field.
func Describe(err error) string {
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}

	pairs := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		pairs = append(pairs, fieldErr.Field()+":"+fieldErr.Tag())
	}
	sort.Strings(pairs)

	return strings.Join(pairs, ", ")
}
