// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	"reflect"
	"strings"

	domainerrors "teka/internal/domain/errors"
	"teka/internal/errors"

	"github.com/go-playground/validator/v10"
)

// EchoValidator validates bound request structs.
type EchoValidator struct {
	validate *validator.Validate
}

// New creates a validator that reports fields by their JSON name.
func New() *EchoValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			name, _, _ = strings.Cut(field.Tag.Get("form"), ",")
		}
		if name == "" {
			return field.Name
		}

		return name
	})

	return &EchoValidator{validate: validate}
}

// Validate implements echo.Validator. Failures are returned as ErrValidationFailed
// with the offending fields in the details.
func (v *EchoValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}

	fields := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		fields = append(fields, fieldErr.Field()+" ("+fieldErr.Tag()+")")
	}

	return domainerrors.ErrValidationFailed.WithDetails("invalid fields: " + strings.Join(fields, ", "))
}
