// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	"reflect"
	"strings"

	"chirpmap/internal/domain/entity"
	"chirpmap/internal/errors"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator for request DTOs.
type Validator struct {
	v *validator.Validate
}

// New creates a Validator with the domain tags registered.
// "search_radius" accepts one of the fixed radius labels.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON names so error details match the request body.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	_ = v.RegisterValidation("search_radius", func(fl validator.FieldLevel) bool {
		_, err := entity.ParseSearchRadius(fl.Field().String())
		return err == nil
	})

	return &Validator{v: v}
}

// Validate implements echo.Validator.
func (val *Validator) Validate(i any) error {
	return val.v.Struct(i)
}

// FieldErrors flattens validation errors into field -> failed tag, or nil if err does not
// wrap a validation error.
func FieldErrors(err error) map[string]string {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return nil
	}

	fields := make(map[string]string, len(errs))
	for _, fe := range errs {
		fields[strings.ToLower(fe.Field())] = fe.Tag()
	}

	return fields
}
