package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"erp-service/pkg/apperr"

	"github.com/go-playground/validator/v10"
)

// Validator adapts go-playground/validator to echo's Validator interface,
// reporting failures as domain validation errors.
type Validator struct {
	validate *validator.Validate
}

// NewValidator builds the request validator. Field names in error messages
// come from the json tag so they match the wire format.
func NewValidator() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{validate: v}
}

// Validate implements echo.Validator
func (v *Validator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		switch fe.Tag() {
		case "required":
			return apperr.Validation(fmt.Sprintf("%s is required", fe.Field()))
		case "email":
			return apperr.Validation(fmt.Sprintf("%s must be a valid email address", fe.Field()))
		case "oneof":
			return apperr.Validation(fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param()))
		case "gt":
			return apperr.Validation(fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param()))
		case "gte":
			return apperr.Validation(fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param()))
		default:
			return apperr.Validation(fmt.Sprintf("%s is invalid", fe.Field()))
		}
	}
	return apperr.Validation("invalid request")
}
