package http

import (
	"reflect"
	"strings"

	"swiftdrop/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
)

// RequestValidator is the echo.Validator for request inputs. Field errors are
// reported under their JSON names.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return &RequestValidator{validate: v}
}

func (v *RequestValidator) Validate(i any) error {
	return v.validate.Struct(i)
}

type registerInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Phone    string `json:"phone"`
}

type loginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type addressInput struct {
	Label      string `json:"label" validate:"max=255"`
	Street     string `json:"street" validate:"required,max=255"`
	City       string `json:"city" validate:"required,max=255"`
	State      string `json:"state" validate:"max=255"`
	PostalCode string `json:"postalCode" validate:"max=255"`
	Country    string `json:"country" validate:"max=255"`
}

func invalidBody(cause error) error {
	return errs.NewValueIsInvalidErrorWithCause("request body", cause)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
