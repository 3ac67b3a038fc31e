// Package validator adapts go-playground/validator to Echo's Validator hook.
package validator

import (
	"net/http"
	"reflect"
	"strings"

	domainerrors "faranah/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// echoValidator wraps a validator instance for echo.Echo.Validator.
type echoValidator struct {
	validate *validator.Validate
}

// New creates the request validator installed on the Echo server. Failure
// listings name fields by their json tag, matching the wire shape.
func New() echo.Validator {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	return &echoValidator{validate: validate}
}

// Validate implements echo.Validator. Tag failures surface as the per-field
// validation listing, anything else as a plain 400.
func (v *echoValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var tagErrs validator.ValidationErrors
	if errors.As(err, &tagErrs) {
		fields := make([]domainerrors.FieldError, 0, len(tagErrs))
		for _, tagErr := range tagErrs {
			fields = append(fields, domainerrors.FieldError{
				Field:   tagErr.Field(),
				Message: fieldMessage(tagErr),
			})
		}

		return domainerrors.NewValidationError(fields...)
	}

	return echo.NewHTTPError(http.StatusBadRequest, err.Error())
}

// fieldMessage renders one tag failure as a sentence.
func fieldMessage(tagErr validator.FieldError) string {
	switch tagErr.Tag() {
	case "required":
		return tagErr.Field() + " is required"
	case "email":
		return tagErr.Field() + " must be a valid email address"
	case "min":
		return tagErr.Field() + " must be at least " + tagErr.Param()
	case "gt":
		return tagErr.Field() + " must be greater than " + tagErr.Param()
	case "oneof":
		return tagErr.Field() + " must be one of " + tagErr.Param()
	default:
		return tagErr.Field() + " is invalid"
	}
}
