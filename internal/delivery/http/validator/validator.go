// Package validator adapts go-playground/validator to echo's Validator hook.
package validator

import (
	"github.com/go-playground/validator/v10"

	domainerrors "pantry/internal/domain/errors"
	"pantry/internal/errors"
)

// EchoValidator wires struct tag validation into echo's c.Validate.
type EchoValidator struct {
	validate *validator.Validate
}

// New creates the validator used by the HTTP server.
func New() *EchoValidator {
	return &EchoValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate converts the first tag failure into a field-level validation error.
func (v *EchoValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		first := fieldErrs[0]

		return domainerrors.NewValidationError(first.Field(), "Invalid value for "+first.Field())
	}

	return errors.Wrap(domainerrors.ErrValidationFailed, "request validation")
}
