// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// CustomValidator validates bound request bodies
type CustomValidator struct {
	validator *validator.Validate
}

// New creates a validator with required-struct checks enabled
func New() *CustomValidator {
	return &CustomValidator{
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validator.Struct(i); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
