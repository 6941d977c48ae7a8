// Package validator adapts go-playground/validator to echo's Validator.
package validator

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type echoValidator struct {
	validate *validator.Validate
}

// New returns an echo.Validator backed by go-playground/validator
// struct tags.
func New() echo.Validator {
	return &echoValidator{validate: validator.New()}
}

// Validate checks the bound request struct. Violations surface as a 400
// carrying the first failed field.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return nil
}
