// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	playgroundvalidator "github.com/go-playground/validator/v10"
)

// EchoValidator wraps a validator instance for Echo.
type EchoValidator struct {
	validate *playgroundvalidator.Validate
}

// New creates the request validator used by the HTTP server.
func New() *EchoValidator {
	return &EchoValidator{
		validate: playgroundvalidator.New(playgroundvalidator.WithRequiredStructEnabled()),
	}
}

// Validate checks a bound request payload against its validate tags. The
// returned error is the raw validator.ValidationErrors; the error middleware
// renders it as a field-level 400 response.
func (v *EchoValidator) Validate(i any) error {
	return v.validate.Struct(i)
}
