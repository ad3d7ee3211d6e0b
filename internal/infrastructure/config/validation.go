package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator wraps go-playground/validator, mirroring the teacher's own
// config.Validator.
type Validator struct {
	validate *validator.Validate
}

// NewValidator builds a validator with the struct-tag rules GameConfig and
// its nested tables declare.
func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

// Validate runs struct-tag validation over i.
func (v *Validator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return v.formatValidationError(err)
	}
	return nil
}

func (v *Validator) formatValidationError(err error) error {
	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		var messages []string
		for _, e := range validationErrs {
			messages = append(messages, fmt.Sprintf(
				"field '%s' failed validation: %s (value: '%v')",
				e.Field(), e.Tag(), e.Value(),
			))
		}
		return fmt.Errorf("validation failed:\n  %s", strings.Join(messages, "\n  "))
	}
	return err
}

// Validate validates a fully-loaded GameConfig.
func Validate(cfg GameConfig) error {
	return NewValidator().Validate(cfg)
}
