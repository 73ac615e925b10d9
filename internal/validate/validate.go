// Package validate provides input validation utilities for bumpver, built on
// the go-playground/validator library.
//
// VALIDATION COVERAGE:
//   - Manifest path: required, must name a .json file
//
// Use ValidateField to check a single value against validator tags.
package validate

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var (
	// Global validator instance using built-in validations
	validate *validator.Validate
)

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	// Using built-in validators: required, endswith - no custom registration needed
}

// ValidateField validates a single value against validator tags.
//
// Example: ValidateField("package.json", "required,endswith=.json")
func ValidateField(value interface{}, tag string) error {
	return validate.Var(value, tag)
}

// ValidateRequiredString validates that a string field is not empty.
func ValidateRequiredString(value, fieldName string) error {
	if err := ValidateField(value, "required"); err != nil {
		return fmt.Errorf("%s cannot be empty", fieldName)
	}
	return nil
}
