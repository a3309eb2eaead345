// filepath: internal/services/validation.go
package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"watchlist/internal/shared"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// validatePayload checks the struct tags of a create payload. Failures are
// reported as a single shared.ErrInvalidInput with one message per field.
func validatePayload(payload interface{}) error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: %v", shared.ErrInvalidInput, err)
	}

	msgs := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		msgs = append(msgs, fmt.Sprintf("%s: %s", strings.ToLower(fe.Field()), fieldErrorMessage(fe)))
	}
	sort.Strings(msgs)
	return fmt.Errorf("%w: %s", shared.ErrInvalidInput, strings.Join(msgs, "; "))
}

func fieldErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "invalid email format"
	case "min":
		return fmt.Sprintf("minimum is %s", fe.Param())
	case "max":
		return fmt.Sprintf("maximum is %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	default:
		return fmt.Sprintf("invalid %s field", fe.Field())
	}
}
