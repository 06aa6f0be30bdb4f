package dto

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// FieldErrors flattens a binding error into messages keyed by field name so
// the UI can show them inline. Field names are the json names provided the
// validator's tag name func is registered at startup; anything that is not a
// validator error is reported against the body as a whole.
func FieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"_body": "Invalid request body"}
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = fieldMessage(fe)
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "min":
		return fmt.Sprintf("Must be at least %s characters", fe.Param())
	case "email":
		return "Please enter a valid email"
	default:
		return "Invalid value"
	}
}
