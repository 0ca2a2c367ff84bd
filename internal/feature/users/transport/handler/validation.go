package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validationMessages turns a ShouldBindJSON error into the list of
// human-readable field messages returned in the 400 envelope. Every failed
// field is reported, not just the first one.
func validationMessages(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// Malformed JSON or a type mismatch, not a field rule violation.
		return []string{"invalid request body"}
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return msgs
}

// fieldMessage maps a single field error to its message.
func fieldMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", field, fe.Param())
	case "email":
		return "invalid email format"
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
