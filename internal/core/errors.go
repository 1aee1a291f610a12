package core

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthenticated means no resolvable user identity was supplied.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrNotFound covers both an absent row and a row owned by another user.
	// The two are deliberately indistinguishable to the caller.
	ErrNotFound = errors.New("task not found")
)

// ValidationError reports a missing or malformed request field
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func validationErr(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// IsValidation reports whether err is a field validation error
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
