package service

import (
	"errors"
	"fmt"
)

// ErrNoActivePlaces is returned when an operation needs at least one active
// place in the catalog
var ErrNoActivePlaces = errors.New("no active places available")

// ValidationError marks a client input problem; handlers map it to 400
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalidf(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a client input problem
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
