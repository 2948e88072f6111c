package services

import "errors"

var (
	ErrBadCreds      = errors.New("invalid email or password")
	ErrUsernameTaken = errors.New("username already in use")
	ErrEmailTaken    = errors.New("email already in use")
	ErrNotFound      = errors.New("not found")
	ErrForbidden     = errors.New("not allowed")
)

// ValidationError is a local, field-specific rejection raised before any
// store or credential call is made.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

func validationErr(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
