// store/errors.go
package store

import "errors"

// ErrNotFound covers both "never existed" and "already soft-deleted": a
// logically deleted row behaves as if it does not exist for every operation.
var ErrNotFound = errors.New("record not found")

// ErrUsernameTaken is returned when registering a username that exists.
var ErrUsernameTaken = errors.New("username already taken")

// ValidationError reports malformed or missing input. It is distinct from
// ErrNotFound so the HTTP layer can answer 400 instead of 404.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
