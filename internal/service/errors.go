package service

import (
	"errors"

	"github.com/cadastra/backend/internal/validation"
)

var (
	// ErrNotFound signals that a record is absent or not visible to the
	// caller.
	ErrNotFound = errors.New("record not found")
	// ErrNotOwner signals that the record exists but belongs to another
	// user.
	ErrNotOwner = errors.New("caller does not own the record")
	// ErrInvalidCredentials signals a failed login attempt.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError carries the collected field failures of a rejected write.
type ValidationError struct {
	Result *validation.Result
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

// AsValidationError unwraps err into a ValidationError, if it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
