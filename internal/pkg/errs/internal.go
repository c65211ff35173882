package errs

import (
	"errors"
	"fmt"
)

var ErrInternal = errors.New("internal error")

// InternalError hides an unexpected failure behind a generic Message.
// Cause is kept for logging and must never be sent to clients.
type InternalError struct {
	Message string
	Cause   error
}

func NewInternalError(message string, cause error) *InternalError {
	return &InternalError{Message: message, Cause: cause}
}

func (e *InternalError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrInternal, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrInternal, e.Message)
}

func (e *InternalError) Unwrap() error {
	return ErrInternal
}

// IsDomain reports whether err (or anything it wraps) is one of the error kinds
// that may be shown to the caller verbatim.
func IsDomain(err error) bool {
	return errors.Is(err, ErrValueIsRequired) ||
		errors.Is(err, ErrValueIsInvalid) ||
		errors.Is(err, ErrValueIsOutOfRange) ||
		errors.Is(err, ErrObjectNotFound) ||
		errors.Is(err, ErrObjectAlreadyExists) ||
		errors.Is(err, ErrUnauthorized)
}

// AsInternal returns err unchanged when it is a domain or internal error and
// wraps it into an InternalError carrying message otherwise.
func AsInternal(message string, err error) error {
	if err == nil {
		return nil
	}
	if IsDomain(err) || errors.Is(err, ErrInternal) {
		return err
	}
	return NewInternalError(message, err)
}
