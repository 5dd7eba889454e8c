package domain

import (
	"errors"
	"fmt"
)

var (
	ErrStateConflict          = errors.New("merchant state changed concurrently")
	ErrActivationNotFound     = errors.New("activation not found")
	ErrParticipationNotFound  = errors.New("participation not found")
	ErrNoActiveActivation     = errors.New("no active sampling activation")
	ErrRedemptionLimitReached = errors.New("activation redemption limit reached")
)

// ValidationError carries the human-readable message returned to the client
// verbatim on a 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
