package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInternal = errors.New("internal error")

	// * Data errors.
	ErrDataNotFound    = errors.New("not found")
	ErrConflictingData = errors.New("data conflicts with existing data in unique column")

	// * Communication errors.
	ErrBadRequest = errors.New("error parsing request")

	// * Authority errors.
	ErrTokenCreation              = errors.New("error creating token")
	ErrExpiredToken               = errors.New("access token has expired")
	ErrInvalidToken               = errors.New("access token is invalid")
	ErrInvalidCredentials         = errors.New("invalid email or password")
	ErrEmptyAuthorizationHeader   = errors.New("authorization header is not provided")
	ErrInvalidAuthorizationHeader = errors.New("authorization header format is invalid")
	ErrInvalidAuthorizationType   = errors.New("authorization type is not supported")

	// * Business error kinds. Concrete failures wrap these so callers can
	// match with errors.Is while still seeing the offending value.
	ErrValidation   = errors.New("validation failed")
	ErrInvalidState = errors.New("invalid state")
)

// ValidationError builds a malformed-or-out-of-range input error.
func ValidationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// StateError builds an operation-not-permitted-in-current-status error.
func StateError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidState, fmt.Sprintf(format, args...))
}

// NotFoundError reports an absent aggregate as "not found: <id>".
func NotFoundError(id string) error {
	return fmt.Errorf("%w: %s", ErrDataNotFound, id)
}
