package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("not found")

	ErrPropertyNotFound = fmt.Errorf("property %w", ErrNotFound)
	ErrBookingNotFound  = fmt.Errorf("booking %w", ErrNotFound)
	ErrUserNotFound     = fmt.Errorf("user %w", ErrNotFound)
)

var (
	ErrInvalidInterval   = errors.New("check_in must be before check_out")
	ErrDatesUnavailable  = errors.New("dates already booked")
	ErrInvalidTransition = errors.New("invalid status transition")
)

var (
	ErrForbidden       = errors.New("forbidden")
	ErrUnauthenticated = errors.New("unauthenticated")
)

var (
	ErrStoreUnavailable = errors.New("store unavailable")
)

var (
	ErrValidation = errors.New("validation error")
	ErrEmailTaken = errors.New("email is already registered")
)

// TransitionError names the rejected move; errors.Is(err, ErrInvalidTransition) holds for it.
type TransitionError struct {
	From BookingStatus
	To   BookingStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

func (e *TransitionError) Unwrap() error {
	return ErrInvalidTransition
}
