package errs

import "errors"

// Sentinels shared by domain and usecase layers
var (
	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Event errors
	ErrEventNotFound    = errors.New("event not found")
	ErrCounterUnderflow = errors.New("event counter would become negative")

	// Booking errors
	ErrBookingNotFound        = errors.New("booking not found")
	ErrBookingAlreadyCanceled = errors.New("booking already canceled")
	ErrSubscriberNotFound     = errors.New("subscriber not found")
	ErrPaymentIDsExhausted    = errors.New("payment id range exhausted for this year")

	// Pre-booking link errors
	ErrInvalidPreBookingToken = errors.New("invalid pre-booking token")

	// Statement errors
	ErrMalformedInput = errors.New("malformed input")
)
