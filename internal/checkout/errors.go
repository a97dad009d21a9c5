package checkout

import "errors"

var (
	ErrMissingAddressFields = errors.New("all address fields must be filled")
	ErrMissingCardFields    = errors.New("all credit card fields must be filled")
	ErrUnknownField         = errors.New("unknown form field")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")

	// ErrSubmissionFailed is reserved for a future real payment integration.
	// Nothing in the default pipeline produces it.
	ErrSubmissionFailed = errors.New("submission failed")
)
