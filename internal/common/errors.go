// Package common defines shared constants and sentinel errors used across
// the patients client. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Gateway-level errors.
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrUnavailable  = errors.New("server unavailable")

	// Validation errors (pre-submission, never reach the network).
	ErrValidation = errors.New("validation error")

	// Controller-level flow control.
	ErrBusy = errors.New("request already in flight")
)
