// Package services defines the business logic for interaction recording,
// rank/trending reads, and leaderboard reconciliation. This file centralizes
// common service-level error values so that they can be consistently returned
// by service methods and checked by callers.
//
// These errors are intended for internal use by the service layer; translation
// into user-facing messages or HTTP status codes is performed at the handler
// layer. Only validation errors and the rate-limit denial ever reach an end
// user; infrastructure failures degrade to empty results instead.
package services

import "errors"

// Interaction validation and gating errors.
var (
	// ErrEmptySlug is returned when an interaction names no target profile.
	ErrEmptySlug = errors.New("profile slug is empty")

	// ErrInvalidType is returned when the interaction type is neither
	// "view" nor "boost".
	ErrInvalidType = errors.New("interaction type must be view or boost")

	// ErrInvalidLocale is returned when the locale is not a lowercase
	// two-letter code.
	ErrInvalidLocale = errors.New("locale must be a two-letter code")

	// ErrRateLimited is the terminal, user-visible outcome of a boost that
	// arrives inside the cooldown window. It is an expected result, not a
	// retryable transient error.
	ErrRateLimited = errors.New("rate limit exceeded")
)

// Read-path errors.
var (
	// ErrProfileNotFound indicates that the requested profile does not
	// exist, is unpublished, or is absent in the requested locale.
	ErrProfileNotFound = errors.New("profile not found")
)
