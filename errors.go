package main

import "errors"

var (
	// ErrInvalidParameter is returned for a k that is not a positive even
	// integer, a negative entity count, or inputs inconsistent with Params.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrAddressingMismatch is returned when the host sequence handed to the
	// address assigner does not match the fabric it is supposed to address.
	ErrAddressingMismatch = errors.New("addressing mismatch")

	// ErrIntegrity is returned when a built topology fails a post-build
	// invariant. It indicates a bug, not bad input.
	ErrIntegrity = errors.New("integrity check failed")
)
