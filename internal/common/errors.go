// Package common defines shared constants and sentinel errors used across
// the Whaletown client. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Session-level errors.
	ErrNotAuthenticated = errors.New("not authenticated")
)
