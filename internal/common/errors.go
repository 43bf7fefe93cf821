// Package common defines shared constants and sentinel errors used across
// the SiteBloom client. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Transport-level errors.
	ErrUnavailable = errors.New("server unavailable")

	// Auth-level errors.
	ErrUnauthorized = errors.New("unauthorized")
)
