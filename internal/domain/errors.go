package domain

import "errors"

// Lookup and credential errors.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountDisabled    = errors.New("account disabled")
)

// Token errors. Both are reported to callers as unauthorized.
var (
	ErrTokenInvalid = errors.New("token invalid")
	ErrTokenExpired = errors.New("token expired")
)

// ErrConfig signals missing or malformed configuration, e.g. the signing secret.
var ErrConfig = errors.New("invalid configuration")

// Constraint errors raised by the stores.
var (
	ErrDuplicatePersonalID     = errors.New("personal id already registered")
	ErrDirectorAlreadyAssigned = errors.New("employee already directs a directorate")
	ErrReferenced              = errors.New("resource is still referenced")
)

// Validation errors.
var (
	ErrUnknownPosition           = errors.New("unknown position")
	ErrPasswordTooLong           = errors.New("password exceeds 72 bytes")
	ErrInvalidSort               = errors.New("invalid sort")
	ErrInvalidDirectorAssignment = errors.New("director must hold the directorate director position")
)

// IsTokenError reports whether err belongs to the token error class.
func IsTokenError(err error) bool {
	return errors.Is(err, ErrTokenInvalid) || errors.Is(err, ErrTokenExpired)
}
