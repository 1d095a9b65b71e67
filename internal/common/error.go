// Package common defines shared constants and sentinel errors used across
// client and server layers of AuthGate. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Validation errors (client-correctable, detected before any mutation).
	ErrorMissingFields = errors.New("all fields are required")
	ErrorInvalidEmail  = errors.New("invalid email format")
	ErrorWeakPassword  = errors.New("password must be at least 8 characters")

	// Authentication errors. ErrorInvalidCredentials deliberately covers both
	// unknown-email and wrong-password so callers cannot enumerate accounts.
	ErrorInvalidCredentials = errors.New("invalid credentials")

	// Token lifecycle errors.
	ErrorMissingToken = errors.New("access token required")
	ErrorInvalidToken = errors.New("invalid or expired token")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal server error")
)
