// Package common defines shared constants and sentinel errors used across
// the platform layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal   = errors.New("internal error")
	ErrorValidation = errors.New("validation error")

	// Account errors. ErrorInvalidCredentials deliberately covers both an
	// unknown email and a wrong password; the two cases must stay
	// indistinguishable to callers.
	ErrorDuplicateAccount   = errors.New("account already exists")
	ErrorInvalidCredentials = errors.New("invalid email or password")
	ErrorUnknownAccount     = errors.New("account not found")

	// Token errors. ErrorInvalidToken covers malformed, badly signed and
	// expired tokens alike.
	ErrorMissingToken = errors.New("missing token")
	ErrorInvalidToken = errors.New("invalid token")

	// Authorization errors (valid identity, insufficient role).
	ErrorForbidden = errors.New("forbidden")
)
