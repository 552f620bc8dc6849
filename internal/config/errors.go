package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration values are missing or invalid. Each of them is fatal at
// startup: the service refuses to accept traffic without a complete signing
// configuration.
var (
	// ErrMissingTokenSignKey indicates that no JWT signing key was provided
	// through any configuration source.
	ErrMissingTokenSignKey = errors.New("token sign key is not configured")
	// ErrMissingTokenIssuer indicates that no token issuer name was provided.
	ErrMissingTokenIssuer = errors.New("token issuer is not configured")
	// ErrMissingTokenAudience indicates that no token audience name was provided.
	ErrMissingTokenAudience = errors.New("token audience is not configured")
	// ErrInvalidTokenDuration indicates a negative token validity window.
	ErrInvalidTokenDuration = errors.New("invalid token duration")
)
