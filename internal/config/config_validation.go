// SPDX-License-Identifier: Apache-2.0

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// A missing or empty token signing key, issuer, or audience is a fatal
// configuration error: the service must refuse to start rather than issue
// unsigned or incorrectly-signed tokens.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return ErrMissingTokenSignKey
	}

	if cfg.App.TokenIssuer == "" {
		return ErrMissingTokenIssuer
	}

	if cfg.App.TokenAudience == "" {
		return ErrMissingTokenAudience
	}

	if cfg.App.TokenDuration < 0 {
		return ErrInvalidTokenDuration
	}

	return nil
}
