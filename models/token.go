package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [jwt.RegisteredClaims] for standard claim access (subject, expiry, etc.).
// Because Token itself satisfies [jwt.Claims], the same type is used both as
// the claims payload passed to jwt.NewWithClaims and as the destination for
// jwt.ParseWithClaims.
//
// The claims carried by an issued token:
//   - sub — the user's username
//   - jti — a fresh random identifier, unique per issuance
//   - uid — the store-assigned user identifier
//   - iss, aud, exp, iat — issuer, audience, expiry, issue time
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides access to the standard JWT claim set
	// (sub, exp, iat, nbf, iss, aud, jti) as defined by RFC 7519.
	jwt.RegisteredClaims

	// UserID is the store-assigned identifier of the token's owner,
	// serialized as the custom "uid" claim.
	UserID int64 `json:"uid,omitempty"`

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	// Excluded from JSON serialization; use [Token.String] to retrieve it.
	SignedString string `json:"-"`
}

// GetUsername returns the username stored in the token's "sub" (subject)
// claim. An error is returned only if the claim cannot be read.
func (t *Token) GetUsername() (string, error) {
	return t.GetSubject()
}

// String returns the compact JWS serialization of the token
// (the signed, base64url-encoded header.payload.signature string).
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
