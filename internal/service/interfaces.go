package service

import (
	"context"

	"github.com/mkhalidov/go-identity-service/models"
)

// AuthService covers the whole authentication flow: account registration,
// credential verification, and JWT issuance/validation.
type AuthService interface {
	// RegisterUser creates a new account from the given identity attributes
	// and plaintext password. Registration does not log the user in.
	RegisterUser(ctx context.Context, user models.User, password string) (models.User, error)

	// Login verifies the supplied credentials and returns the stored user on
	// success. A missing user and a wrong password are indistinguishable to
	// the caller.
	Login(ctx context.Context, username, password string) (models.User, error)

	// CreateToken issues a signed bearer token for an authenticated user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates a raw token string and returns its decoded claims.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// TokenIDGenerator produces the unique per-issuance token id ("jti" claim).
// Implementations must draw from a cryptographically adequate random source.
type TokenIDGenerator interface {
	Generate() string
}
