package store

import (
	"context"

	"github.com/mkhalidov/go-identity-service/models"
)

// UserRepository is the persistence capability required by the account
// service: create a user record and look one up by username. Uniqueness of
// usernames is enforced by the store itself (database unique constraint),
// so concurrent registrations for the same username need no extra locking
// at the service layer.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}
