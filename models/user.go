package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// Assigned by the store on creation and immutable afterwards.
	UserID int64 `json:"-"`

	// Username is the unique user login identifier.
	// Typically used during authentication.
	Username string `json:"username"`

	// Email is the contact address supplied at registration.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt-derived representation of the user's
	// password. This value MUST never hold plaintext and is never serialized.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	// Used for auditing and lifecycle management.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
