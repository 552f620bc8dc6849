package models

// RegisterRequest is the JSON body accepted by the registration endpoint.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the JSON body accepted by the login endpoint.
// Credentials are transient: the plaintext password is never persisted
// and is dropped as soon as verification completes.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
