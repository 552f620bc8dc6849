package models

// RegisterResponse confirms a successful registration.
// Registration does not log the user in, so no token is returned here.
type RegisterResponse struct {
	Result string `json:"Result"`
}

// LoginResponse carries the signed bearer token issued after a successful
// credential check.
type LoginResponse struct {
	Token string `json:"Token"`
}

// ValidationError is a single structured registration failure, such as a
// duplicate username or a password rejected by the store's policy.
// Errors are surfaced to the caller verbatim and never retried.
type ValidationError struct {
	// Code is a stable machine-readable identifier (e.g. "DuplicateUsername").
	Code string `json:"code"`

	// Description is a human-readable explanation of the failure.
	Description string `json:"description"`
}

// ValidationErrorResponse is the body returned with HTTP 400 when
// registration fails validation.
type ValidationErrorResponse struct {
	Errors []ValidationError `json:"errors"`
}
