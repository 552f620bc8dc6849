package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials covers both "user not found" and "wrong password".
	// The two causes are deliberately collapsed into one error so that no
	// caller-visible detail reveals whether the username exists.
	ErrInvalidCredentials = errors.New("invalid username/password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
