package usecase

import "errors"

// ErrUserNotFound is returned by a UserRepository when no user matches the lookup.
var ErrUserNotFound = errors.New("user not found")

// Client-facing messages.
const (
	msgAllFieldsRequired   = "All fields are required"
	msgCredentialsRequired = "Email and password are required"
	msgInvalidCredentials  = "Invalid email or password"
	msgUserNotFound        = "User not found"
)
