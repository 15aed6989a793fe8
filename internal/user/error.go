package user

import "errors"

var (
	ErrUserNotFound = errors.New("user not found")
	ErrNameExists   = errors.New("username already taken")
	ErrNameLength   = errors.New("username must be 4-20 characters")
	ErrPassword     = errors.New("password must be 6-50 characters")
	ErrInvalidRole  = errors.New("unknown role")

	// ErrInvalidCredentials covers both an unknown name and a wrong
	// password so a failed login leaks neither.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
