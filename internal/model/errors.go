package model

import "errors"

// Common errors used across the application
var (
	// User errors
	ErrUserNotFound   = errors.New("user not found")
	ErrUsernameExists = errors.New("username already exists")

	// Want-to-go list errors
	ErrAlreadyWanted = errors.New("destination is already on the want-to-go list")
)
