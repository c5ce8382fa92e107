package usecase

import "errors"

// Expected, recoverable outcomes. A hidden resource and an absent resource
// produce the same ErrNotFound so existence is never leaked.
var (
	ErrNotFound           = errors.New("not found")
	ErrEmailTaken         = errors.New("user with this email already exists")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountDeactivated = errors.New("account is deactivated")
	ErrSlugTaken          = errors.New("category slug already in use")
)
