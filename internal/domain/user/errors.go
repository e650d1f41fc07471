package user

import "errors"

// User domain errors
var (
	ErrUserNotFound          = errors.New("user not found")
	ErrUsernameOrEmailTaken  = errors.New("username or email already exists")
	ErrAdminRequired         = errors.New("admin privilege required")
	ErrInvalidInternshipSpan = errors.New("internship window exceeds the maximum allowed span")
)
