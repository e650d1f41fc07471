package user

import (
	"context"
	"time"
)

// UserRepository defines data access methods for user accounts.
type UserRepository interface {
	// Create creates a new user account
	Create(ctx context.Context, u User) (User, error)

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id string) (User, error)

	// GetByUsername retrieves a user by username (lowercased)
	GetByUsername(ctx context.Context, username string) (User, error)

	// ExistsByUsernameOrEmail reports whether a different user already
	// holds the username or email
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)

	// List retrieves non-admin users filtered by internship status.
	// today is the current calendar date in the organization timezone.
	List(ctx context.Context, filter ListUsersFilter, today time.Time) ([]User, error)

	// Update updates an existing user
	Update(ctx context.Context, u User) error

	// Delete removes a user; the caller is responsible for cascading
	// attendance records first
	Delete(ctx context.Context, id string) error
}
