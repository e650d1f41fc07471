package user

import "context"

// UserService defines business logic for the admin user lifecycle.
type UserService interface {
	// Create registers a new intern or admin account
	Create(ctx context.Context, req CreateUserRequest) (UserResponse, error)

	// Get retrieves a single user by ID
	Get(ctx context.Context, id string) (UserResponse, error)

	// List retrieves non-admin users, filtered by internship status
	List(ctx context.Context, filter ListUsersFilter) ([]UserResponse, error)

	// Update mutates a user; changing the internship window triggers
	// schedule reconciliation (and a destructive trim when the window
	// shrinks)
	Update(ctx context.Context, req UpdateUserRequest) (UserResponse, error)

	// Delete removes a user and cascades their attendance records
	Delete(ctx context.Context, id string) error
}
