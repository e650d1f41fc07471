package user

import "time"

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

type User struct {
	ID           string
	Name         string
	Username     string
	PasswordHash string
	Email        string
	Phone        *string

	Role Role

	// Internship window. Both bounds are calendar dates in the
	// organization timezone; either may be unset for a newly created
	// account.
	InternshipStart *time.Time
	InternshipEnd   *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// MaxInternshipMonths bounds the span of an internship window.
const MaxInternshipMonths = 6

// HasInternshipWindow reports whether both window bounds are set.
func (u *User) HasInternshipWindow() bool {
	return u.InternshipStart != nil && u.InternshipEnd != nil
}
