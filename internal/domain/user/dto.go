package user

import (
	"time"

	"github.com/PiolaEvania/PKL-EAbsensi-Backend/internal/pkg/validator"
)

type CreateUserRequest struct {
	Name            string  `json:"name"`
	Username        string  `json:"username"`
	Password        string  `json:"password"`
	Email           string  `json:"email"`
	Phone           *string `json:"phone,omitempty"`
	Role            string  `json:"role"`
	InternshipStart *string `json:"internship_start,omitempty"` // YYYY-MM-DD
	InternshipEnd   *string `json:"internship_end,omitempty"`   // YYYY-MM-DD
}

func (r *CreateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if !validator.IsValidUsername(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username must be 3-50 characters (letters, digits, '.', '_', '-')",
		})
	}

	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "a valid email address is required",
		})
	}

	if r.Phone != nil && !validator.IsValidPhoneNumber(*r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "phone number must be a valid Indonesian number",
		})
	}

	if r.Role == "" {
		r.Role = string(RoleUser)
	}
	if !validator.IsInSlice(r.Role, []string{string(RoleAdmin), string(RoleUser)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of: admin, user",
		})
	}

	errs = append(errs, validateWindowStrings(r.InternshipStart, r.InternshipEnd)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateUserRequest struct {
	ID              string  `json:"-"`
	Name            *string `json:"name,omitempty"`
	Password        *string `json:"password,omitempty"`
	Email           *string `json:"email,omitempty"`
	Phone           *string `json:"phone,omitempty"`
	InternshipStart *string `json:"internship_start,omitempty"` // YYYY-MM-DD
	InternshipEnd   *string `json:"internship_end,omitempty"`   // YYYY-MM-DD
}

func (r *UpdateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if r.Password != nil && len(*r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "a valid email address is required",
		})
	}

	if r.Phone != nil && !validator.IsValidPhoneNumber(*r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "phone number must be a valid Indonesian number",
		})
	}

	errs = append(errs, validateWindowStrings(r.InternshipStart, r.InternshipEnd)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateWindowStrings(start, end *string) validator.ValidationErrors {
	var errs validator.ValidationErrors

	var startDate, endDate time.Time
	if start != nil {
		var ok bool
		startDate, ok = validator.IsValidDate(*start)
		if !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "internship_start",
				Message: "internship_start must be in YYYY-MM-DD format",
			})
		}
	}
	if end != nil {
		var ok bool
		endDate, ok = validator.IsValidDate(*end)
		if !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "internship_end",
				Message: "internship_end must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) == 0 && start != nil && end != nil {
		if err := ValidateInternshipWindow(startDate, endDate); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "internship_end",
				Message: err.Error(),
			})
		}
	}

	return errs
}

// ValidateInternshipWindow enforces start <= end and the maximum span.
func ValidateInternshipWindow(start, end time.Time) error {
	if end.Before(start) {
		return validator.ValidationErrors{{
			Field:   "internship_end",
			Message: "internship_end must not be before internship_start",
		}}
	}
	if end.After(start.AddDate(0, MaxInternshipMonths, 0)) {
		return ErrInvalidInternshipSpan
	}
	return nil
}

type UserResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Username        string  `json:"username"`
	Email           string  `json:"email"`
	Phone           *string `json:"phone,omitempty"`
	Role            string  `json:"role"`
	InternshipStart *string `json:"internship_start,omitempty"`
	InternshipEnd   *string `json:"internship_end,omitempty"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
}

// ListUsersFilter filters the admin user listing.
type ListUsersFilter struct {
	// Status is "active" (default) or "finished", judged against the
	// internship end date in the organization timezone.
	Status string `json:"status"`
}

func (f *ListUsersFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Status == "" {
		f.Status = "active"
	}
	if !validator.IsInSlice(f.Status, []string{"active", "finished"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: active, finished",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
