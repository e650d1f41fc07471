package response

import (
	"errors"
	"net/http"

	"github.com/PiolaEvania/PKL-EAbsensi-Backend/internal/domain/announcement"
	"github.com/PiolaEvania/PKL-EAbsensi-Backend/internal/domain/attendance"
	"github.com/PiolaEvania/PKL-EAbsensi-Backend/internal/domain/auth"
	"github.com/PiolaEvania/PKL-EAbsensi-Backend/internal/domain/user"
	"github.com/PiolaEvania/PKL-EAbsensi-Backend/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid username or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUsernameOrEmailTaken):
		Conflict(w, "Username or email already registered")
	case errors.Is(err, user.ErrAdminRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, user.ErrInvalidInternshipSpan):
		BadRequest(w, "Invalid internship period", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrForbidden):
		Forbidden(w, "You are not allowed to access this attendance record")
	case errors.Is(err, attendance.ErrWrongDay):
		BadRequest(w, "Attendance record is not for today", nil)
	case errors.Is(err, attendance.ErrAlreadyMarked):
		Conflict(w, "Attendance already marked for this record")
	case errors.Is(err, attendance.ErrMockedLocation):
		Forbidden(w, "Mocked location detected")
	case errors.Is(err, attendance.ErrInvalidLeaveState):
		Conflict(w, "Attendance record is not in a valid state for this action")
	case errors.Is(err, attendance.ErrWindowNotSet):
		BadRequest(w, "Internship period has not been set for this user", nil)

	// Announcement domain errors
	case errors.Is(err, announcement.ErrAnnouncementNotFound):
		NotFound(w, "Announcement not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
