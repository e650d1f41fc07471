package attendance

import "errors"

// Attendance domain errors
var (
	// Check-in errors
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrForbidden          = errors.New("attendance record does not belong to the caller")
	ErrWrongDay           = errors.New("check-in is only allowed for today's scheduled record")
	ErrAlreadyMarked      = errors.New("attendance has already been marked for this day")
	ErrMockedLocation     = errors.New("mocked location detected, check-in rejected")

	// Leave workflow errors
	ErrInvalidLeaveState = errors.New("leave can only be requested for an unresolved day")

	// Schedule generator errors
	ErrWindowNotSet = errors.New("internship start and end dates must be set for the user")
)
