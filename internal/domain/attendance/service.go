package attendance

import (
	"context"
	"time"
)

// AttendanceService defines business logic for the attendance lifecycle:
// schedule generation, the check-in state machine, and the leave workflow.
type AttendanceService interface {
	// ReconcileSchedule inserts the missing weekday records for the
	// user's internship window. Idempotent; never deletes or overwrites.
	ReconcileSchedule(ctx context.Context, userID string) (ReconcileResult, error)

	// ShrinkWindow trims records outside [newStart, newEnd] after an
	// admin narrows a window. Returns the number deleted.
	ShrinkWindow(ctx context.Context, userID string, newStart, newEnd time.Time) (int, error)

	// CheckIn runs the self-service check-in state machine
	CheckIn(ctx context.Context, req CheckInRequest) (AttendanceResponse, error)

	// RequestLeave moves today's unresolved record to Izin with a
	// justification
	RequestLeave(ctx context.Context, req RequestLeaveRequest) (AttendanceResponse, error)

	// ListLeaveRequests retrieves pending leave requests, oldest first
	ListLeaveRequests(ctx context.Context) ([]AttendanceResponse, error)

	// ApproveLeave approves a pending leave request
	ApproveLeave(ctx context.Context, recordID, adminID string) (AttendanceResponse, error)

	// RejectLeave rejects a pending leave request, returning the day to
	// Tidak Hadir
	RejectLeave(ctx context.Context, recordID, adminID string) (AttendanceResponse, error)

	// List retrieves a user's records up to today, newest first
	List(ctx context.Context, userID string) ([]AttendanceResponse, error)

	// History retrieves every record for a user, newest first
	History(ctx context.Context, userID string) ([]AttendanceResponse, error)

	// Get retrieves a single record; callerID must own it unless the
	// caller is an admin
	Get(ctx context.Context, recordID, callerID string, isAdmin bool) (AttendanceResponse, error)

	// Update is the admin override, not subject to state-machine guards
	Update(ctx context.Context, req UpdateAttendanceRequest) (AttendanceResponse, error)

	// Delete removes a single record (admin)
	Delete(ctx context.Context, id string) error

	// DeleteForUser cascades deletion of a user's records
	DeleteForUser(ctx context.Context, userID string) (int, error)
}
