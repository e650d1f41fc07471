package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
// The storage enforces a uniqueness constraint on (user_id, date).
type AttendanceRepository interface {
	// GetByID retrieves a record by ID
	GetByID(ctx context.Context, id string) (Attendance, error)

	// ListByUser retrieves a user's records up to and including the
	// given date, newest first
	ListByUser(ctx context.Context, userID string, until time.Time) ([]Attendance, error)

	// HistoryByUser retrieves every record for a user, newest first
	HistoryByUser(ctx context.Context, userID string) ([]Attendance, error)

	// ReportByUser retrieves every record for a user, oldest first,
	// for report rendering
	ReportByUser(ctx context.Context, userID string) ([]Attendance, error)

	// ExistingDates returns the set of dates a record already exists
	// for; an existence-only read used by reconciliation
	ExistingDates(ctx context.Context, userID string) (map[string]bool, error)

	// BulkCreate inserts the given records best-effort: a duplicate-key
	// rejection on one date must not abort the others. Returns the
	// number actually inserted.
	BulkCreate(ctx context.Context, records []Attendance) (int, error)

	// MarkCheckIn persists a check-in outcome, conditional on the record
	// still being in the Tidak Hadir state. Returns ErrAlreadyMarked when
	// the conditional update matches no row.
	MarkCheckIn(ctx context.Context, a Attendance) error

	// Update persists an administrative or leave-workflow mutation
	Update(ctx context.Context, a Attendance) error

	// ListLeaveRequests retrieves every record with status Izin, oldest
	// scheduled date first
	ListLeaveRequests(ctx context.Context) ([]Attendance, error)

	// Delete removes a single record
	Delete(ctx context.Context, id string) error

	// DeleteOutsideRange removes a user's records whose date falls
	// outside [start, end]; the destructive trim used when a window
	// shrinks. Returns the number deleted.
	DeleteOutsideRange(ctx context.Context, userID string, start, end time.Time) (int, error)

	// DeleteByUser removes every record for a user (cascade on user
	// deletion). Returns the number deleted.
	DeleteByUser(ctx context.Context, userID string) (int, error)
}
