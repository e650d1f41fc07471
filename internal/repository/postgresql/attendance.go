package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/PiolaEvania/PKL-EAbsensi-Backend/internal/domain/attendance"
	"github.com/PiolaEvania/PKL-EAbsensi-Backend/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `id, user_id, date, status, notes,
	check_in_time, check_in_latitude, check_in_longitude,
	ip_address, device_id, mocked_location, updated_by,
	created_at, updated_at`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var att attendance.Attendance
	err := row.Scan(
		&att.ID, &att.UserID, &att.Date, &att.Status, &att.Notes,
		&att.CheckInTime, &att.CheckInLatitude, &att.CheckInLongitude,
		&att.IPAddress, &att.DeviceID, &att.MockedLocation, &att.UpdatedBy,
		&att.CreatedAt, &att.UpdatedAt,
	)
	return att, err
}

func (r *attendanceRepository) queryMany(ctx context.Context, query string, args ...interface{}) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendances: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance row: %w", err)
		}
		records = append(records, att)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance rows: %w", err)
	}

	return records, nil
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendances WHERE id = $1`

	att, err := scanAttendance(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance by ID: %w", err)
	}

	return att, nil
}

// ListByUser implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByUser(ctx context.Context, userID string, until time.Time) ([]attendance.Attendance, error) {
	query := `SELECT ` + attendanceColumns + ` FROM attendances
		WHERE user_id = $1 AND date <= $2
		ORDER BY date DESC`
	return r.queryMany(ctx, query, userID, until)
}

// HistoryByUser implements attendance.AttendanceRepository.
func (r *attendanceRepository) HistoryByUser(ctx context.Context, userID string) ([]attendance.Attendance, error) {
	query := `SELECT ` + attendanceColumns + ` FROM attendances
		WHERE user_id = $1
		ORDER BY date DESC`
	return r.queryMany(ctx, query, userID)
}

// ReportByUser implements attendance.AttendanceRepository.
func (r *attendanceRepository) ReportByUser(ctx context.Context, userID string) ([]attendance.Attendance, error) {
	query := `SELECT ` + attendanceColumns + ` FROM attendances
		WHERE user_id = $1
		ORDER BY date ASC`
	return r.queryMany(ctx, query, userID)
}

// ExistingDates implements attendance.AttendanceRepository.
func (r *attendanceRepository) ExistingDates(ctx context.Context, userID string) (map[string]bool, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT date FROM attendances WHERE user_id = $1`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query existing dates: %w", err)
	}
	defer rows.Close()

	dates := make(map[string]bool)
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("failed to scan date row: %w", err)
		}
		dates[d.Format("2006-01-02")] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate date rows: %w", err)
	}

	return dates, nil
}

// BulkCreate implements attendance.AttendanceRepository. The batch runs
// in a single transaction; a duplicate-key conflict on one date skips
// that row without aborting the others, matching the uniqueness
// constraint on (user_id, date).
func (r *attendanceRepository) BulkCreate(ctx context.Context, records []attendance.Attendance) (int, error) {
	query := `
		INSERT INTO attendances (id, user_id, date, status, mocked_location)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, date) DO NOTHING
	`

	created := 0
	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		for _, rec := range records {
			tag, err := tx.Exec(ctx, query,
				uuid.New().String(), rec.UserID, rec.Date, rec.Status, rec.MockedLocation,
			)
			if err != nil {
				return fmt.Errorf("failed to insert attendance for %s: %w", rec.Date.Format("2006-01-02"), err)
			}
			created += int(tag.RowsAffected())
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return created, nil
}

// MarkCheckIn implements attendance.AttendanceRepository. The update is
// conditional on the record still being unresolved, which closes the
// double check-in race at the storage boundary.
func (r *attendanceRepository) MarkCheckIn(ctx context.Context, a attendance.Attendance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET status = $2, check_in_time = $3, check_in_latitude = $4,
			check_in_longitude = $5, ip_address = $6, device_id = $7,
			mocked_location = $8, updated_at = NOW()
		WHERE id = $1 AND status = $9
	`

	tag, err := q.Exec(ctx, query,
		a.ID, a.Status, a.CheckInTime, a.CheckInLatitude,
		a.CheckInLongitude, a.IPAddress, a.DeviceID,
		a.MockedLocation, attendance.StatusNotPresent,
	)
	if err != nil {
		return fmt.Errorf("failed to mark check-in: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAlreadyMarked
	}

	return nil
}

// Update implements attendance.AttendanceRepository.
func (r *attendanceRepository) Update(ctx context.Context, a attendance.Attendance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET status = $2, notes = $3, check_in_time = $4,
			check_in_latitude = $5, check_in_longitude = $6,
			ip_address = $7, device_id = $8, mocked_location = $9,
			updated_by = $10, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		a.ID, a.Status, a.Notes, a.CheckInTime,
		a.CheckInLatitude, a.CheckInLongitude,
		a.IPAddress, a.DeviceID, a.MockedLocation,
		a.UpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

// ListLeaveRequests implements attendance.AttendanceRepository. Oldest
// pending request first so the longest-waiting requests surface first.
func (r *attendanceRepository) ListLeaveRequests(ctx context.Context) ([]attendance.Attendance, error) {
	query := `SELECT ` + attendanceColumns + ` FROM attendances
		WHERE status = $1
		ORDER BY date ASC`
	return r.queryMany(ctx, query, attendance.StatusLeaveRequested)
}

// Delete implements attendance.AttendanceRepository.
func (r *attendanceRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendances WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

// DeleteOutsideRange implements attendance.AttendanceRepository.
func (r *attendanceRepository) DeleteOutsideRange(ctx context.Context, userID string, start, end time.Time) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM attendances WHERE user_id = $1 AND (date < $2 OR date > $3)`

	tag, err := q.Exec(ctx, query, userID, start, end)
	if err != nil {
		return 0, fmt.Errorf("failed to trim attendances outside window: %w", err)
	}

	return int(tag.RowsAffected()), nil
}

// DeleteByUser implements attendance.AttendanceRepository.
func (r *attendanceRepository) DeleteByUser(ctx context.Context, userID string) (int, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendances WHERE user_id = $1`, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete attendances for user: %w", err)
	}

	return int(tag.RowsAffected()), nil
}
