package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/PiolaEvania/PKL-EAbsensi-Backend/internal/domain/attendance"
	"github.com/PiolaEvania/PKL-EAbsensi-Backend/internal/domain/user"
)

// AttendanceJobs repairs attendance schedules in the background so a
// window set before the generator endpoint was called, or dates added by
// an extended window, still end up with records.
type AttendanceJobs struct {
	userRepo      user.UserRepository
	attendanceSvc attendance.AttendanceService
	loc           *time.Location
}

func NewAttendanceJobs(
	userRepo user.UserRepository,
	attendanceSvc attendance.AttendanceService,
	loc *time.Location,
) *AttendanceJobs {
	return &AttendanceJobs{
		userRepo:      userRepo,
		attendanceSvc: attendanceSvc,
		loc:           loc,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("reconcile_attendance_schedules", 1*time.Hour, j.ReconcileActiveSchedules)
}

// ReconcileActiveSchedules inserts missing weekday records for every
// intern whose window is set and not yet finished.
func (j *AttendanceJobs) ReconcileActiveSchedules(ctx context.Context) error {
	// Only run at local midnight (00:00-00:59)
	if time.Now().In(j.loc).Hour() != 0 {
		return nil
	}

	slog.Info("Cron: Starting attendance schedule reconciliation")

	now := time.Now().In(j.loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, j.loc)

	users, err := j.userRepo.List(ctx, user.ListUsersFilter{Status: "active"}, today)
	if err != nil {
		return fmt.Errorf("failed to list active users: %w", err)
	}

	totalCreated := 0
	for _, u := range users {
		if !u.HasInternshipWindow() {
			continue
		}
		result, err := j.attendanceSvc.ReconcileSchedule(ctx, u.ID)
		if err != nil {
			slog.Error("Cron: Failed to reconcile schedule", "user_id", u.ID, "error", err)
			continue
		}
		totalCreated += result.Created
	}

	slog.Info("Cron: Attendance schedule reconciliation done", "users", len(users), "created", totalCreated)
	return nil
}
