package attendance

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PiolaEvania/PKL-EAbsensi-Backend/internal/config"
	"github.com/PiolaEvania/PKL-EAbsensi-Backend/internal/domain/attendance"
	"github.com/PiolaEvania/PKL-EAbsensi-Backend/internal/domain/user"
	"github.com/PiolaEvania/PKL-EAbsensi-Backend/internal/pkg/geo"
)

// leaveApprovedPrefix is prepended to the justification once. Repeated
// approvals must not compound it.
const leaveApprovedPrefix = "Approved: "

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	userRepo user.UserRepository
	geofence config.GeofenceConfig
	loc      *time.Location
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	userRepo user.UserRepository,
	geofence config.GeofenceConfig,
	loc *time.Location,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		userRepo:             userRepo,
		geofence:             geofence,
		loc:                  loc,
	}
}

// dateOnly normalizes t to midnight of its calendar day in loc.
func dateOnly(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// weekdayDates returns every Monday-Friday calendar date in [start, end],
// normalized to midnight in loc. Returns nil when the window contains no
// weekday (a single-day weekend window is a valid, empty schedule).
func weekdayDates(start, end time.Time, loc *time.Location) []time.Time {
	var dates []time.Time
	for d := dateOnly(start, loc); !d.After(dateOnly(end, loc)); d = d.AddDate(0, 0, 1) {
		if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
			continue
		}
		dates = append(dates, d)
	}
	return dates
}

// ReconcileSchedule implements attendance.AttendanceService. It only ever
// adds missing records; existing history is never deleted or overwritten,
// so invoking it twice in a row is a no-op the second time.
func (s *AttendanceServiceImpl) ReconcileSchedule(ctx context.Context, userID string) (attendance.ReconcileResult, error) {
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return attendance.ReconcileResult{}, err
	}

	if !u.HasInternshipWindow() {
		return attendance.ReconcileResult{}, attendance.ErrWindowNotSet
	}

	expected := weekdayDates(*u.InternshipStart, *u.InternshipEnd, s.loc)

	existing, err := s.AttendanceRepository.ExistingDates(ctx, userID)
	if err != nil {
		return attendance.ReconcileResult{}, fmt.Errorf("failed to read existing schedule dates: %w", err)
	}

	var missing []attendance.Attendance
	for _, d := range expected {
		if existing[d.Format("2006-01-02")] {
			continue
		}
		missing = append(missing, attendance.Attendance{
			UserID: userID,
			Date:   d,
			Status: attendance.StatusNotPresent,
		})
	}

	if len(missing) == 0 {
		return attendance.ReconcileResult{Expected: len(expected), NoOp: true}, nil
	}

	created, err := s.AttendanceRepository.BulkCreate(ctx, missing)
	if err != nil {
		return attendance.ReconcileResult{}, fmt.Errorf("failed to create schedule records: %w", err)
	}

	return attendance.ReconcileResult{Created: created, Expected: len(expected)}, nil
}

// ShrinkWindow implements attendance.AttendanceService. The one
// deliberate destructive trim outside full user deletion.
func (s *AttendanceServiceImpl) ShrinkWindow(ctx context.Context, userID string, newStart, newEnd time.Time) (int, error) {
	if err := user.ValidateInternshipWindow(newStart, newEnd); err != nil {
		return 0, err
	}

	deleted, err := s.AttendanceRepository.DeleteOutsideRange(ctx, userID,
		dateOnly(newStart, s.loc), dateOnly(newEnd, s.loc))
	if err != nil {
		return 0, fmt.Errorf("failed to trim schedule to new window: %w", err)
	}

	return deleted, nil
}

// CheckIn implements attendance.AttendanceService. Guards run in order:
// NotFound, Forbidden, WrongDay, AlreadyMarked, then the mocked-location
// short circuit before any distance evaluation.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	att, err := s.AttendanceRepository.GetByID(ctx, req.RecordID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if att.UserID != req.CallerID {
		return attendance.AttendanceResponse{}, attendance.ErrForbidden
	}

	now := time.Now()
	today := now.In(s.loc).Format("2006-01-02")
	if att.Date.Format("2006-01-02") != today {
		return attendance.AttendanceResponse{}, attendance.ErrWrongDay
	}

	if att.Status != attendance.StatusNotPresent {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyMarked
	}

	ip := req.IPAddress
	att.IPAddress = &ip
	att.DeviceID = req.DeviceID

	if req.MockedLocation {
		// A spoofed coordinate carries no evidentiary value, so the
		// distance is never evaluated on this path.
		att.Status = attendance.StatusOutOfArea
		att.MockedLocation = true
		if err := s.AttendanceRepository.MarkCheckIn(ctx, att); err != nil {
			return attendance.AttendanceResponse{}, err
		}
		return attendance.AttendanceResponse{}, attendance.ErrMockedLocation
	}

	if geo.IsWithinFence(req.Latitude, req.Longitude,
		s.geofence.OfficeLatitude, s.geofence.OfficeLongitude, s.geofence.RadiusMeters) {
		att.Status = attendance.StatusPresent
	} else {
		att.Status = attendance.StatusOutOfArea
	}

	checkInTime := now.UTC()
	att.CheckInTime = &checkInTime
	att.CheckInLatitude = &req.Latitude
	att.CheckInLongitude = &req.Longitude
	att.MockedLocation = false

	if err := s.AttendanceRepository.MarkCheckIn(ctx, att); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return s.mapToResponse(att), nil
}

// RequestLeave implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) RequestLeave(ctx context.Context, req attendance.RequestLeaveRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	att, err := s.AttendanceRepository.GetByID(ctx, req.RecordID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if att.UserID != req.CallerID {
		return attendance.AttendanceResponse{}, attendance.ErrForbidden
	}

	if att.Status != attendance.StatusNotPresent {
		return attendance.AttendanceResponse{}, attendance.ErrInvalidLeaveState
	}

	notes := strings.TrimSpace(req.Notes)
	att.Status = attendance.StatusLeaveRequested
	att.Notes = &notes

	if err := s.AttendanceRepository.Update(ctx, att); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return s.mapToResponse(att), nil
}

// ListLeaveRequests implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListLeaveRequests(ctx context.Context) ([]attendance.AttendanceResponse, error) {
	records, err := s.AttendanceRepository.ListLeaveRequests(ctx)
	if err != nil {
		return nil, err
	}
	return s.mapAllToResponse(records), nil
}

// ApproveLeave implements attendance.AttendanceService. Approving twice
// re-derives the same note instead of compounding the prefix.
func (s *AttendanceServiceImpl) ApproveLeave(ctx context.Context, recordID, adminID string) (attendance.AttendanceResponse, error) {
	att, err := s.AttendanceRepository.GetByID(ctx, recordID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if att.Status != attendance.StatusLeaveRequested && att.Status != attendance.StatusLeaveApproved {
		return attendance.AttendanceResponse{}, attendance.ErrInvalidLeaveState
	}

	original := ""
	if att.Notes != nil {
		original = strings.TrimPrefix(*att.Notes, leaveApprovedPrefix)
	}
	notes := leaveApprovedPrefix + original

	att.Status = attendance.StatusLeaveApproved
	att.Notes = &notes
	att.UpdatedBy = &adminID

	if err := s.AttendanceRepository.Update(ctx, att); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return s.mapToResponse(att), nil
}

// RejectLeave implements attendance.AttendanceService. The original
// justification is overwritten; callers needing an audit trail must
// capture the notes before calling.
func (s *AttendanceServiceImpl) RejectLeave(ctx context.Context, recordID, adminID string) (attendance.AttendanceResponse, error) {
	att, err := s.AttendanceRepository.GetByID(ctx, recordID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if att.Status != attendance.StatusLeaveRequested && att.Status != attendance.StatusLeaveApproved {
		return attendance.AttendanceResponse{}, attendance.ErrInvalidLeaveState
	}

	notes := "Rejected by admin on " + time.Now().In(s.loc).Format("2006-01-02 15:04:05")

	att.Status = attendance.StatusNotPresent
	att.Notes = &notes
	att.UpdatedBy = &adminID

	if err := s.AttendanceRepository.Update(ctx, att); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return s.mapToResponse(att), nil
}

// List implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) List(ctx context.Context, userID string) ([]attendance.AttendanceResponse, error) {
	endOfToday := dateOnly(time.Now(), s.loc)
	records, err := s.AttendanceRepository.ListByUser(ctx, userID, endOfToday)
	if err != nil {
		return nil, err
	}
	return s.mapAllToResponse(records), nil
}

// History implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) History(ctx context.Context, userID string) ([]attendance.AttendanceResponse, error) {
	records, err := s.AttendanceRepository.HistoryByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.mapAllToResponse(records), nil
}

// Get implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Get(ctx context.Context, recordID, callerID string, isAdmin bool) (attendance.AttendanceResponse, error) {
	att, err := s.AttendanceRepository.GetByID(ctx, recordID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if att.UserID != callerID && !isAdmin {
		return attendance.AttendanceResponse{}, attendance.ErrForbidden
	}

	return s.mapToResponse(att), nil
}

// Update implements attendance.AttendanceService. The admin override: an
// out-of-band transition not subject to the check-in guards.
func (s *AttendanceServiceImpl) Update(ctx context.Context, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	att, err := s.AttendanceRepository.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if req.Status != nil {
		att.Status = attendance.Status(*req.Status)
	}
	if req.Notes != nil {
		att.Notes = req.Notes
	}
	if req.CheckInTime != nil {
		parsed, err := time.Parse(time.RFC3339, *req.CheckInTime)
		if err != nil {
			return attendance.AttendanceResponse{}, fmt.Errorf("invalid check_in_time: %w", err)
		}
		att.CheckInTime = &parsed
	}
	if req.CheckInLatitude != nil {
		att.CheckInLatitude = req.CheckInLatitude
	}
	if req.CheckInLongitude != nil {
		att.CheckInLongitude = req.CheckInLongitude
	}
	att.UpdatedBy = &req.AdminID

	if err := s.AttendanceRepository.Update(ctx, att); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return s.mapToResponse(att), nil
}

// Delete implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Delete(ctx context.Context, id string) error {
	return s.AttendanceRepository.Delete(ctx, id)
}

// DeleteForUser implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) DeleteForUser(ctx context.Context, userID string) (int, error) {
	return s.AttendanceRepository.DeleteByUser(ctx, userID)
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format(time.RFC3339)
	return &format
}

func (s *AttendanceServiceImpl) mapToResponse(att attendance.Attendance) attendance.AttendanceResponse {
	return attendance.AttendanceResponse{
		ID:               att.ID,
		UserID:           att.UserID,
		Date:             att.Date.Format("2006-01-02"),
		Status:           string(att.Status),
		Notes:            att.Notes,
		CheckInTime:      timePtrToString(att.CheckInTime),
		CheckInLatitude:  att.CheckInLatitude,
		CheckInLongitude: att.CheckInLongitude,
		IPAddress:        att.IPAddress,
		DeviceID:         att.DeviceID,
		MockedLocation:   att.MockedLocation,
		UpdatedBy:        att.UpdatedBy,
		CreatedAt:        att.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        att.UpdatedAt.Format(time.RFC3339),
	}
}

func (s *AttendanceServiceImpl) mapAllToResponse(records []attendance.Attendance) []attendance.AttendanceResponse {
	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, att := range records {
		responses = append(responses, s.mapToResponse(att))
	}
	return responses
}
