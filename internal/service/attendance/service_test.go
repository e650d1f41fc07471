package attendance

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/PiolaEvania/PKL-EAbsensi-Backend/internal/config"
	"github.com/PiolaEvania/PKL-EAbsensi-Backend/internal/domain/attendance"
	"github.com/PiolaEvania/PKL-EAbsensi-Backend/internal/domain/user"
	"github.com/PiolaEvania/PKL-EAbsensi-Backend/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testOfficeLat = -3.2891
	testOfficeLon = 114.6066
	testRadius    = 100.0
)

// fakeAttendanceRepo is an in-memory AttendanceRepository enforcing the
// same (user_id, date) uniqueness and conditional check-in semantics as
// the PostgreSQL implementation.
type fakeAttendanceRepo struct {
	records map[string]attendance.Attendance
	nextID  int
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]attendance.Attendance)}
}

func (f *fakeAttendanceRepo) dateKey(userID string, date time.Time) string {
	return userID + "|" + date.Format("2006-01-02")
}

func (f *fakeAttendanceRepo) hasDate(userID string, date time.Time) bool {
	for _, rec := range f.records {
		if f.dateKey(rec.UserID, rec.Date) == f.dateKey(userID, date) {
			return true
		}
	}
	return false
}

func (f *fakeAttendanceRepo) seed(rec attendance.Attendance) attendance.Attendance {
	if rec.ID == "" {
		f.nextID++
		rec.ID = fmt.Sprintf("att-%d", f.nextID)
	}
	f.records[rec.ID] = rec
	return rec
}

func (f *fakeAttendanceRepo) GetByID(_ context.Context, id string) (attendance.Attendance, error) {
	rec, ok := f.records[id]
	if !ok {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	return rec, nil
}

func (f *fakeAttendanceRepo) ListByUser(_ context.Context, userID string, until time.Time) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, rec := range f.records {
		if rec.UserID == userID && !rec.Date.After(until) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) HistoryByUser(_ context.Context, userID string) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, rec := range f.records {
		if rec.UserID == userID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) ReportByUser(ctx context.Context, userID string) ([]attendance.Attendance, error) {
	return f.HistoryByUser(ctx, userID)
}

func (f *fakeAttendanceRepo) ExistingDates(_ context.Context, userID string) (map[string]bool, error) {
	dates := make(map[string]bool)
	for _, rec := range f.records {
		if rec.UserID == userID {
			dates[rec.Date.Format("2006-01-02")] = true
		}
	}
	return dates, nil
}

func (f *fakeAttendanceRepo) BulkCreate(_ context.Context, records []attendance.Attendance) (int, error) {
	created := 0
	for _, rec := range records {
		if f.hasDate(rec.UserID, rec.Date) {
			continue
		}
		f.seed(rec)
		created++
	}
	return created, nil
}

func (f *fakeAttendanceRepo) MarkCheckIn(_ context.Context, a attendance.Attendance) error {
	existing, ok := f.records[a.ID]
	if !ok || existing.Status != attendance.StatusNotPresent {
		return attendance.ErrAlreadyMarked
	}
	f.records[a.ID] = a
	return nil
}

func (f *fakeAttendanceRepo) Update(_ context.Context, a attendance.Attendance) error {
	if _, ok := f.records[a.ID]; !ok {
		return attendance.ErrAttendanceNotFound
	}
	f.records[a.ID] = a
	return nil
}

func (f *fakeAttendanceRepo) ListLeaveRequests(_ context.Context) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, rec := range f.records {
		if rec.Status == attendance.StatusLeaveRequested {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.records[id]; !ok {
		return attendance.ErrAttendanceNotFound
	}
	delete(f.records, id)
	return nil
}

func (f *fakeAttendanceRepo) DeleteOutsideRange(_ context.Context, userID string, start, end time.Time) (int, error) {
	deleted := 0
	for id, rec := range f.records {
		if rec.UserID == userID && (rec.Date.Before(start) || rec.Date.After(end)) {
			delete(f.records, id)
			deleted++
		}
	}
	return deleted, nil
}

func (f *fakeAttendanceRepo) DeleteByUser(_ context.Context, userID string) (int, error) {
	deleted := 0
	for id, rec := range f.records {
		if rec.UserID == userID {
			delete(f.records, id)
			deleted++
		}
	}
	return deleted, nil
}

// fakeUserRepo is an in-memory UserRepository.
type fakeUserRepo struct {
	users map[string]user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]user.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, u user.User) (user.User, error) {
	f.users[u.ID] = u
	return u, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (user.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) ExistsByUsernameOrEmail(_ context.Context, username, email string) (bool, error) {
	for _, u := range f.users {
		if u.Username == username || u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) List(_ context.Context, _ user.ListUsersFilter, _ time.Time) ([]user.User, error) {
	var out []user.User
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) Update(_ context.Context, u user.User) error {
	if _, ok := f.users[u.ID]; !ok {
		return user.ErrUserNotFound
	}
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.users[id]; !ok {
		return user.ErrUserNotFound
	}
	delete(f.users, id)
	return nil
}

func testLocation(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Makassar")
	require.NoError(t, err)
	return loc
}

func newTestService(t *testing.T) (attendance.AttendanceService, *fakeAttendanceRepo, *fakeUserRepo, *time.Location) {
	t.Helper()
	loc := testLocation(t)
	attRepo := newFakeAttendanceRepo()
	userRepo := newFakeUserRepo()
	svc := NewAttendanceService(attRepo, userRepo, config.GeofenceConfig{
		OfficeLatitude:  testOfficeLat,
		OfficeLongitude: testOfficeLon,
		RadiusMeters:    testRadius,
	}, loc)
	return svc, attRepo, userRepo, loc
}

func seedInternDay(repo *fakeUserRepo, id string, start, end time.Time) {
	repo.users[id] = user.User{
		ID:              id,
		Name:            "Intern",
		Username:        id,
		Role:            user.RoleUser,
		InternshipStart: &start,
		InternshipEnd:   &end,
	}
}

func todayRecord(t *testing.T, attRepo *fakeAttendanceRepo, loc *time.Location, userID string) attendance.Attendance {
	t.Helper()
	now := time.Now().In(loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	return attRepo.seed(attendance.Attendance{
		UserID: userID,
		Date:   today,
		Status: attendance.StatusNotPresent,
	})
}

func TestAttendanceService_ReconcileSchedule_CreatesOnlyMissingWeekdays(t *testing.T) {
	svc, attRepo, userRepo, loc := newTestService(t)
	ctx := context.Background()

	// Wednesday through Sunday
	start := time.Date(2025, 10, 8, 0, 0, 0, 0, loc)
	end := time.Date(2025, 10, 12, 0, 0, 0, 0, loc)
	seedInternDay(userRepo, "intern-1", start, end)

	// Wednesday already has a record
	attRepo.seed(attendance.Attendance{
		UserID: "intern-1",
		Date:   start,
		Status: attendance.StatusPresent,
	})

	result, err := svc.ReconcileSchedule(ctx, "intern-1")
	require.NoError(t, err)

	assert.Equal(t, 3, result.Expected)
	assert.Equal(t, 2, result.Created)
	assert.False(t, result.NoOp)

	dates, err := attRepo.ExistingDates(ctx, "intern-1")
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{
		"2025-10-08": true,
		"2025-10-09": true,
		"2025-10-10": true,
	}, dates)
}

func TestAttendanceService_ReconcileSchedule_Idempotent(t *testing.T) {
	svc, _, userRepo, loc := newTestService(t)
	ctx := context.Background()

	start := time.Date(2025, 10, 6, 0, 0, 0, 0, loc) // Monday
	end := time.Date(2025, 10, 10, 0, 0, 0, 0, loc)  // Friday
	seedInternDay(userRepo, "intern-1", start, end)

	first, err := svc.ReconcileSchedule(ctx, "intern-1")
	require.NoError(t, err)
	assert.Equal(t, 5, first.Created)

	second, err := svc.ReconcileSchedule(ctx, "intern-1")
	require.NoError(t, err)
	assert.Equal(t, 0, second.Created)
	assert.True(t, second.NoOp)
}

func TestAttendanceService_ReconcileSchedule_WeekendOnlyWindow(t *testing.T) {
	svc, _, userRepo, loc := newTestService(t)
	ctx := context.Background()

	start := time.Date(2025, 10, 11, 0, 0, 0, 0, loc) // Saturday
	end := time.Date(2025, 10, 12, 0, 0, 0, 0, loc)   // Sunday
	seedInternDay(userRepo, "intern-1", start, end)

	result, err := svc.ReconcileSchedule(ctx, "intern-1")
	require.NoError(t, err)
	assert.Equal(t, 0, result.Expected)
	assert.Equal(t, 0, result.Created)
	assert.True(t, result.NoOp)
}

func TestAttendanceService_ReconcileSchedule_ExistingWeekendRecordUntouched(t *testing.T) {
	svc, attRepo, userRepo, loc := newTestService(t)
	ctx := context.Background()

	start := time.Date(2025, 10, 9, 0, 0, 0, 0, loc) // Thursday
	end := time.Date(2025, 10, 12, 0, 0, 0, 0, loc)  // Sunday
	seedInternDay(userRepo, "intern-1", start, end)

	// A manually created Saturday record stays as-is
	saturday := attRepo.seed(attendance.Attendance{
		UserID: "intern-1",
		Date:   time.Date(2025, 10, 11, 0, 0, 0, 0, loc),
		Status: attendance.StatusPresent,
	})

	result, err := svc.ReconcileSchedule(ctx, "intern-1")
	require.NoError(t, err)
	assert.Equal(t, 2, result.Created) // Thursday, Friday

	kept, err := attRepo.GetByID(ctx, saturday.ID)
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusPresent, kept.Status)
}

func TestAttendanceService_ReconcileSchedule_WindowNotSet(t *testing.T) {
	svc, _, userRepo, _ := newTestService(t)
	ctx := context.Background()

	userRepo.users["intern-1"] = user.User{ID: "intern-1", Role: user.RoleUser}

	_, err := svc.ReconcileSchedule(ctx, "intern-1")
	assert.ErrorIs(t, err, attendance.ErrWindowNotSet)
}

func TestAttendanceService_ReconcileSchedule_UserNotFound(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	_, err := svc.ReconcileSchedule(context.Background(), "missing")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestAttendanceService_ShrinkWindow_TrimsOutsideRecords(t *testing.T) {
	svc, attRepo, _, loc := newTestService(t)
	ctx := context.Background()

	for day := 6; day <= 10; day++ { // Monday through Friday
		attRepo.seed(attendance.Attendance{
			UserID: "intern-1",
			Date:   time.Date(2025, 10, day, 0, 0, 0, 0, loc),
			Status: attendance.StatusNotPresent,
		})
	}

	deleted, err := svc.ShrinkWindow(ctx, "intern-1",
		time.Date(2025, 10, 7, 0, 0, 0, 0, loc),
		time.Date(2025, 10, 9, 0, 0, 0, 0, loc))
	require.NoError(t, err)
	assert.Equal(t, 2, deleted)

	dates, err := attRepo.ExistingDates(ctx, "intern-1")
	require.NoError(t, err)
	assert.Len(t, dates, 3)
	assert.False(t, dates["2025-10-06"])
	assert.False(t, dates["2025-10-10"])
}

func TestAttendanceService_ShrinkWindow_InvalidRange(t *testing.T) {
	svc, _, _, loc := newTestService(t)

	_, err := svc.ShrinkWindow(context.Background(), "intern-1",
		time.Date(2025, 10, 9, 0, 0, 0, 0, loc),
		time.Date(2025, 10, 7, 0, 0, 0, 0, loc))
	assert.Error(t, err)
}

func TestAttendanceService_CheckIn_InsideFence(t *testing.T) {
	svc, attRepo, _, loc := newTestService(t)
	ctx := context.Background()

	rec := todayRecord(t, attRepo, loc, "intern-1")

	result, err := svc.CheckIn(ctx, attendance.CheckInRequest{
		RecordID:  rec.ID,
		CallerID:  "intern-1",
		Latitude:  testOfficeLat,
		Longitude: testOfficeLon,
		IPAddress: "10.0.0.1",
	})
	require.NoError(t, err)

	assert.Equal(t, string(attendance.StatusPresent), result.Status)
	assert.NotNil(t, result.CheckInTime)
	require.NotNil(t, result.CheckInLatitude)
	assert.Equal(t, testOfficeLat, *result.CheckInLatitude)
	require.NotNil(t, result.IPAddress)
	assert.Equal(t, "10.0.0.1", *result.IPAddress)
	assert.False(t, result.MockedLocation)
}

func TestAttendanceService_CheckIn_OutsideFence(t *testing.T) {
	svc, attRepo, _, loc := newTestService(t)
	ctx := context.Background()

	rec := todayRecord(t, attRepo, loc, "intern-1")

	// Roughly 150m north of the office, outside the 100m radius
	result, err := svc.CheckIn(ctx, attendance.CheckInRequest{
		RecordID:  rec.ID,
		CallerID:  "intern-1",
		Latitude:  testOfficeLat + 0.00135,
		Longitude: testOfficeLon,
		IPAddress: "10.0.0.1",
	})
	require.NoError(t, err)

	assert.Equal(t, string(attendance.StatusOutOfArea), result.Status)
	assert.NotNil(t, result.CheckInTime)
}

func TestAttendanceService_CheckIn_MockedLocationShortCircuits(t *testing.T) {
	svc, attRepo, _, loc := newTestService(t)
	ctx := context.Background()

	rec := todayRecord(t, attRepo, loc, "intern-1")

	// Coordinates dead on the office: a mocked flag must still override
	// any distance evaluation
	_, err := svc.CheckIn(ctx, attendance.CheckInRequest{
		RecordID:       rec.ID,
		CallerID:       "intern-1",
		Latitude:       testOfficeLat,
		Longitude:      testOfficeLon,
		MockedLocation: true,
		IPAddress:      "10.0.0.1",
	})
	assert.ErrorIs(t, err, attendance.ErrMockedLocation)

	stored, getErr := attRepo.GetByID(ctx, rec.ID)
	require.NoError(t, getErr)
	assert.Equal(t, attendance.StatusOutOfArea, stored.Status)
	assert.True(t, stored.MockedLocation)
	assert.Nil(t, stored.CheckInLatitude)
	assert.Nil(t, stored.CheckInTime)
}

func TestAttendanceService_CheckIn_SecondAttemptRejected(t *testing.T) {
	svc, attRepo, _, loc := newTestService(t)
	ctx := context.Background()

	rec := todayRecord(t, attRepo, loc, "intern-1")

	req := attendance.CheckInRequest{
		RecordID:  rec.ID,
		CallerID:  "intern-1",
		Latitude:  testOfficeLat,
		Longitude: testOfficeLon,
		IPAddress: "10.0.0.1",
	}

	_, err := svc.CheckIn(ctx, req)
	require.NoError(t, err)

	_, err = svc.CheckIn(ctx, req)
	assert.ErrorIs(t, err, attendance.ErrAlreadyMarked)
}

func TestAttendanceService_CheckIn_WrongDay(t *testing.T) {
	svc, attRepo, _, loc := newTestService(t)
	ctx := context.Background()

	now := time.Now().In(loc)
	yesterday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc).AddDate(0, 0, -1)
	rec := attRepo.seed(attendance.Attendance{
		UserID: "intern-1",
		Date:   yesterday,
		Status: attendance.StatusNotPresent,
	})

	_, err := svc.CheckIn(ctx, attendance.CheckInRequest{
		RecordID:  rec.ID,
		CallerID:  "intern-1",
		Latitude:  testOfficeLat,
		Longitude: testOfficeLon,
	})
	assert.ErrorIs(t, err, attendance.ErrWrongDay)
}

func TestAttendanceService_CheckIn_Forbidden(t *testing.T) {
	svc, attRepo, _, loc := newTestService(t)
	ctx := context.Background()

	rec := todayRecord(t, attRepo, loc, "intern-1")

	_, err := svc.CheckIn(ctx, attendance.CheckInRequest{
		RecordID:  rec.ID,
		CallerID:  "intern-2",
		Latitude:  testOfficeLat,
		Longitude: testOfficeLon,
	})
	assert.ErrorIs(t, err, attendance.ErrForbidden)
}

func TestAttendanceService_CheckIn_RecordNotFound(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	_, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{
		RecordID:  "missing",
		CallerID:  "intern-1",
		Latitude:  testOfficeLat,
		Longitude: testOfficeLon,
	})
	assert.ErrorIs(t, err, attendance.ErrAttendanceNotFound)
}

func TestAttendanceService_CheckIn_InvalidCoordinates(t *testing.T) {
	svc, attRepo, _, loc := newTestService(t)

	rec := todayRecord(t, attRepo, loc, "intern-1")

	_, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{
		RecordID:  rec.ID,
		CallerID:  "intern-1",
		Latitude:  123.0,
		Longitude: 114.6,
	})

	var validationErrs validator.ValidationErrors
	assert.ErrorAs(t, err, &validationErrs)
}

func TestAttendanceService_RequestLeave_MovesToRequested(t *testing.T) {
	svc, attRepo, _, loc := newTestService(t)
	ctx := context.Background()

	rec := todayRecord(t, attRepo, loc, "intern-1")

	result, err := svc.RequestLeave(ctx, attendance.RequestLeaveRequest{
		RecordID: rec.ID,
		CallerID: "intern-1",
		Notes:    "  family matter  ",
	})
	require.NoError(t, err)

	assert.Equal(t, string(attendance.StatusLeaveRequested), result.Status)
	require.NotNil(t, result.Notes)
	assert.Equal(t, "family matter", *result.Notes)
}

func TestAttendanceService_RequestLeave_EmptyNotes(t *testing.T) {
	svc, attRepo, _, loc := newTestService(t)

	rec := todayRecord(t, attRepo, loc, "intern-1")

	_, err := svc.RequestLeave(context.Background(), attendance.RequestLeaveRequest{
		RecordID: rec.ID,
		CallerID: "intern-1",
		Notes:    "   ",
	})

	var validationErrs validator.ValidationErrors
	assert.ErrorAs(t, err, &validationErrs)
}

func TestAttendanceService_RequestLeave_AlreadyResolved(t *testing.T) {
	svc, attRepo, _, loc := newTestService(t)

	rec := todayRecord(t, attRepo, loc, "intern-1")
	rec.Status = attendance.StatusPresent
	attRepo.seed(rec)

	_, err := svc.RequestLeave(context.Background(), attendance.RequestLeaveRequest{
		RecordID: rec.ID,
		CallerID: "intern-1",
		Notes:    "sick",
	})
	assert.ErrorIs(t, err, attendance.ErrInvalidLeaveState)
}

func TestAttendanceService_ApproveLeave_PrefixesNotes(t *testing.T) {
	svc, attRepo, _, loc := newTestService(t)
	ctx := context.Background()

	rec := todayRecord(t, attRepo, loc, "intern-1")

	_, err := svc.RequestLeave(ctx, attendance.RequestLeaveRequest{
		RecordID: rec.ID,
		CallerID: "intern-1",
		Notes:    "sick",
	})
	require.NoError(t, err)

	result, err := svc.ApproveLeave(ctx, rec.ID, "admin-1")
	require.NoError(t, err)

	assert.Equal(t, string(attendance.StatusLeaveApproved), result.Status)
	require.NotNil(t, result.Notes)
	assert.Equal(t, "Approved: sick", *result.Notes)
	require.NotNil(t, result.UpdatedBy)
	assert.Equal(t, "admin-1", *result.UpdatedBy)
}

func TestAttendanceService_ApproveLeave_TwiceDoesNotCompoundPrefix(t *testing.T) {
	svc, attRepo, _, loc := newTestService(t)
	ctx := context.Background()

	rec := todayRecord(t, attRepo, loc, "intern-1")

	_, err := svc.RequestLeave(ctx, attendance.RequestLeaveRequest{
		RecordID: rec.ID,
		CallerID: "intern-1",
		Notes:    "sick",
	})
	require.NoError(t, err)

	_, err = svc.ApproveLeave(ctx, rec.ID, "admin-1")
	require.NoError(t, err)

	result, err := svc.ApproveLeave(ctx, rec.ID, "admin-2")
	require.NoError(t, err)

	require.NotNil(t, result.Notes)
	assert.Equal(t, "Approved: sick", *result.Notes)
}

func TestAttendanceService_ApproveLeave_NotRequested(t *testing.T) {
	svc, attRepo, _, loc := newTestService(t)

	rec := todayRecord(t, attRepo, loc, "intern-1")

	_, err := svc.ApproveLeave(context.Background(), rec.ID, "admin-1")
	assert.ErrorIs(t, err, attendance.ErrInvalidLeaveState)
}

func TestAttendanceService_RejectLeave_ReturnsToNotPresent(t *testing.T) {
	svc, attRepo, _, loc := newTestService(t)
	ctx := context.Background()

	rec := todayRecord(t, attRepo, loc, "intern-1")

	_, err := svc.RequestLeave(ctx, attendance.RequestLeaveRequest{
		RecordID: rec.ID,
		CallerID: "intern-1",
		Notes:    "sick",
	})
	require.NoError(t, err)

	result, err := svc.RejectLeave(ctx, rec.ID, "admin-1")
	require.NoError(t, err)

	assert.Equal(t, string(attendance.StatusNotPresent), result.Status)
	require.NotNil(t, result.Notes)
	assert.True(t, strings.HasPrefix(*result.Notes, "Rejected by admin on "))
}

func TestAttendanceService_ListLeaveRequests_OnlyPending(t *testing.T) {
	svc, attRepo, _, loc := newTestService(t)
	ctx := context.Background()

	pending := todayRecord(t, attRepo, loc, "intern-1")
	_, err := svc.RequestLeave(ctx, attendance.RequestLeaveRequest{
		RecordID: pending.ID,
		CallerID: "intern-1",
		Notes:    "sick",
	})
	require.NoError(t, err)

	attRepo.seed(attendance.Attendance{
		UserID: "intern-2",
		Date:   time.Date(2025, 10, 6, 0, 0, 0, 0, loc),
		Status: attendance.StatusPresent,
	})

	result, err := svc.ListLeaveRequests(ctx)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, pending.ID, result[0].ID)
}

func TestAttendanceService_Get_OwnerAndAdmin(t *testing.T) {
	svc, attRepo, _, loc := newTestService(t)
	ctx := context.Background()

	rec := todayRecord(t, attRepo, loc, "intern-1")

	_, err := svc.Get(ctx, rec.ID, "intern-1", false)
	assert.NoError(t, err)

	_, err = svc.Get(ctx, rec.ID, "someone-else", true)
	assert.NoError(t, err)

	_, err = svc.Get(ctx, rec.ID, "someone-else", false)
	assert.ErrorIs(t, err, attendance.ErrForbidden)
}

func TestAttendanceService_Update_AdminOverride(t *testing.T) {
	svc, attRepo, _, loc := newTestService(t)
	ctx := context.Background()

	rec := todayRecord(t, attRepo, loc, "intern-1")
	status := string(attendance.StatusPresent)
	notes := "corrected by admin"
	checkIn := "2025-10-08T01:15:00Z"

	result, err := svc.Update(ctx, attendance.UpdateAttendanceRequest{
		ID:          rec.ID,
		AdminID:     "admin-1",
		Status:      &status,
		Notes:       &notes,
		CheckInTime: &checkIn,
	})
	require.NoError(t, err)

	assert.Equal(t, string(attendance.StatusPresent), result.Status)
	require.NotNil(t, result.CheckInTime)
	require.NotNil(t, result.UpdatedBy)
	assert.Equal(t, "admin-1", *result.UpdatedBy)
}

func TestAttendanceService_Update_InvalidStatus(t *testing.T) {
	svc, attRepo, _, loc := newTestService(t)

	rec := todayRecord(t, attRepo, loc, "intern-1")
	status := "Bolos"

	_, err := svc.Update(context.Background(), attendance.UpdateAttendanceRequest{
		ID:      rec.ID,
		AdminID: "admin-1",
		Status:  &status,
	})

	var validationErrs validator.ValidationErrors
	assert.ErrorAs(t, err, &validationErrs)
}

func TestAttendanceService_DeleteForUser_Cascades(t *testing.T) {
	svc, attRepo, _, loc := newTestService(t)
	ctx := context.Background()

	for day := 6; day <= 8; day++ {
		attRepo.seed(attendance.Attendance{
			UserID: "intern-1",
			Date:   time.Date(2025, 10, day, 0, 0, 0, 0, loc),
			Status: attendance.StatusNotPresent,
		})
	}
	other := attRepo.seed(attendance.Attendance{
		UserID: "intern-2",
		Date:   time.Date(2025, 10, 6, 0, 0, 0, 0, loc),
		Status: attendance.StatusNotPresent,
	})

	deleted, err := svc.DeleteForUser(ctx, "intern-1")
	require.NoError(t, err)
	assert.Equal(t, 3, deleted)

	_, err = attRepo.GetByID(ctx, other.ID)
	assert.NoError(t, err)
}
