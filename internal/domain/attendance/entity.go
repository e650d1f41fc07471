package attendance

import "time"

// Status is the closed set of attendance states. The wire values are the
// ones the mobile client and existing data already use.
type Status string

const (
	// StatusNotPresent is the initial state of every generated record.
	StatusNotPresent Status = "Tidak Hadir"
	// StatusPresent marks a successful geofenced check-in.
	StatusPresent Status = "Hadir"
	// StatusOutOfArea marks a check-in outside the fence or with a
	// mocked location.
	StatusOutOfArea Status = "Di Luar Area"
	// StatusLeaveRequested marks a pending leave justification.
	StatusLeaveRequested Status = "Izin"
	// StatusLeaveApproved marks an admin-approved leave.
	StatusLeaveApproved Status = "Izin Disetujui"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusNotPresent, StatusPresent, StatusOutOfArea, StatusLeaveRequested, StatusLeaveApproved:
		return true
	}
	return false
}

// Attendance is one scheduled day for one intern. At most one record
// exists per (UserID, Date); Date is a calendar date in the organization
// timezone.
type Attendance struct {
	ID     string
	UserID string
	Date   time.Time
	Status Status
	Notes  *string

	CheckInTime      *time.Time
	CheckInLatitude  *float64
	CheckInLongitude *float64
	IPAddress        *string
	DeviceID         *string
	MockedLocation   bool

	// UpdatedBy references the admin who last performed a privileged
	// mutation; nil if never administratively touched.
	UpdatedBy *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
