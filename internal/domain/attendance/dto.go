package attendance

import (
	"github.com/PiolaEvania/PKL-EAbsensi-Backend/internal/pkg/validator"
)

// CheckInRequest carries one self-service check-in attempt. CallerID and
// IPAddress are filled from the authenticated request, not the body.
type CheckInRequest struct {
	RecordID       string  `json:"-"`
	CallerID       string  `json:"-"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	MockedLocation bool    `json:"mocked_location"`
	DeviceID       *string `json:"device_id,omitempty"`
	IPAddress      string  `json:"-"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RecordID) {
		errs = append(errs, validator.ValidationError{
			Field:   "record_id",
			Message: "record_id is required",
		})
	}

	if !validator.IsValidLatitude(r.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if !validator.IsValidLongitude(r.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// RequestLeaveRequest carries a leave justification for one scheduled day.
type RequestLeaveRequest struct {
	RecordID string `json:"-"`
	CallerID string `json:"-"`
	Notes    string `json:"notes"`
}

func (r *RequestLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Notes) {
		errs = append(errs, validator.ValidationError{
			Field:   "notes",
			Message: "a leave justification is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateAttendanceRequest is the admin override: any field may be forced,
// bypassing the state-machine guards.
type UpdateAttendanceRequest struct {
	ID      string `json:"-"`
	AdminID string `json:"-"`

	Status           *string  `json:"status,omitempty"`
	Notes            *string  `json:"notes,omitempty"`
	CheckInTime      *string  `json:"check_in_time,omitempty"` // RFC3339
	CheckInLatitude  *float64 `json:"check_in_latitude,omitempty"`
	CheckInLongitude *float64 `json:"check_in_longitude,omitempty"`
}

func (r *UpdateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Status != nil && !Status(*r.Status).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: Tidak Hadir, Hadir, Di Luar Area, Izin, Izin Disetujui",
		})
	}

	if r.CheckInLatitude != nil && !validator.IsValidLatitude(*r.CheckInLatitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "check_in_latitude",
			Message: "check_in_latitude must be between -90 and 90",
		})
	}

	if r.CheckInLongitude != nil && !validator.IsValidLongitude(*r.CheckInLongitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "check_in_longitude",
			Message: "check_in_longitude must be between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// AttendanceResponse is the serialized record handed to the HTTP layer.
type AttendanceResponse struct {
	ID               string   `json:"id"`
	UserID           string   `json:"user_id"`
	Date             string   `json:"date"`
	Status           string   `json:"status"`
	Notes            *string  `json:"notes,omitempty"`
	CheckInTime      *string  `json:"check_in_time,omitempty"`
	CheckInLatitude  *float64 `json:"check_in_latitude,omitempty"`
	CheckInLongitude *float64 `json:"check_in_longitude,omitempty"`
	IPAddress        *string  `json:"ip_address,omitempty"`
	DeviceID         *string  `json:"device_id,omitempty"`
	MockedLocation   bool     `json:"mocked_location"`
	UpdatedBy        *string  `json:"updated_by,omitempty"`
	CreatedAt        string   `json:"created_at"`
	UpdatedAt        string   `json:"updated_at"`
}

// ReconcileResult reports the outcome of a schedule reconciliation. A
// zero Created with NoOp true is distinguishable from a run that
// inserted records.
type ReconcileResult struct {
	Created  int  `json:"created"`
	Expected int  `json:"expected"`
	NoOp     bool `json:"no_op"`
}
