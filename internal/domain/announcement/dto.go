package announcement

import (
	"time"

	"github.com/PiolaEvania/PKL-EAbsensi-Backend/internal/pkg/validator"
)

type CreateAnnouncementRequest struct {
	Content   string `json:"content"`
	StartDate string `json:"start_date"` // YYYY-MM-DD
	EndDate   string `json:"end_date"`   // YYYY-MM-DD
	CreatedBy string `json:"-"`
}

func (r *CreateAnnouncementRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Content) {
		errs = append(errs, validator.ValidationError{
			Field:   "content",
			Message: "content is required",
		})
	}

	var start, end time.Time
	var okStart, okEnd bool
	if start, okStart = validator.IsValidDate(r.StartDate); !okStart {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}
	if end, okEnd = validator.IsValidDate(r.EndDate); !okEnd {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}
	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateAnnouncementRequest struct {
	ID        string  `json:"-"`
	Content   *string `json:"content,omitempty"`
	StartDate *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate   *string `json:"end_date,omitempty"`   // YYYY-MM-DD
}

func (r *UpdateAnnouncementRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Content != nil && validator.IsEmpty(*r.Content) {
		errs = append(errs, validator.ValidationError{
			Field:   "content",
			Message: "content must not be empty",
		})
	}
	if r.StartDate != nil {
		if _, ok := validator.IsValidDate(*r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}
	if r.EndDate != nil {
		if _, ok := validator.IsValidDate(*r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AnnouncementResponse struct {
	ID        string `json:"id"`
	Content   string `json:"content"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	CreatedBy string `json:"created_by"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}
