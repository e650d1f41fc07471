package announcement

import "time"

// Announcement is a time-bounded broadcast shown to interns while
// start_date <= now <= end_date.
type Announcement struct {
	ID        string
	Content   string
	StartDate time.Time
	EndDate   time.Time
	CreatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}
