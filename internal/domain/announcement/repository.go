package announcement

import (
	"context"
	"time"
)

// AnnouncementRepository defines data access methods for announcements.
type AnnouncementRepository interface {
	Create(ctx context.Context, a Announcement) (Announcement, error)
	GetByID(ctx context.Context, id string) (Announcement, error)

	// ListActive retrieves announcements whose window contains now,
	// newest first
	ListActive(ctx context.Context, now time.Time) ([]Announcement, error)

	Update(ctx context.Context, a Announcement) error
	Delete(ctx context.Context, id string) error
}
