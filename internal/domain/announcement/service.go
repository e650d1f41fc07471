package announcement

import "context"

// AnnouncementService defines business logic for announcements.
type AnnouncementService interface {
	Create(ctx context.Context, req CreateAnnouncementRequest) (AnnouncementResponse, error)
	ListActive(ctx context.Context) ([]AnnouncementResponse, error)
	Update(ctx context.Context, req UpdateAnnouncementRequest) (AnnouncementResponse, error)
	Delete(ctx context.Context, id string) error
}
