package announcement

import (
	"context"
	"time"

	"github.com/PiolaEvania/PKL-EAbsensi-Backend/internal/domain/announcement"
)

type AnnouncementServiceImpl struct {
	announcement.AnnouncementRepository
	loc *time.Location
}

func NewAnnouncementService(repo announcement.AnnouncementRepository, loc *time.Location) announcement.AnnouncementService {
	return &AnnouncementServiceImpl{
		AnnouncementRepository: repo,
		loc:                    loc,
	}
}

// Create implements announcement.AnnouncementService.
func (s *AnnouncementServiceImpl) Create(ctx context.Context, req announcement.CreateAnnouncementRequest) (announcement.AnnouncementResponse, error) {
	if err := req.Validate(); err != nil {
		return announcement.AnnouncementResponse{}, err
	}

	start, _ := time.ParseInLocation("2006-01-02", req.StartDate, s.loc)
	end, _ := time.ParseInLocation("2006-01-02", req.EndDate, s.loc)
	// The window is inclusive of the whole end day.
	end = end.AddDate(0, 0, 1).Add(-time.Second)

	created, err := s.AnnouncementRepository.Create(ctx, announcement.Announcement{
		Content:   req.Content,
		StartDate: start,
		EndDate:   end,
		CreatedBy: req.CreatedBy,
	})
	if err != nil {
		return announcement.AnnouncementResponse{}, err
	}

	return s.mapToResponse(created), nil
}

// ListActive implements announcement.AnnouncementService.
func (s *AnnouncementServiceImpl) ListActive(ctx context.Context) ([]announcement.AnnouncementResponse, error) {
	announcements, err := s.AnnouncementRepository.ListActive(ctx, time.Now().In(s.loc))
	if err != nil {
		return nil, err
	}

	responses := make([]announcement.AnnouncementResponse, 0, len(announcements))
	for _, a := range announcements {
		responses = append(responses, s.mapToResponse(a))
	}
	return responses, nil
}

// Update implements announcement.AnnouncementService.
func (s *AnnouncementServiceImpl) Update(ctx context.Context, req announcement.UpdateAnnouncementRequest) (announcement.AnnouncementResponse, error) {
	if err := req.Validate(); err != nil {
		return announcement.AnnouncementResponse{}, err
	}

	a, err := s.AnnouncementRepository.GetByID(ctx, req.ID)
	if err != nil {
		return announcement.AnnouncementResponse{}, err
	}

	if req.Content != nil {
		a.Content = *req.Content
	}
	if req.StartDate != nil {
		start, _ := time.ParseInLocation("2006-01-02", *req.StartDate, s.loc)
		a.StartDate = start
	}
	if req.EndDate != nil {
		end, _ := time.ParseInLocation("2006-01-02", *req.EndDate, s.loc)
		a.EndDate = end.AddDate(0, 0, 1).Add(-time.Second)
	}

	if err := s.AnnouncementRepository.Update(ctx, a); err != nil {
		return announcement.AnnouncementResponse{}, err
	}

	return s.mapToResponse(a), nil
}

// Delete implements announcement.AnnouncementService.
func (s *AnnouncementServiceImpl) Delete(ctx context.Context, id string) error {
	return s.AnnouncementRepository.Delete(ctx, id)
}

func (s *AnnouncementServiceImpl) mapToResponse(a announcement.Announcement) announcement.AnnouncementResponse {
	return announcement.AnnouncementResponse{
		ID:        a.ID,
		Content:   a.Content,
		StartDate: a.StartDate.In(s.loc).Format("2006-01-02"),
		EndDate:   a.EndDate.In(s.loc).Format("2006-01-02"),
		CreatedBy: a.CreatedBy,
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
		UpdatedAt: a.UpdatedAt.Format(time.RFC3339),
	}
}
