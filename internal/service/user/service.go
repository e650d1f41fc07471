package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/PiolaEvania/PKL-EAbsensi-Backend/internal/domain/attendance"
	"github.com/PiolaEvania/PKL-EAbsensi-Backend/internal/domain/user"
	"golang.org/x/crypto/bcrypt"
)

type UserServiceImpl struct {
	user.UserRepository
	attendanceSvc attendance.AttendanceService
	loc           *time.Location
}

func NewUserService(
	userRepo user.UserRepository,
	attendanceSvc attendance.AttendanceService,
	loc *time.Location,
) user.UserService {
	return &UserServiceImpl{
		UserRepository: userRepo,
		attendanceSvc:  attendanceSvc,
		loc:            loc,
	}
}

// Create implements user.UserService.
func (s *UserServiceImpl) Create(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	taken, err := s.UserRepository.ExistsByUsernameOrEmail(ctx, req.Username, req.Email)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to check username/email availability: %w", err)
	}
	if taken {
		return user.UserResponse{}, user.ErrUsernameOrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	newUser := user.User{
		Name:            req.Name,
		Username:        strings.ToLower(req.Username),
		PasswordHash:    string(hash),
		Email:           strings.ToLower(req.Email),
		Phone:           req.Phone,
		Role:            user.Role(req.Role),
		InternshipStart: s.parseDate(req.InternshipStart),
		InternshipEnd:   s.parseDate(req.InternshipEnd),
	}

	created, err := s.UserRepository.Create(ctx, newUser)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to create user: %w", err)
	}

	// A complete window at creation time already has a schedule to generate.
	if created.HasInternshipWindow() {
		if _, err := s.attendanceSvc.ReconcileSchedule(ctx, created.ID); err != nil {
			slog.Error("Failed to generate schedule for new user", "user_id", created.ID, "error", err)
		}
	}

	return s.mapToResponse(created), nil
}

// Get implements user.UserService.
func (s *UserServiceImpl) Get(ctx context.Context, id string) (user.UserResponse, error) {
	u, err := s.UserRepository.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}
	return s.mapToResponse(u), nil
}

// List implements user.UserService.
func (s *UserServiceImpl) List(ctx context.Context, filter user.ListUsersFilter) ([]user.UserResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().In(s.loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.loc)

	users, err := s.UserRepository.List(ctx, filter, today)
	if err != nil {
		return nil, err
	}

	responses := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, s.mapToResponse(u))
	}
	return responses, nil
}

// Update implements user.UserService. Changing the internship window
// reconciles the schedule; a narrowed window is trimmed first.
func (s *UserServiceImpl) Update(ctx context.Context, req user.UpdateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	u, err := s.UserRepository.GetByID(ctx, req.ID)
	if err != nil {
		return user.UserResponse{}, err
	}

	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
		}
		u.PasswordHash = string(hash)
	}
	if req.Email != nil {
		u.Email = strings.ToLower(*req.Email)
	}
	if req.Phone != nil {
		u.Phone = req.Phone
	}

	oldStart, oldEnd := u.InternshipStart, u.InternshipEnd
	if req.InternshipStart != nil {
		u.InternshipStart = s.parseDate(req.InternshipStart)
	}
	if req.InternshipEnd != nil {
		u.InternshipEnd = s.parseDate(req.InternshipEnd)
	}

	windowChanged := !datePtrEqual(oldStart, u.InternshipStart) || !datePtrEqual(oldEnd, u.InternshipEnd)
	if windowChanged && u.HasInternshipWindow() {
		if err := user.ValidateInternshipWindow(*u.InternshipStart, *u.InternshipEnd); err != nil {
			return user.UserResponse{}, err
		}
	}

	if err := s.UserRepository.Update(ctx, u); err != nil {
		return user.UserResponse{}, err
	}

	if windowChanged && u.HasInternshipWindow() {
		if shrunk(oldStart, oldEnd, *u.InternshipStart, *u.InternshipEnd) {
			if _, err := s.attendanceSvc.ShrinkWindow(ctx, u.ID, *u.InternshipStart, *u.InternshipEnd); err != nil {
				return user.UserResponse{}, fmt.Errorf("failed to trim schedule to new window: %w", err)
			}
		}
		if _, err := s.attendanceSvc.ReconcileSchedule(ctx, u.ID); err != nil {
			return user.UserResponse{}, fmt.Errorf("failed to reconcile schedule for new window: %w", err)
		}
	}

	return s.mapToResponse(u), nil
}

// Delete implements user.UserService. Attendance records cascade first so
// a half-failed delete never orphans the schedule.
func (s *UserServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.UserRepository.GetByID(ctx, id); err != nil {
		return err
	}

	deleted, err := s.attendanceSvc.DeleteForUser(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to cascade attendance records: %w", err)
	}
	if deleted > 0 {
		slog.Info("Cascaded attendance records on user deletion", "user_id", id, "count", deleted)
	}

	return s.UserRepository.Delete(ctx, id)
}

func (s *UserServiceImpl) parseDate(str *string) *time.Time {
	if str == nil {
		return nil
	}
	// Format already checked by the request validators.
	parsed, err := time.ParseInLocation("2006-01-02", *str, s.loc)
	if err != nil {
		return nil
	}
	return &parsed
}

func datePtrEqual(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Format("2006-01-02") == b.Format("2006-01-02")
}

// shrunk reports whether the new window lost days on either edge.
func shrunk(oldStart, oldEnd *time.Time, newStart, newEnd time.Time) bool {
	if oldStart != nil && newStart.After(*oldStart) {
		return true
	}
	if oldEnd != nil && newEnd.Before(*oldEnd) {
		return true
	}
	return false
}

func (s *UserServiceImpl) mapToResponse(u user.User) user.UserResponse {
	return user.UserResponse{
		ID:              u.ID,
		Name:            u.Name,
		Username:        u.Username,
		Email:           u.Email,
		Phone:           u.Phone,
		Role:            string(u.Role),
		InternshipStart: datePtrToString(u.InternshipStart),
		InternshipEnd:   datePtrToString(u.InternshipEnd),
		CreatedAt:       u.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       u.UpdatedAt.Format(time.RFC3339),
	}
}

func datePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("2006-01-02")
	return &format
}
