package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/PiolaEvania/PKL-EAbsensi-Backend/internal/domain/announcement"
	"github.com/PiolaEvania/PKL-EAbsensi-Backend/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type announcementRepository struct {
	db *database.DB
}

func NewAnnouncementRepository(db *database.DB) announcement.AnnouncementRepository {
	return &announcementRepository{db: db}
}

const announcementColumns = `id, content, start_date, end_date, created_by, created_at, updated_at`

func scanAnnouncement(row pgx.Row) (announcement.Announcement, error) {
	var a announcement.Announcement
	err := row.Scan(
		&a.ID, &a.Content, &a.StartDate, &a.EndDate, &a.CreatedBy,
		&a.CreatedAt, &a.UpdatedAt,
	)
	return a, err
}

// Create implements announcement.AnnouncementRepository.
func (r *announcementRepository) Create(ctx context.Context, a announcement.Announcement) (announcement.Announcement, error) {
	q := GetQuerier(ctx, r.db)

	a.ID = uuid.New().String()

	query := `
		INSERT INTO announcements (id, content, start_date, end_date, created_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query, a.ID, a.Content, a.StartDate, a.EndDate, a.CreatedBy).
		Scan(&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return announcement.Announcement{}, fmt.Errorf("failed to create announcement: %w", err)
	}

	return a, nil
}

// GetByID implements announcement.AnnouncementRepository.
func (r *announcementRepository) GetByID(ctx context.Context, id string) (announcement.Announcement, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + announcementColumns + ` FROM announcements WHERE id = $1`

	a, err := scanAnnouncement(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return announcement.Announcement{}, announcement.ErrAnnouncementNotFound
		}
		return announcement.Announcement{}, fmt.Errorf("failed to get announcement by ID: %w", err)
	}

	return a, nil
}

// ListActive implements announcement.AnnouncementRepository.
func (r *announcementRepository) ListActive(ctx context.Context, now time.Time) ([]announcement.Announcement, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + announcementColumns + ` FROM announcements
		WHERE start_date <= $1 AND end_date >= $1
		ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query, now)
	if err != nil {
		return nil, fmt.Errorf("failed to list active announcements: %w", err)
	}
	defer rows.Close()

	var announcements []announcement.Announcement
	for rows.Next() {
		a, err := scanAnnouncement(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan announcement row: %w", err)
		}
		announcements = append(announcements, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate announcement rows: %w", err)
	}

	return announcements, nil
}

// Update implements announcement.AnnouncementRepository.
func (r *announcementRepository) Update(ctx context.Context, a announcement.Announcement) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE announcements
		SET content = $2, start_date = $3, end_date = $4, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, a.ID, a.Content, a.StartDate, a.EndDate)
	if err != nil {
		return fmt.Errorf("failed to update announcement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return announcement.ErrAnnouncementNotFound
	}

	return nil
}

// Delete implements announcement.AnnouncementRepository.
func (r *announcementRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM announcements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete announcement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return announcement.ErrAnnouncementNotFound
	}

	return nil
}
