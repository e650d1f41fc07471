package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/PiolaEvania/PKL-EAbsensi-Backend/internal/domain/user"
	"github.com/PiolaEvania/PKL-EAbsensi-Backend/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type userRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, name, username, password_hash, email, phone, role,
	internship_start, internship_end, created_at, updated_at`

func scanUser(row pgx.Row) (user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID, &u.Name, &u.Username, &u.PasswordHash, &u.Email, &u.Phone, &u.Role,
		&u.InternshipStart, &u.InternshipEnd, &u.CreatedAt, &u.UpdatedAt,
	)
	return u, err
}

// Create implements user.UserRepository.
func (r *userRepository) Create(ctx context.Context, newUser user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	newUser.ID = uuid.New().String()

	query := `
		INSERT INTO users (
			id, name, username, password_hash, email, phone, role,
			internship_start, internship_end
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newUser.ID,
		newUser.Name,
		newUser.Username,
		newUser.PasswordHash,
		newUser.Email,
		newUser.Phone,
		newUser.Role,
		newUser.InternshipStart,
		newUser.InternshipEnd,
	).Scan(&newUser.CreatedAt, &newUser.UpdatedAt)

	if err != nil {
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return newUser, nil
}

// GetByID implements user.UserRepository.
func (r *userRepository) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	u, err := scanUser(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by ID: %w", err)
	}

	return u, nil
}

// GetByUsername implements user.UserRepository.
func (r *userRepository) GetByUsername(ctx context.Context, username string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE username = lower($1)`

	u, err := scanUser(q.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	return u, nil
}

// ExistsByUsernameOrEmail implements user.UserRepository.
func (r *userRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT EXISTS (
		SELECT 1 FROM users WHERE username = lower($1) OR email = lower($2)
	)`

	var exists bool
	if err := q.QueryRow(ctx, query, username, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check username/email existence: %w", err)
	}

	return exists, nil
}

// List implements user.UserRepository.
func (r *userRepository) List(ctx context.Context, filter user.ListUsersFilter, today time.Time) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	// "finished" means the internship end date has passed; "active" means
	// it is today, in the future, or unset.
	var query string
	if filter.Status == "finished" {
		query = `SELECT ` + userColumns + ` FROM users
			WHERE role = 'user' AND internship_end < $1
			ORDER BY name ASC`
	} else {
		query = `SELECT ` + userColumns + ` FROM users
			WHERE role = 'user' AND (internship_end >= $1 OR internship_end IS NULL)
			ORDER BY name ASC`
	}

	rows, err := q.Query(ctx, query, today)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate user rows: %w", err)
	}

	return users, nil
}

// Update implements user.UserRepository.
func (r *userRepository) Update(ctx context.Context, u user.User) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET name = $2, password_hash = $3, email = $4, phone = $5,
			internship_start = $6, internship_end = $7, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		u.ID, u.Name, u.PasswordHash, u.Email, u.Phone,
		u.InternshipStart, u.InternshipEnd,
	)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	return nil
}

// Delete implements user.UserRepository.
func (r *userRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	return nil
}
