package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/fire_incident_console/internal/models"
	"github.com/shenikar/fire_incident_console/internal/service"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) service.UserRepository {
	return &UserRepository{db: db}
}

// GetProfile возвращает профиль пользователя приложения или (nil, nil),
// если документ отсутствует. Подписчик ленты подставляет заглушку сам.
func (r *UserRepository) GetProfile(ctx context.Context, userDocID string) (*models.UserProfile, error) {
	query := `
		SELECT
			COALESCE(name, 'Unknown User'),
			profile,
			COALESCE(is_active, FALSE),
			COALESCE(last_seen, 0)
		FROM users
		WHERE id = $1;
	`
	profile := &models.UserProfile{}
	err := r.db.QueryRow(ctx, query, userDocID).Scan(
		&profile.Name,
		&profile.Profile,
		&profile.IsActive,
		&profile.LastSeen,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user profile: %w", err)
	}
	return profile, nil
}

// GetAdminByEmail возвращает администратора по email или (nil, nil)
func (r *UserRepository) GetAdminByEmail(ctx context.Context, email string) (*models.Admin, error) {
	query := `
		SELECT id, email, password_hash, email_verified, created_at
		FROM admins
		WHERE email = $1;
	`
	admin := &models.Admin{}
	err := r.db.QueryRow(ctx, query, email).Scan(
		&admin.ID,
		&admin.Email,
		&admin.PasswordHash,
		&admin.EmailVerified,
		&admin.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get admin by email: %w", err)
	}
	return admin, nil
}

// SetAdminPassword устанавливает новый хэш пароля администратора
func (r *UserRepository) SetAdminPassword(ctx context.Context, email, passwordHash string) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE admins SET password_hash = $1 WHERE email = $2;`,
		passwordHash, email,
	)
	if err != nil {
		return fmt.Errorf("failed to set admin password: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("admin with email %s not found for password reset", email)
	}
	return nil
}

// List возвращает пользователей приложения, новые первыми
func (r *UserRepository) List(ctx context.Context) ([]*models.AppUser, error) {
	query := `
		SELECT id, COALESCE(name, ''), COALESCE(email, ''), COALESCE(contact, ''), profile, is_active, last_seen, created_at
		FROM users
		ORDER BY created_at DESC;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := make([]*models.AppUser, 0)
	for rows.Next() {
		user := &models.AppUser{}
		err := rows.Scan(
			&user.ID,
			&user.Name,
			&user.Email,
			&user.Contact,
			&user.Profile,
			&user.IsActive,
			&user.LastSeen,
			&user.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error user list iteration: %w", err)
	}
	return users, nil
}

// Update обновляет пользователя приложения
func (r *UserRepository) Update(ctx context.Context, user *models.AppUser) error {
	query := `
		UPDATE users SET
			name = $1,
			email = $2,
			contact = $3,
			profile = $4,
			is_active = $5
		WHERE id = $6;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		user.Name,
		user.Email,
		user.Contact,
		user.Profile,
		user.IsActive,
		user.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user with id %s not found for update", user.ID)
	}
	return nil
}

// Delete удаляет пользователя приложения
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user with id %s not found for delete", id)
	}
	return nil
}

// CountActiveSince возвращает количество пользователей, активных в окне
func (r *UserRepository) CountActiveSince(ctx context.Context, minutes int) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM users
		WHERE is_active = TRUE
			AND to_timestamp(last_seen / 1000.0) >= NOW() - ($1 * INTERVAL '1 minute');
	`
	var count int
	err := r.db.QueryRow(ctx, query, minutes).Scan(&count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to count active users: %w", err)
	}
	return count, nil
}
