package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/fire_incident_console/internal/models"
	"github.com/shenikar/fire_incident_console/internal/service"
)

const responderColumns = `
	id,
	responder_name,
	email,
	COALESCE(contact, ''),
	role,
	station_id,
	station_name,
	status,
	password_hash,
	created_at,
	updated_at
`

type ResponderRepository struct {
	db *pgxpool.Pool
}

func NewResponderRepository(db *pgxpool.Pool) service.ResponderRepository {
	return &ResponderRepository{db: db}
}

// Create создает новую запись о сотруднике в бд
func (r *ResponderRepository) Create(ctx context.Context, responder *models.Responder) error {
	query := `
		INSERT INTO responders (responder_name, email, contact, role, station_id, station_name, status, password_hash)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		responder.ResponderName,
		responder.Email,
		responder.Contact,
		responder.Role,
		responder.StationID,
		responder.StationName,
		responder.Status,
		responder.PasswordHash,
	).Scan(&responder.ID, &responder.CreatedAt, &responder.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create responder: %w", err)
	}
	return nil
}

// GetByID возвращает сотрудника по его UUID
func (r *ResponderRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Responder, error) {
	query := `SELECT ` + responderColumns + ` FROM responders WHERE id = $1;`

	responder, err := scanResponder(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("responder with id %s not found", id)
		}
		return nil, fmt.Errorf("failed to get responder by id: %w", err)
	}
	return responder, nil
}

// Update обновляет существующего сотрудника
func (r *ResponderRepository) Update(ctx context.Context, responder *models.Responder) error {
	query := `
		UPDATE responders SET
			responder_name = $1,
			email = $2,
			contact = $3,
			role = $4,
			station_id = $5,
			station_name = $6,
			status = $7,
			updated_at = NOW()
		WHERE id = $8;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		responder.ResponderName,
		responder.Email,
		responder.Contact,
		responder.Role,
		responder.StationID,
		responder.StationName,
		responder.Status,
		responder.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update responder: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("responder with id %s not found for update", responder.ID)
	}
	return nil
}

// Delete удаляет сотрудника
func (r *ResponderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM responders WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete responder: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("responder with id %s not found for delete", id)
	}
	return nil
}

// List возвращает всех сотрудников, новые первыми
func (r *ResponderRepository) List(ctx context.Context) ([]*models.Responder, error) {
	query := `SELECT ` + responderColumns + ` FROM responders ORDER BY created_at DESC;`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list responders: %w", err)
	}
	defer rows.Close()

	return collectResponders(rows)
}

// ListByStationAndRole возвращает сотрудников станции с данной ролью
func (r *ResponderRepository) ListByStationAndRole(ctx context.Context, stationID uuid.UUID, role string) ([]*models.Responder, error) {
	query := `SELECT ` + responderColumns + ` FROM responders WHERE station_id = $1 AND role = $2 ORDER BY created_at DESC;`

	rows, err := r.db.Query(ctx, query, stationID, role)
	if err != nil {
		return nil, fmt.Errorf("failed to list responders by station and role: %w", err)
	}
	defer rows.Close()

	return collectResponders(rows)
}

func scanResponder(row pgx.Row) (*models.Responder, error) {
	responder := &models.Responder{}
	err := row.Scan(
		&responder.ID,
		&responder.ResponderName,
		&responder.Email,
		&responder.Contact,
		&responder.Role,
		&responder.StationID,
		&responder.StationName,
		&responder.Status,
		&responder.PasswordHash,
		&responder.CreatedAt,
		&responder.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return responder, nil
}

func collectResponders(rows pgx.Rows) ([]*models.Responder, error) {
	responders := make([]*models.Responder, 0)
	for rows.Next() {
		responder, err := scanResponder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan responder row: %w", err)
		}
		responders = append(responders, responder)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error responder list iteration: %w", err)
	}
	return responders, nil
}
