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

const unitColumns = `
	id,
	unit_name,
	email,
	station_id,
	station_name,
	latitude,
	longitude,
	status,
	password_hash,
	created_at,
	updated_at
`

type UnitRepository struct {
	db *pgxpool.Pool
}

func NewUnitRepository(db *pgxpool.Pool) service.UnitRepository {
	return &UnitRepository{db: db}
}

// Create создает новую запись о подразделении в бд
func (r *UnitRepository) Create(ctx context.Context, unit *models.Unit) error {
	query := `
		INSERT INTO units (unit_name, email, station_id, station_name, latitude, longitude, status, password_hash)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		unit.UnitName,
		unit.Email,
		unit.StationID,
		unit.StationName,
		unit.Latitude,
		unit.Longitude,
		unit.Status,
		unit.PasswordHash,
	).Scan(&unit.ID, &unit.CreatedAt, &unit.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create unit: %w", err)
	}
	return nil
}

// GetByID возвращает подразделение по его UUID
func (r *UnitRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Unit, error) {
	query := `SELECT ` + unitColumns + ` FROM units WHERE id = $1;`

	unit, err := scanUnit(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("unit with id %s not found", id)
		}
		return nil, fmt.Errorf("failed to get unit by id: %w", err)
	}
	return unit, nil
}

// Update обновляет существующее подразделение
func (r *UnitRepository) Update(ctx context.Context, unit *models.Unit) error {
	query := `
		UPDATE units SET
			unit_name = $1,
			email = $2,
			station_id = $3,
			station_name = $4,
			latitude = $5,
			longitude = $6,
			status = $7,
			updated_at = NOW()
		WHERE id = $8;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		unit.UnitName,
		unit.Email,
		unit.StationID,
		unit.StationName,
		unit.Latitude,
		unit.Longitude,
		unit.Status,
		unit.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update unit: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("unit with id %s not found for update", unit.ID)
	}
	return nil
}

// Delete удаляет подразделение
func (r *UnitRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM units WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete unit: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("unit with id %s not found for delete", id)
	}
	return nil
}

// List возвращает все подразделения, новые первыми
func (r *UnitRepository) List(ctx context.Context) ([]*models.Unit, error) {
	query := `SELECT ` + unitColumns + ` FROM units ORDER BY created_at DESC;`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list units: %w", err)
	}
	defer rows.Close()

	return collectUnits(rows)
}

// ListByStation возвращает подразделения станции
func (r *UnitRepository) ListByStation(ctx context.Context, stationID uuid.UUID) ([]*models.Unit, error) {
	query := `SELECT ` + unitColumns + ` FROM units WHERE station_id = $1 ORDER BY created_at DESC;`

	rows, err := r.db.Query(ctx, query, stationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list units by station: %w", err)
	}
	defer rows.Close()

	return collectUnits(rows)
}

func scanUnit(row pgx.Row) (*models.Unit, error) {
	unit := &models.Unit{}
	err := row.Scan(
		&unit.ID,
		&unit.UnitName,
		&unit.Email,
		&unit.StationID,
		&unit.StationName,
		&unit.Latitude,
		&unit.Longitude,
		&unit.Status,
		&unit.PasswordHash,
		&unit.CreatedAt,
		&unit.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return unit, nil
}

func collectUnits(rows pgx.Rows) ([]*models.Unit, error) {
	units := make([]*models.Unit, 0)
	for rows.Next() {
		unit, err := scanUnit(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan unit row: %w", err)
		}
		units = append(units, unit)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error unit list iteration: %w", err)
	}
	return units, nil
}
