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

const stationColumns = `
	id,
	station_name,
	role,
	parent_station_id,
	COALESCE(parent_station_name, ''),
	COALESCE(contact, ''),
	email,
	latitude,
	longitude,
	status,
	password_hash,
	email_verified,
	created_at,
	updated_at
`

type StationRepository struct {
	db *pgxpool.Pool
}

func NewStationRepository(db *pgxpool.Pool) service.StationRepository {
	return &StationRepository{db: db}
}

// Create создает новую запись о станции в бд
func (r *StationRepository) Create(ctx context.Context, station *models.FireStation) error {
	query := `
		INSERT INTO fire_stations (station_name, role, parent_station_id, parent_station_name, contact, email, latitude, longitude, status, password_hash, email_verified)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		station.StationName,
		station.Role,
		station.ParentStationID,
		station.ParentStationName,
		station.Contact,
		station.Email,
		station.Latitude,
		station.Longitude,
		station.Status,
		station.PasswordHash,
		station.EmailVerified,
	).Scan(&station.ID, &station.CreatedAt, &station.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create station: %w", err)
	}
	return nil
}

// GetByID возвращает станцию по ее UUID
func (r *StationRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.FireStation, error) {
	query := `SELECT ` + stationColumns + ` FROM fire_stations WHERE id = $1;`

	station, err := scanStation(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("station with id %s not found", id)
		}
		return nil, fmt.Errorf("failed to get station by id: %w", err)
	}
	return station, nil
}

// GetByEmail возвращает станцию по email или (nil, nil) при отсутствии
func (r *StationRepository) GetByEmail(ctx context.Context, email string) (*models.FireStation, error) {
	query := `SELECT ` + stationColumns + ` FROM fire_stations WHERE email = $1;`

	station, err := scanStation(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get station by email: %w", err)
	}
	return station, nil
}

// Update обновляет существующую станцию
func (r *StationRepository) Update(ctx context.Context, station *models.FireStation) error {
	query := `
		UPDATE fire_stations SET
			station_name = $1,
			role = $2,
			parent_station_id = $3,
			parent_station_name = $4,
			contact = $5,
			latitude = $6,
			longitude = $7,
			status = $8,
			updated_at = NOW()
		WHERE id = $9;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		station.StationName,
		station.Role,
		station.ParentStationID,
		station.ParentStationName,
		station.Contact,
		station.Latitude,
		station.Longitude,
		station.Status,
		station.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update station: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("station with id %s not found for update", station.ID)
	}
	return nil
}

// Delete удаляет станцию
func (r *StationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM fire_stations WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete station: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("station with id %s not found for delete", id)
	}
	return nil
}

// List возвращает все станции, новые первыми
func (r *StationRepository) List(ctx context.Context) ([]*models.FireStation, error) {
	query := `SELECT ` + stationColumns + ` FROM fire_stations ORDER BY created_at DESC;`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list stations: %w", err)
	}
	defer rows.Close()

	return collectStations(rows)
}

// ListByRole возвращает станции с данной ролью
func (r *StationRepository) ListByRole(ctx context.Context, role string) ([]*models.FireStation, error) {
	query := `SELECT ` + stationColumns + ` FROM fire_stations WHERE role = $1 ORDER BY created_at DESC;`

	rows, err := r.db.Query(ctx, query, role)
	if err != nil {
		return nil, fmt.Errorf("failed to list stations by role: %w", err)
	}
	defer rows.Close()

	return collectStations(rows)
}

// ListByParent возвращает подстанции центральной станции
func (r *StationRepository) ListByParent(ctx context.Context, parentID uuid.UUID) ([]*models.FireStation, error) {
	query := `SELECT ` + stationColumns + ` FROM fire_stations WHERE parent_station_id = $1 ORDER BY created_at DESC;`

	rows, err := r.db.Query(ctx, query, parentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list substations: %w", err)
	}
	defer rows.Close()

	return collectStations(rows)
}

// SetPassword устанавливает новый хэш пароля по email
func (r *StationRepository) SetPassword(ctx context.Context, email, passwordHash string) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE fire_stations SET password_hash = $1, updated_at = NOW() WHERE email = $2;`,
		passwordHash, email,
	)
	if err != nil {
		return fmt.Errorf("failed to set station password: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("station with email %s not found for password reset", email)
	}
	return nil
}

func scanStation(row pgx.Row) (*models.FireStation, error) {
	station := &models.FireStation{}
	err := row.Scan(
		&station.ID,
		&station.StationName,
		&station.Role,
		&station.ParentStationID,
		&station.ParentStationName,
		&station.Contact,
		&station.Email,
		&station.Latitude,
		&station.Longitude,
		&station.Status,
		&station.PasswordHash,
		&station.EmailVerified,
		&station.CreatedAt,
		&station.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return station, nil
}

func collectStations(rows pgx.Rows) ([]*models.FireStation, error) {
	stations := make([]*models.FireStation, 0)
	for rows.Next() {
		station, err := scanStation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan station row: %w", err)
		}
		stations = append(stations, station)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error station list iteration: %w", err)
	}
	return stations, nil
}
