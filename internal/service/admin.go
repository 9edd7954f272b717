package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/fire_incident_console/internal/models"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// AdminService определяет контракт административного управления
// станциями, подразделениями, сотрудниками, пользователями и
// развертываниями
type AdminService interface {
	CreateStation(ctx context.Context, station *models.FireStation, password string) error
	UpdateStation(ctx context.Context, station *models.FireStation) error
	DeleteStation(ctx context.Context, id uuid.UUID) error
	ListStations(ctx context.Context) ([]*models.FireStation, error)
	ListCentralStations(ctx context.Context) ([]*models.FireStation, error)
	ListSubStations(ctx context.Context, parentID uuid.UUID) ([]*models.FireStation, error)

	CreateUnit(ctx context.Context, unit *models.Unit, password string) error
	UpdateUnit(ctx context.Context, unit *models.Unit) error
	DeleteUnit(ctx context.Context, id uuid.UUID) error
	ListUnits(ctx context.Context) ([]*models.Unit, error)
	ListUnitsByStation(ctx context.Context, stationID uuid.UUID) ([]*models.Unit, error)

	CreateResponder(ctx context.Context, responder *models.Responder, password string) error
	UpdateResponder(ctx context.Context, responder *models.Responder) error
	DeleteResponder(ctx context.Context, id uuid.UUID) error
	ListResponders(ctx context.Context) ([]*models.Responder, error)
	ListInvestigators(ctx context.Context, stationID uuid.UUID) ([]*models.Responder, error)

	ListUsers(ctx context.Context) ([]*models.AppUser, error)
	UpdateUser(ctx context.Context, user *models.AppUser) error
	DeleteUser(ctx context.Context, id string) error

	CreateDeployment(ctx context.Context, deployment *models.Deployment) error
	UpdateDeployment(ctx context.Context, deployment *models.Deployment) error
	ListDeployments(ctx context.Context) ([]*models.Deployment, error)
	AssignDeploymentUnit(ctx context.Context, assignment *models.DeploymentUnit) error
	ListDeploymentUnits(ctx context.Context, deploymentID string) ([]*models.DeploymentUnit, error)
}

type adminService struct {
	stations    StationRepository
	units       UnitRepository
	responders  ResponderRepository
	users       UserRepository
	deployments DeploymentRepository
	logger      *logrus.Logger
}

// NewAdminService создает административный сервис
func NewAdminService(stations StationRepository, units UnitRepository, responders ResponderRepository, users UserRepository, deployments DeploymentRepository, logger *logrus.Logger) AdminService {
	return &adminService{
		stations:    stations,
		units:       units,
		responders:  responders,
		users:       users,
		deployments: deployments,
		logger:      logger,
	}
}

// CreateStation создает станцию с хэшированным паролем. Имя родительской
// станции денормализуется из реестра по id.
func (s *adminService) CreateStation(ctx context.Context, station *models.FireStation, password string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "admin",
		"method":  "CreateStation",
		"name":    station.StationName,
	})
	log.Info("Attempting to create a new station")

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("service: could not hash password: %w", err)
	}
	station.PasswordHash = string(hash)
	if station.Status == "" {
		station.Status = "Active"
	}

	if station.ParentStationID != nil {
		parent, err := s.stations.GetByID(ctx, *station.ParentStationID)
		if err != nil {
			log.WithError(err).Warn("Parent station not found")
			return fmt.Errorf("service: parent station not found: %w", err)
		}
		station.ParentStationName = parent.StationName
	}

	if err := s.stations.Create(ctx, station); err != nil {
		log.WithError(err).Error("Failed to create station in repository")
		return fmt.Errorf("service: could not create station: %w", err)
	}

	log.WithField("station_id", station.ID).Info("Station created successfully")
	return nil
}

// UpdateStation обновляет существующую станцию
func (s *adminService) UpdateStation(ctx context.Context, station *models.FireStation) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "admin",
		"method":     "UpdateStation",
		"station_id": station.ID,
	})

	existing, err := s.stations.GetByID(ctx, station.ID)
	if err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent station")
		return fmt.Errorf("service: station with id %s not found for update: %w", station.ID, err)
	}

	existing.StationName = station.StationName
	existing.Role = station.Role
	existing.ParentStationID = station.ParentStationID
	existing.Contact = station.Contact
	existing.Latitude = station.Latitude
	existing.Longitude = station.Longitude
	existing.Status = station.Status

	if existing.ParentStationID != nil {
		parent, err := s.stations.GetByID(ctx, *existing.ParentStationID)
		if err != nil {
			return fmt.Errorf("service: parent station not found: %w", err)
		}
		existing.ParentStationName = parent.StationName
	} else {
		existing.ParentStationName = ""
	}

	if err := s.stations.Update(ctx, existing); err != nil {
		log.WithError(err).Error("Failed to update station in repository")
		return fmt.Errorf("service: could not update station: %w", err)
	}
	log.Info("Station updated successfully")
	return nil
}

// DeleteStation удаляет станцию
func (s *adminService) DeleteStation(ctx context.Context, id uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "admin",
		"method":     "DeleteStation",
		"station_id": id,
	})

	if err := s.stations.Delete(ctx, id); err != nil {
		log.WithError(err).Error("Failed to delete station in repository")
		return fmt.Errorf("service: could not delete station: %w", err)
	}
	log.Info("Station deleted successfully")
	return nil
}

// ListStations возвращает все станции, новые первыми
func (s *adminService) ListStations(ctx context.Context) ([]*models.FireStation, error) {
	stations, err := s.stations.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not list stations: %w", err)
	}
	return stations, nil
}

// ListCentralStations возвращает центральные станции для выпадающего списка
func (s *adminService) ListCentralStations(ctx context.Context) ([]*models.FireStation, error) {
	stations, err := s.stations.ListByRole(ctx, models.StationRoleCentral)
	if err != nil {
		return nil, fmt.Errorf("service: could not list central stations: %w", err)
	}
	return stations, nil
}

// ListSubStations возвращает подстанции центральной станции
func (s *adminService) ListSubStations(ctx context.Context, parentID uuid.UUID) ([]*models.FireStation, error) {
	stations, err := s.stations.ListByParent(ctx, parentID)
	if err != nil {
		return nil, fmt.Errorf("service: could not list substations: %w", err)
	}
	return stations, nil
}

// CreateUnit создает подразделение с денормализованным именем станции
func (s *adminService) CreateUnit(ctx context.Context, unit *models.Unit, password string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "admin",
		"method":  "CreateUnit",
		"name":    unit.UnitName,
	})
	log.Info("Attempting to create a new unit")

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("service: could not hash password: %w", err)
	}
	unit.PasswordHash = string(hash)
	if unit.Status == "" {
		unit.Status = "Active"
	}

	station, err := s.stations.GetByID(ctx, unit.StationID)
	if err != nil {
		log.WithError(err).Warn("Station not found for unit")
		return fmt.Errorf("service: station not found for unit: %w", err)
	}
	unit.StationName = station.StationName

	if err := s.units.Create(ctx, unit); err != nil {
		log.WithError(err).Error("Failed to create unit in repository")
		return fmt.Errorf("service: could not create unit: %w", err)
	}

	log.WithField("unit_id", unit.ID).Info("Unit created successfully")
	return nil
}

// UpdateUnit обновляет существующее подразделение
func (s *adminService) UpdateUnit(ctx context.Context, unit *models.Unit) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "admin",
		"method":  "UpdateUnit",
		"unit_id": unit.ID,
	})

	existing, err := s.units.GetByID(ctx, unit.ID)
	if err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent unit")
		return fmt.Errorf("service: unit with id %s not found for update: %w", unit.ID, err)
	}

	existing.UnitName = unit.UnitName
	existing.Email = unit.Email
	existing.Status = unit.Status
	existing.Latitude = unit.Latitude
	existing.Longitude = unit.Longitude

	if unit.StationID != existing.StationID {
		station, err := s.stations.GetByID(ctx, unit.StationID)
		if err != nil {
			return fmt.Errorf("service: station not found for unit: %w", err)
		}
		existing.StationID = station.ID
		existing.StationName = station.StationName
	}

	if err := s.units.Update(ctx, existing); err != nil {
		log.WithError(err).Error("Failed to update unit in repository")
		return fmt.Errorf("service: could not update unit: %w", err)
	}
	log.Info("Unit updated successfully")
	return nil
}

// DeleteUnit удаляет подразделение
func (s *adminService) DeleteUnit(ctx context.Context, id uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "admin",
		"method":  "DeleteUnit",
		"unit_id": id,
	})

	if err := s.units.Delete(ctx, id); err != nil {
		log.WithError(err).Error("Failed to delete unit in repository")
		return fmt.Errorf("service: could not delete unit: %w", err)
	}
	log.Info("Unit deleted successfully")
	return nil
}

// ListUnits возвращает все подразделения
func (s *adminService) ListUnits(ctx context.Context) ([]*models.Unit, error) {
	units, err := s.units.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not list units: %w", err)
	}
	return units, nil
}

// ListUnitsByStation возвращает подразделения станции
func (s *adminService) ListUnitsByStation(ctx context.Context, stationID uuid.UUID) ([]*models.Unit, error) {
	units, err := s.units.ListByStation(ctx, stationID)
	if err != nil {
		return nil, fmt.Errorf("service: could not list units by station: %w", err)
	}
	return units, nil
}

// CreateResponder создает сотрудника реагирования
func (s *adminService) CreateResponder(ctx context.Context, responder *models.Responder, password string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "admin",
		"method":  "CreateResponder",
		"name":    responder.ResponderName,
	})
	log.Info("Attempting to create a new responder")

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("service: could not hash password: %w", err)
	}
	responder.PasswordHash = string(hash)
	if responder.Status == "" {
		responder.Status = "Active"
	}

	station, err := s.stations.GetByID(ctx, responder.StationID)
	if err != nil {
		log.WithError(err).Warn("Station not found for responder")
		return fmt.Errorf("service: station not found for responder: %w", err)
	}
	responder.StationName = station.StationName

	if err := s.responders.Create(ctx, responder); err != nil {
		log.WithError(err).Error("Failed to create responder in repository")
		return fmt.Errorf("service: could not create responder: %w", err)
	}

	log.WithField("responder_id", responder.ID).Info("Responder created successfully")
	return nil
}

// UpdateResponder обновляет существующего сотрудника
func (s *adminService) UpdateResponder(ctx context.Context, responder *models.Responder) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "admin",
		"method":       "UpdateResponder",
		"responder_id": responder.ID,
	})

	existing, err := s.responders.GetByID(ctx, responder.ID)
	if err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent responder")
		return fmt.Errorf("service: responder with id %s not found for update: %w", responder.ID, err)
	}

	existing.ResponderName = responder.ResponderName
	existing.Email = responder.Email
	existing.Contact = responder.Contact
	existing.Role = responder.Role
	existing.Status = responder.Status

	if responder.StationID != existing.StationID {
		station, err := s.stations.GetByID(ctx, responder.StationID)
		if err != nil {
			return fmt.Errorf("service: station not found for responder: %w", err)
		}
		existing.StationID = station.ID
		existing.StationName = station.StationName
	}

	if err := s.responders.Update(ctx, existing); err != nil {
		log.WithError(err).Error("Failed to update responder in repository")
		return fmt.Errorf("service: could not update responder: %w", err)
	}
	log.Info("Responder updated successfully")
	return nil
}

// DeleteResponder удаляет сотрудника
func (s *adminService) DeleteResponder(ctx context.Context, id uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "admin",
		"method":       "DeleteResponder",
		"responder_id": id,
	})

	if err := s.responders.Delete(ctx, id); err != nil {
		log.WithError(err).Error("Failed to delete responder in repository")
		return fmt.Errorf("service: could not delete responder: %w", err)
	}
	log.Info("Responder deleted successfully")
	return nil
}

// ListResponders возвращает всех сотрудников
func (s *adminService) ListResponders(ctx context.Context) ([]*models.Responder, error) {
	responders, err := s.responders.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not list responders: %w", err)
	}
	return responders, nil
}

// ListInvestigators возвращает следователей станции
func (s *adminService) ListInvestigators(ctx context.Context, stationID uuid.UUID) ([]*models.Responder, error) {
	responders, err := s.responders.ListByStationAndRole(ctx, stationID, models.ResponderRoleInvestigator)
	if err != nil {
		return nil, fmt.Errorf("service: could not list investigators: %w", err)
	}
	return responders, nil
}

// ListUsers возвращает пользователей приложения
func (s *adminService) ListUsers(ctx context.Context) ([]*models.AppUser, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not list users: %w", err)
	}
	return users, nil
}

// UpdateUser обновляет пользователя приложения
func (s *adminService) UpdateUser(ctx context.Context, user *models.AppUser) error {
	if err := s.users.Update(ctx, user); err != nil {
		return fmt.Errorf("service: could not update user: %w", err)
	}
	return nil
}

// DeleteUser удаляет пользователя приложения
func (s *adminService) DeleteUser(ctx context.Context, id string) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return fmt.Errorf("service: could not delete user: %w", err)
	}
	return nil
}

// CreateDeployment создает развертывание
func (s *adminService) CreateDeployment(ctx context.Context, deployment *models.Deployment) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "admin",
		"method":  "CreateDeployment",
	})

	if deployment.ID == "" {
		deployment.ID = uuid.NewString()
	}
	if deployment.CreatedAt == 0 {
		deployment.CreatedAt = time.Now().UnixMilli()
	}

	if err := s.deployments.Create(ctx, deployment); err != nil {
		log.WithError(err).Error("Failed to create deployment in repository")
		return fmt.Errorf("service: could not create deployment: %w", err)
	}
	log.WithField("deployment_id", deployment.ID).Info("Deployment created successfully")
	return nil
}

// UpdateDeployment обновляет развертывание
func (s *adminService) UpdateDeployment(ctx context.Context, deployment *models.Deployment) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":       "admin",
		"method":        "UpdateDeployment",
		"deployment_id": deployment.ID,
	})

	existing, err := s.deployments.Get(ctx, deployment.ID)
	if err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent deployment")
		return fmt.Errorf("service: deployment with id %s not found for update: %w", deployment.ID, err)
	}
	deployment.CreatedAt = existing.CreatedAt

	if err := s.deployments.Update(ctx, deployment); err != nil {
		log.WithError(err).Error("Failed to update deployment in repository")
		return fmt.Errorf("service: could not update deployment: %w", err)
	}
	log.Info("Deployment updated successfully")
	return nil
}

// ListDeployments возвращает все развертывания
func (s *adminService) ListDeployments(ctx context.Context) ([]*models.Deployment, error) {
	deployments, err := s.deployments.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not list deployments: %w", err)
	}
	return deployments, nil
}

// AssignDeploymentUnit назначает подразделение на развертывание
func (s *adminService) AssignDeploymentUnit(ctx context.Context, assignment *models.DeploymentUnit) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":       "admin",
		"method":        "AssignDeploymentUnit",
		"deployment_id": assignment.DeploymentID,
		"unit_id":       assignment.UnitID,
	})

	if assignment.ID == "" {
		assignment.ID = uuid.NewString()
	}
	if assignment.CreatedAt == 0 {
		assignment.CreatedAt = time.Now().UnixMilli()
	}

	if _, err := s.deployments.Get(ctx, assignment.DeploymentID); err != nil {
		log.WithError(err).Warn("Attempted to assign unit to a non-existent deployment")
		return fmt.Errorf("service: deployment %s not found for assignment: %w", assignment.DeploymentID, err)
	}

	if err := s.deployments.AssignUnit(ctx, assignment); err != nil {
		log.WithError(err).Error("Failed to assign unit to deployment")
		return fmt.Errorf("service: could not assign unit to deployment: %w", err)
	}
	log.Info("Unit assigned to deployment")
	return nil
}

// ListDeploymentUnits возвращает назначения развертывания
func (s *adminService) ListDeploymentUnits(ctx context.Context, deploymentID string) ([]*models.DeploymentUnit, error) {
	units, err := s.deployments.ListUnits(ctx, deploymentID)
	if err != nil {
		return nil, fmt.Errorf("service: could not list deployment units: %w", err)
	}
	return units, nil
}
