package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shenikar/fire_incident_console/internal/feed"
	"github.com/shenikar/fire_incident_console/internal/models"
)

// StationRepository определяет контракт для работы с бд пожарных станций.
// Поиск по email возвращает (nil, nil) при отсутствии записи.
type StationRepository interface {
	Create(ctx context.Context, station *models.FireStation) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.FireStation, error)
	GetByEmail(ctx context.Context, email string) (*models.FireStation, error)
	Update(ctx context.Context, station *models.FireStation) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*models.FireStation, error)
	ListByRole(ctx context.Context, role string) ([]*models.FireStation, error)
	ListByParent(ctx context.Context, parentID uuid.UUID) ([]*models.FireStation, error)
	SetPassword(ctx context.Context, email, passwordHash string) error
}

// UnitRepository определяет контракт для работы с бд подразделений
type UnitRepository interface {
	Create(ctx context.Context, unit *models.Unit) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Unit, error)
	Update(ctx context.Context, unit *models.Unit) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*models.Unit, error)
	ListByStation(ctx context.Context, stationID uuid.UUID) ([]*models.Unit, error)
}

// ResponderRepository определяет контракт для работы с бд сотрудников
type ResponderRepository interface {
	Create(ctx context.Context, responder *models.Responder) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Responder, error)
	Update(ctx context.Context, responder *models.Responder) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*models.Responder, error)
	ListByStationAndRole(ctx context.Context, stationID uuid.UUID, role string) ([]*models.Responder, error)
}

// UserRepository определяет контракт для работы с пользователями приложения
// и реестром администраторов. Поиск по email возвращает (nil, nil) при
// отсутствии записи.
type UserRepository interface {
	feed.ProfileResolver
	GetAdminByEmail(ctx context.Context, email string) (*models.Admin, error)
	SetAdminPassword(ctx context.Context, email, passwordHash string) error
	List(ctx context.Context) ([]*models.AppUser, error)
	Update(ctx context.Context, user *models.AppUser) error
	Delete(ctx context.Context, id string) error
	CountActiveSince(ctx context.Context, minutes int) (int, error)
}

// ReportRepository определяет контракт для работы с realtime-хранилищем
// отчетов: записи, события ленты и сообщения чата
type ReportRepository interface {
	Save(ctx context.Context, report *models.Report, category models.ReportCategory) error
	Update(ctx context.Context, report *models.Report, category models.ReportCategory) error
	Delete(ctx context.Context, id string, category models.ReportCategory) error
	Get(ctx context.Context, id string, category models.ReportCategory) (*models.Report, error)
	InitialReports(ctx context.Context, stationID string, category models.ReportCategory) ([]*models.Report, error)
	Messages(ctx context.Context, reportID string) ([]*models.ChatMessage, error)
	AppendMessage(ctx context.Context, msg *models.ChatMessage) error
}

// DeploymentRepository определяет контракт для работы с развертываниями
type DeploymentRepository interface {
	Create(ctx context.Context, deployment *models.Deployment) error
	Update(ctx context.Context, deployment *models.Deployment) error
	Get(ctx context.Context, id string) (*models.Deployment, error)
	List(ctx context.Context) ([]*models.Deployment, error)
	AssignUnit(ctx context.Context, assignment *models.DeploymentUnit) error
	ListUnits(ctx context.Context, deploymentID string) ([]*models.DeploymentUnit, error)
}

// SessionStore определяет контракт хранилища сессий и токенов сброса
type SessionStore interface {
	Create(ctx context.Context, sess *models.Session) (string, error)
	Get(ctx context.Context, token string) (*models.Session, error)
	Destroy(ctx context.Context, token string) error
	CreateResetToken(ctx context.Context, email string) (string, error)
	ConsumeResetToken(ctx context.Context, token string) (string, error)
}

// ReportFeed определяет контракт живой ленты отчетов
type ReportFeed interface {
	Listen(ctx context.Context, stationID string, category models.ReportCategory, cb feed.Callbacks) (func(), error)
}
