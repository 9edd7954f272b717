package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shenikar/fire_incident_console/internal/config"
	"github.com/shenikar/fire_incident_console/internal/models"
	"github.com/sirupsen/logrus"
)

// DashboardService определяет контракт сводок для панелей
type DashboardService interface {
	StationStats(ctx context.Context, stationID string) (*models.StationDashboard, error)
	AdminStats(ctx context.Context) (*models.AdminDashboard, error)
}

type dashboardService struct {
	reports    ReportRepository
	stations   StationRepository
	units      UnitRepository
	responders ResponderRepository
	users      UserRepository
	logger     *logrus.Logger
	cfg        *config.Config
}

// NewDashboardService создает сервис сводок
func NewDashboardService(reports ReportRepository, stations StationRepository, units UnitRepository, responders ResponderRepository, users UserRepository, logger *logrus.Logger, cfg *config.Config) DashboardService {
	return &dashboardService{
		reports:    reports,
		stations:   stations,
		units:      units,
		responders: responders,
		users:      users,
		logger:     logger,
		cfg:        cfg,
	}
}

// StationStats агрегирует отчеты станции для плиток и графиков панели
func (s *dashboardService) StationStats(ctx context.Context, stationID string) (*models.StationDashboard, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "dashboard",
		"method":     "StationStats",
		"station_id": stationID,
	})

	stats := &models.StationDashboard{
		Monthly:     make(map[models.ReportCategory][12]int),
		Yearly:      make(map[int]int),
		LastUpdated: time.Now(),
	}
	currentYear := time.Now().Year()

	for _, category := range models.AllCategories() {
		reports, err := s.reports.InitialReports(ctx, stationID, category)
		if err != nil {
			log.WithError(err).Error("Failed to load reports for stats")
			return nil, fmt.Errorf("service: could not load %s reports: %w", category, err)
		}

		monthly := stats.Monthly[category]
		for _, report := range reports {
			switch category {
			case models.CategoryFire:
				stats.TotalFireReports++
			case models.CategoryOtherEmergency:
				stats.TotalOtherReports++
			case models.CategoryEMS:
				stats.TotalMedicalReports++
			case models.CategorySms:
				stats.TotalSmsReports++
			}

			switch report.Status {
			case models.ReportStatusOngoing:
				stats.TotalOngoingReports++
			case models.ReportStatusPending:
				stats.TotalPendingReports++
			}

			if report.CreatedAt > 0 {
				created := time.UnixMilli(report.CreatedAt)
				stats.Yearly[created.Year()]++
				if created.Year() == currentYear {
					monthly[int(created.Month())-1]++
				}
			}
		}
		stats.Monthly[category] = monthly
	}

	stats.TotalAllReports = stats.TotalFireReports + stats.TotalOtherReports +
		stats.TotalMedicalReports + stats.TotalSmsReports

	log.WithField("total", stats.TotalAllReports).Info("Station stats computed")
	return stats, nil
}

// AdminStats агрегирует счетчики реестров и активных пользователей
func (s *dashboardService) AdminStats(ctx context.Context) (*models.AdminDashboard, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "dashboard",
		"method":  "AdminStats",
	})

	stations, err := s.stations.List(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list stations for stats")
		return nil, fmt.Errorf("service: could not count stations: %w", err)
	}

	units, err := s.units.List(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list units for stats")
		return nil, fmt.Errorf("service: could not count units: %w", err)
	}

	responders, err := s.responders.List(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list responders for stats")
		return nil, fmt.Errorf("service: could not count responders: %w", err)
	}

	activeUsers, err := s.users.CountActiveSince(ctx, s.cfg.StatsTimeWindowMinutes)
	if err != nil {
		log.WithError(err).Error("Failed to count active users")
		return nil, fmt.Errorf("service: could not count active users: %w", err)
	}

	stats := &models.AdminDashboard{
		TotalStations:   len(stations),
		TotalUnits:      len(units),
		TotalResponders: len(responders),
		ActiveUsers:     activeUsers,
		LastUpdated:     time.Now(),
	}

	log.Info("Admin stats computed")
	return stats, nil
}
