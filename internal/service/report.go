package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/fire_incident_console/internal/feed"
	"github.com/shenikar/fire_incident_console/internal/models"
	"github.com/shenikar/fire_incident_console/internal/reconciler"
	"github.com/shenikar/fire_incident_console/internal/session"
	"github.com/sirupsen/logrus"
)

// Ошибки операций с отчетами
var (
	// ErrFeedNotStarted - запрос представления до запуска ленты сессии
	ErrFeedNotStarted = errors.New("report feed not started for session")
	// ErrReportNotFound - отчет отсутствует в realtime-хранилище
	ErrReportNotFound = errors.New("report not found")
	// ErrReportForbidden - отчет принадлежит другой станции
	ErrReportForbidden = errors.New("report belongs to another station")
)

// ReportService определяет контракт для работы с живой лентой отчетов
type ReportService interface {
	StartFeed(ctx context.Context, sess *models.Session) error
	StopFeed(token string)
	StartFeedReaper(ctx context.Context, interval time.Duration)
	ListReports(token, filterLabel string) ([]*models.Report, error)
	SubmitReport(ctx context.Context, report *models.Report, category models.ReportCategory) error
	AcceptReport(ctx context.Context, sess *models.Session, id string, category models.ReportCategory) error
	AssignUnit(ctx context.Context, sess *models.Session, id string, category models.ReportCategory, unitID uuid.UUID) error
	RemoveReport(ctx context.Context, id string, category models.ReportCategory) error
	ListMessages(ctx context.Context, reportID string) ([]*models.ChatMessage, error)
	SendMessage(ctx context.Context, msg *models.ChatMessage) error
}

// sessionFeed - лента одной сессии: согласователь и disposer подписок
type sessionFeed struct {
	rec     *reconciler.Reconciler
	dispose []func()
}

type reportService struct {
	repo     ReportRepository
	users    UserRepository
	units    UnitRepository
	feed     ReportFeed
	sessions SessionStore
	logger   *logrus.Logger

	mu    sync.Mutex
	feeds map[string]*sessionFeed // токен сессии -> лента
}

// NewReportService создает сервис отчетов
func NewReportService(repo ReportRepository, users UserRepository, units UnitRepository, reportFeed ReportFeed, sessions SessionStore, logger *logrus.Logger) ReportService {
	return &reportService{
		repo:     repo,
		users:    users,
		units:    units,
		feed:     reportFeed,
		sessions: sessions,
		logger:   logger,
		feeds:    make(map[string]*sessionFeed),
	}
}

// StartFeed запускает ленту для сессии станции: загружает начальный срез
// и открывает по одной подписке на каждую категорию. Повторный запуск
// для той же сессии безопасен.
func (s *reportService) StartFeed(ctx context.Context, sess *models.Session) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "report",
		"method":     "StartFeed",
		"station_id": sess.StationDocID,
	})

	s.mu.Lock()
	if _, exists := s.feeds[sess.Token]; exists {
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()

	rec := reconciler.New(sess.UserDocID, s.logger)

	// Начальный срез до подписки: события, пришедшие после него,
	// дедуплицируются согласователем
	for _, category := range models.AllCategories() {
		initial, err := s.repo.InitialReports(ctx, sess.StationDocID, category)
		if err != nil {
			log.WithError(err).Error("Failed to load initial reports")
			return fmt.Errorf("service: could not load initial reports: %w", err)
		}
		for _, report := range initial {
			report.UserProfile = *feed.ResolveProfile(ctx, s.users, s.logger, report.UserDocID)
			rec.AddReport(report, category)
		}
	}

	// Подписки живут дольше HTTP-запроса, который их породил: контекст
	// запроса гасится при записи ответа, а снимает подписку только
	// disposer (StopFeed или жнец). Начальный срез выше остается на
	// контексте запроса.
	feedCtx := context.WithoutCancel(ctx)

	dispose := make([]func(), 0, len(models.AllCategories()))
	for _, category := range models.AllCategories() {
		category := category
		cb := feed.Callbacks{
			Added:   func(r *models.Report) { rec.AddReport(r, category) },
			Changed: func(r *models.Report) { rec.UpdateReport(r, category) },
			Removed: func(id string) { rec.RemoveReport(id) },
		}
		disposer, err := s.feed.Listen(feedCtx, sess.StationDocID, category, cb)
		if err != nil {
			for _, d := range dispose {
				d()
			}
			log.WithError(err).Error("Failed to subscribe to report feed")
			return fmt.Errorf("service: could not subscribe to %s feed: %w", category, err)
		}
		dispose = append(dispose, disposer)
	}

	s.mu.Lock()
	// Повторная проверка под мьютексом: параллельный запуск для того же
	// токена мог зарегистрировать ленту, пока строилась эта. Проигравший
	// снимает собственные подписки, иначе они утекут без disposer'а.
	if _, exists := s.feeds[sess.Token]; exists {
		s.mu.Unlock()
		for _, d := range dispose {
			d()
		}
		log.Debug("Concurrent feed start lost the race, subscriptions disposed")
		return nil
	}
	s.feeds[sess.Token] = &sessionFeed{rec: rec, dispose: dispose}
	s.mu.Unlock()

	log.Info("Report feed started")
	return nil
}

// StartFeedReaper запускает горутину, которая периодически снимает ленты
// сессий, истекших по TTL без явного выхода. Без него лента такой сессии
// осталась бы в памяти навсегда.
func (s *reportService) StartFeedReaper(ctx context.Context, interval time.Duration) {
	s.logger.Info("Starting report feed reaper...")
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				s.logger.Info("Stopping report feed reaper.")
				return
			case <-ticker.C:
				s.reapExpiredFeeds(ctx)
			}
		}
	}()
}

// reapExpiredFeeds снимает ленты, токен которых больше не разрешается в
// хранилище сессий. Ошибка хранилища не повод гасить живую ленту:
// такой токен проверяется на следующем проходе.
func (s *reportService) reapExpiredFeeds(ctx context.Context) {
	s.mu.Lock()
	tokens := make([]string, 0, len(s.feeds))
	for token := range s.feeds {
		tokens = append(tokens, token)
	}
	s.mu.Unlock()

	for _, token := range tokens {
		_, err := s.sessions.Get(ctx, token)
		if err == nil {
			continue
		}
		if !errors.Is(err, session.ErrNotFound) {
			s.logger.WithFields(logrus.Fields{
				"service": "report",
				"method":  "reapExpiredFeeds",
			}).WithError(err).Warn("Failed to check session while reaping feeds")
			continue
		}
		s.StopFeed(token)
	}
}

// StopFeed снимает все подписки сессии. Безопасен при повторном вызове.
func (s *reportService) StopFeed(token string) {
	s.mu.Lock()
	sf, ok := s.feeds[token]
	if ok {
		delete(s.feeds, token)
	}
	s.mu.Unlock()

	if !ok {
		return
	}
	for _, dispose := range sf.dispose {
		dispose()
	}
	s.logger.WithFields(logrus.Fields{
		"service": "report",
		"method":  "StopFeed",
	}).Info("Report feed stopped")
}

// ListReports возвращает отфильтрованное представление ленты сессии
func (s *reportService) ListReports(token, filterLabel string) ([]*models.Report, error) {
	s.mu.Lock()
	sf, ok := s.feeds[token]
	s.mu.Unlock()

	if !ok {
		return nil, ErrFeedNotStarted
	}

	if filterLabel == "" {
		filterLabel = models.FilterAllReports
	}
	sf.rec.FilterReports(filterLabel)
	return sf.rec.Reports(), nil
}

// SubmitReport сохраняет новый отчет и публикует событие added
func (s *reportService) SubmitReport(ctx context.Context, report *models.Report, category models.ReportCategory) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "report",
		"method":   "SubmitReport",
		"category": category,
	})

	if report.ID == "" {
		report.ID = uuid.NewString()
	}
	if report.Status == "" {
		report.Status = models.ReportStatusPending
	}
	if report.CreatedAt == 0 {
		report.CreatedAt = time.Now().UnixMilli()
	}

	if err := s.repo.Save(ctx, report, category); err != nil {
		log.WithError(err).Error("Failed to save report")
		return fmt.Errorf("service: could not submit report: %w", err)
	}

	log.WithField("report_id", report.ID).Info("Report submitted")
	return nil
}

// AcceptReport переводит отчет в статус Ongoing и публикует событие changed
func (s *reportService) AcceptReport(ctx context.Context, sess *models.Session, id string, category models.ReportCategory) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "report",
		"method":    "AcceptReport",
		"report_id": id,
	})

	report, err := s.loadStationReport(ctx, sess, id, category)
	if err != nil {
		log.WithError(err).Warn("Accept rejected")
		return err
	}

	report.Status = models.ReportStatusOngoing
	if err := s.repo.Update(ctx, report, category); err != nil {
		log.WithError(err).Error("Failed to update report status")
		return fmt.Errorf("service: could not accept report: %w", err)
	}

	log.Info("Report accepted")
	return nil
}

// AssignUnit закрепляет подразделение за отчетом
func (s *reportService) AssignUnit(ctx context.Context, sess *models.Session, id string, category models.ReportCategory, unitID uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "report",
		"method":    "AssignUnit",
		"report_id": id,
		"unit_id":   unitID,
	})

	report, err := s.loadStationReport(ctx, sess, id, category)
	if err != nil {
		log.WithError(err).Warn("Assign rejected")
		return err
	}

	unit, err := s.units.GetByID(ctx, unitID)
	if err != nil {
		log.WithError(err).Warn("Attempted to assign a non-existent unit")
		return fmt.Errorf("service: unit %s not found for assignment: %w", unitID, err)
	}

	report.AssignedUnitID = unit.ID.String()
	report.AssignedUnitName = unit.UnitName
	if report.Status == models.ReportStatusPending {
		report.Status = models.ReportStatusOngoing
	}

	if err := s.repo.Update(ctx, report, category); err != nil {
		log.WithError(err).Error("Failed to assign unit to report")
		return fmt.Errorf("service: could not assign unit: %w", err)
	}

	log.Info("Unit assigned to report")
	return nil
}

// RemoveReport удаляет отчет и публикует событие removed
func (s *reportService) RemoveReport(ctx context.Context, id string, category models.ReportCategory) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "report",
		"method":    "RemoveReport",
		"report_id": id,
	})

	if err := s.repo.Delete(ctx, id, category); err != nil {
		log.WithError(err).Error("Failed to remove report")
		return fmt.Errorf("service: could not remove report: %w", err)
	}

	log.Info("Report removed")
	return nil
}

// ListMessages возвращает сообщения чата по отчету
func (s *reportService) ListMessages(ctx context.Context, reportID string) ([]*models.ChatMessage, error) {
	messages, err := s.repo.Messages(ctx, reportID)
	if err != nil {
		return nil, fmt.Errorf("service: could not list messages: %w", err)
	}
	return messages, nil
}

// SendMessage отправляет сообщение чата. Сбой отдается вызывающему коду
// как есть: операция не повторяется автоматически.
func (s *reportService) SendMessage(ctx context.Context, msg *models.ChatMessage) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "report",
		"method":    "SendMessage",
		"report_id": msg.ReportID,
	})

	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	if msg.SentAt == 0 {
		msg.SentAt = time.Now().UnixMilli()
	}

	if err := s.repo.AppendMessage(ctx, msg); err != nil {
		log.WithError(err).Error("Failed to send chat message")
		return fmt.Errorf("service: could not send message: %w", err)
	}
	return nil
}

// loadStationReport загружает отчет и проверяет принадлежность станции.
// Администратору доступны отчеты всех станций.
func (s *reportService) loadStationReport(ctx context.Context, sess *models.Session, id string, category models.ReportCategory) (*models.Report, error) {
	report, err := s.repo.Get(ctx, id, category)
	if err != nil {
		return nil, fmt.Errorf("service: could not get report: %w", err)
	}
	if report == nil {
		return nil, ErrReportNotFound
	}
	if sess.AccountType != models.AccountTypeAdmin && report.FireStationID != sess.StationDocID {
		return nil, ErrReportForbidden
	}
	return report, nil
}
