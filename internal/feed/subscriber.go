package feed

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/fire_incident_console/internal/models"
	"github.com/sirupsen/logrus"
)

// ProfileResolver определяет контракт побочного поиска профиля отправителя
type ProfileResolver interface {
	GetProfile(ctx context.Context, userDocID string) (*models.UserProfile, error)
}

// Callbacks - обработчики трех видов событий ленты
type Callbacks struct {
	Added   func(report *models.Report)
	Changed func(report *models.Report)
	Removed func(reportID string)
}

// Subscriber слушает pub/sub канал категории и доставляет нормализованные
// события. Записи чужих станций молча отбрасываются: лента приходит
// нефильтрованной и фильтруется на стороне клиента.
type Subscriber struct {
	rdb      *redis.Client
	resolver ProfileResolver
	logger   *logrus.Logger
}

// NewSubscriber создает подписчика ленты отчетов
func NewSubscriber(rdb *redis.Client, resolver ProfileResolver, logger *logrus.Logger) *Subscriber {
	return &Subscriber{
		rdb:      rdb,
		resolver: resolver,
		logger:   logger,
	}
}

// Listen открывает долгоживущую подписку на события категории для станции.
// Возвращает disposer, который снимает подписку; его безопасно вызывать
// несколько раз.
func (s *Subscriber) Listen(ctx context.Context, stationID string, category models.ReportCategory, cb Callbacks) (func(), error) {
	subCtx, cancel := context.WithCancel(ctx)

	pubsub := s.rdb.Subscribe(subCtx, category.EventChannel())
	if _, err := pubsub.Receive(subCtx); err != nil {
		cancel()
		_ = pubsub.Close()
		return nil, err
	}

	ch := pubsub.Channel()
	go func() {
		for {
			select {
			case <-subCtx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				s.handleMessage(subCtx, stationID, category, []byte(msg.Payload), cb)
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			cancel()
			if err := pubsub.Close(); err != nil {
				s.logger.WithError(err).Warn("Failed to close report feed subscription")
			}
		})
	}, nil
}

// handleMessage разбирает событие и вызывает соответствующий обработчик
func (s *Subscriber) handleMessage(ctx context.Context, stationID string, category models.ReportCategory, payload []byte, cb Callbacks) {
	log := s.logger.WithFields(logrus.Fields{
		"station_id": stationID,
		"category":   category,
	})

	var event models.ReportEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		log.WithError(err).Error("Failed to unmarshal report event")
		return
	}

	switch event.Event {
	case models.EventRemoved:
		if cb.Removed != nil {
			cb.Removed(event.ID)
		}
	case models.EventAdded, models.EventChanged:
		if event.Report == nil {
			log.WithField("report_id", event.ID).Warn("Report event without payload ignored")
			return
		}
		report := event.Report
		report.ID = event.ID

		// Фильтрация по станции на стороне клиента
		if report.FireStationID != stationID {
			return
		}

		profile := ResolveProfile(ctx, s.resolver, s.logger, report.UserDocID)

		// Поиск профиля - точка приостановки: к его завершению подписка
		// могла быть снята. Поздний результат отбрасывается.
		if ctx.Err() != nil {
			return
		}
		report.UserProfile = *profile

		if event.Event == models.EventAdded {
			if cb.Added != nil {
				cb.Added(report)
			}
		} else if cb.Changed != nil {
			cb.Changed(report)
		}
	default:
		log.WithField("event", event.Event).Warn("Unknown report event kind ignored")
	}
}

// ResolveProfile выполняет поиск профиля отправителя. Сбой поиска или
// отсутствие документа деградируют до профиля-заглушки и никогда не
// прерывают событие отчета.
func ResolveProfile(ctx context.Context, resolver ProfileResolver, logger *logrus.Logger, userDocID string) *models.UserProfile {
	if userDocID == "" {
		return models.PlaceholderProfile()
	}

	profile, err := resolver.GetProfile(ctx, userDocID)
	if err != nil {
		logger.WithError(err).WithField("user_doc_id", userDocID).Error("Failed to fetch user profile")
		return models.PlaceholderProfile()
	}
	if profile == nil {
		return models.PlaceholderProfile()
	}
	return profile
}
