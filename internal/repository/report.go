package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/fire_incident_console/internal/models"
	"github.com/shenikar/fire_incident_console/internal/service"
)

// ReportRepository хранит отчеты в Redis-хэшах по категориям и публикует
// события added/changed/removed в канал категории для живой ленты
type ReportRepository struct {
	rdb *redis.Client
}

func NewReportRepository(rdb *redis.Client) service.ReportRepository {
	return &ReportRepository{rdb: rdb}
}

func messagesKey(reportID string) string {
	return "report:messages:" + reportID
}

// Save записывает новый отчет и публикует событие added
func (r *ReportRepository) Save(ctx context.Context, report *models.Report, category models.ReportCategory) error {
	return r.write(ctx, report, category, models.EventAdded)
}

// Update перезаписывает существующий отчет и публикует событие changed
func (r *ReportRepository) Update(ctx context.Context, report *models.Report, category models.ReportCategory) error {
	return r.write(ctx, report, category, models.EventChanged)
}

func (r *ReportRepository) write(ctx context.Context, report *models.Report, category models.ReportCategory, event string) error {
	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	if err := r.rdb.HSet(ctx, category.HashKey(), report.ID, data).Err(); err != nil {
		return fmt.Errorf("failed to store report: %w", err)
	}

	return r.publish(ctx, category, &models.ReportEvent{
		Event:  event,
		ID:     report.ID,
		Report: report,
	})
}

// Delete удаляет отчет и публикует событие removed.
// Отсутствующий отчет не является ошибкой.
func (r *ReportRepository) Delete(ctx context.Context, id string, category models.ReportCategory) error {
	removed, err := r.rdb.HDel(ctx, category.HashKey(), id).Result()
	if err != nil {
		return fmt.Errorf("failed to delete report: %w", err)
	}
	if removed == 0 {
		return nil
	}

	return r.publish(ctx, category, &models.ReportEvent{
		Event: models.EventRemoved,
		ID:    id,
	})
}

// Get возвращает отчет по id или (nil, nil), если запись отсутствует
func (r *ReportRepository) Get(ctx context.Context, id string, category models.ReportCategory) (*models.Report, error) {
	data, err := r.rdb.HGet(ctx, category.HashKey(), id).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}

	report := &models.Report{}
	if err := json.Unmarshal([]byte(data), report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report %s: %w", id, err)
	}
	report.ID = id
	return report, nil
}

// InitialReports возвращает снимок отчетов категории для станции.
// Фильтрация по станции выполняется на клиенте, битые записи пропускаются.
func (r *ReportRepository) InitialReports(ctx context.Context, stationID string, category models.ReportCategory) ([]*models.Report, error) {
	entries, err := r.rdb.HGetAll(ctx, category.HashKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load %s reports: %w", category, err)
	}

	reports := make([]*models.Report, 0, len(entries))
	for id, data := range entries {
		report := &models.Report{}
		if err := json.Unmarshal([]byte(data), report); err != nil {
			continue
		}
		if stationID != "" && report.FireStationID != stationID {
			continue
		}
		report.ID = id
		reports = append(reports, report)
	}
	return reports, nil
}

// Messages возвращает сообщения чата отчета в порядке отправки
func (r *ReportRepository) Messages(ctx context.Context, reportID string) ([]*models.ChatMessage, error) {
	entries, err := r.rdb.LRange(ctx, messagesKey(reportID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load chat messages: %w", err)
	}

	messages := make([]*models.ChatMessage, 0, len(entries))
	for _, data := range entries {
		msg := &models.ChatMessage{}
		if err := json.Unmarshal([]byte(data), msg); err != nil {
			continue
		}
		messages = append(messages, msg)
	}
	return messages, nil
}

// AppendMessage дописывает сообщение в конец чата отчета
func (r *ReportRepository) AppendMessage(ctx context.Context, msg *models.ChatMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal chat message: %w", err)
	}

	if err := r.rdb.RPush(ctx, messagesKey(msg.ReportID), data).Err(); err != nil {
		return fmt.Errorf("failed to append chat message: %w", err)
	}
	return nil
}

func (r *ReportRepository) publish(ctx context.Context, category models.ReportCategory, event *models.ReportEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal report event: %w", err)
	}

	if err := r.rdb.Publish(ctx, category.EventChannel(), payload).Err(); err != nil {
		return fmt.Errorf("failed to publish report event: %w", err)
	}
	return nil
}
