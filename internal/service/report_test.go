package service

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/fire_incident_console/internal/feed"
	"github.com/shenikar/fire_incident_console/internal/models"
	"github.com/shenikar/fire_incident_console/internal/service/mocks"
	"github.com/shenikar/fire_incident_console/internal/session"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestReportService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestReportService(t *testing.T) (*reportService, *mocks.MockReportRepository, *mocks.MockUserRepository, *mocks.MockUnitRepository, *mocks.MockReportFeed, *mocks.MockSessionStore) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockReportRepository(ctrl)
	usersMock := mocks.NewMockUserRepository(ctrl)
	unitsMock := mocks.NewMockUnitRepository(ctrl)
	feedMock := mocks.NewMockReportFeed(ctrl)
	sessionsMock := mocks.NewMockSessionStore(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	service := NewReportService(repoMock, usersMock, unitsMock, feedMock, sessionsMock, logger)
	return service.(*reportService), repoMock, usersMock, unitsMock, feedMock, sessionsMock
}

// stationSession возвращает сессию станции для тестов
func stationSession() *models.Session {
	return &models.Session{
		Token:        "session-token",
		AccountType:  models.AccountTypeFireStation,
		StationDocID: "station-1",
		StationName:  "Центральная станция",
	}
}

func TestStartFeed_Success(t *testing.T) {
	// Подготовка
	service, repoMock, usersMock, _, feedMock, _ := newTestReportService(t)
	ctx := context.Background()
	sess := stationSession()
	initialReport := &models.Report{
		ID:            "report-1",
		FireStationID: sess.StationDocID,
		UserDocID:     "user-1",
		Status:        models.ReportStatusPending,
	}

	// Ожидания
	// 1. Начальный срез: один отчет в категории пожаров, остальные пустые
	repoMock.EXPECT().
		InitialReports(ctx, sess.StationDocID, models.CategoryFire).
		Return([]*models.Report{initialReport}, nil).
		Times(1)
	for _, category := range models.AllCategories()[1:] {
		repoMock.EXPECT().
			InitialReports(ctx, sess.StationDocID, category).
			Return(nil, nil).
			Times(1)
	}

	// 2. Профиль отправителя подмешивается в отчет
	usersMock.EXPECT().
		GetProfile(ctx, "user-1").
		Return(&models.UserProfile{Name: "Иван"}, nil).
		Times(1)

	// 3. По одной подписке на каждую категорию
	feedMock.EXPECT().
		Listen(gomock.Any(), sess.StationDocID, gomock.Any(), gomock.Any()).
		Return(func() {}, nil).
		Times(len(models.AllCategories()))

	// Действие
	err := service.StartFeed(ctx, sess)

	// Проверки
	require.NoError(t, err)
	reports, err := service.ListReports(sess.Token, models.FilterAllReports)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, "report-1", reports[0].ID)
	assert.Equal(t, "Иван", reports[0].Name)
}

func TestStartFeed_Idempotent(t *testing.T) {
	// Подготовка
	service, repoMock, _, _, feedMock, _ := newTestReportService(t)
	ctx := context.Background()
	sess := stationSession()

	// Ожидания
	// Загрузка и подписки выполняются ровно один раз
	repoMock.EXPECT().
		InitialReports(ctx, sess.StationDocID, gomock.Any()).
		Return(nil, nil).
		Times(len(models.AllCategories()))
	feedMock.EXPECT().
		Listen(gomock.Any(), sess.StationDocID, gomock.Any(), gomock.Any()).
		Return(func() {}, nil).
		Times(len(models.AllCategories()))

	// Действие
	require.NoError(t, service.StartFeed(ctx, sess))
	err := service.StartFeed(ctx, sess)

	// Проверки
	require.NoError(t, err)
}

func TestStartFeed_SubscribeError(t *testing.T) {
	// Подготовка
	service, repoMock, _, _, feedMock, _ := newTestReportService(t)
	ctx := context.Background()
	sess := stationSession()
	disposed := 0

	// Ожидания
	repoMock.EXPECT().
		InitialReports(ctx, sess.StationDocID, gomock.Any()).
		Return(nil, nil).
		Times(len(models.AllCategories()))

	// Первая подписка открывается, вторая падает: открытая должна быть снята
	feedMock.EXPECT().
		Listen(gomock.Any(), sess.StationDocID, models.CategoryFire, gomock.Any()).
		Return(func() { disposed++ }, nil).
		Times(1)
	feedMock.EXPECT().
		Listen(gomock.Any(), sess.StationDocID, models.CategoryOtherEmergency, gomock.Any()).
		Return(nil, fmt.Errorf("канал недоступен")).
		Times(1)

	// Действие
	err := service.StartFeed(ctx, sess)

	// Проверки
	require.Error(t, err)
	assert.Equal(t, 1, disposed)
	_, err = service.ListReports(sess.Token, models.FilterAllReports)
	assert.ErrorIs(t, err, ErrFeedNotStarted)
}

func TestStopFeed_DisposesSubscriptions(t *testing.T) {
	// Подготовка
	service, repoMock, _, _, feedMock, _ := newTestReportService(t)
	ctx := context.Background()
	sess := stationSession()
	disposed := 0

	// Ожидания
	repoMock.EXPECT().
		InitialReports(ctx, sess.StationDocID, gomock.Any()).
		Return(nil, nil).
		Times(len(models.AllCategories()))
	feedMock.EXPECT().
		Listen(gomock.Any(), sess.StationDocID, gomock.Any(), gomock.Any()).
		Return(func() { disposed++ }, nil).
		Times(len(models.AllCategories()))

	require.NoError(t, service.StartFeed(ctx, sess))

	// Действие
	service.StopFeed(sess.Token)
	service.StopFeed(sess.Token) // повторный вызов безопасен

	// Проверки
	assert.Equal(t, len(models.AllCategories()), disposed)
	_, err := service.ListReports(sess.Token, models.FilterAllReports)
	assert.ErrorIs(t, err, ErrFeedNotStarted)
}

// Подписка ленты обязана пережить HTTP-запрос, который ее открыл:
// контекст запроса гасится при записи ответа, подписку снимает только disposer.
func TestStartFeed_SubscriptionOutlivesRequest(t *testing.T) {
	// Подготовка
	service, repoMock, _, _, feedMock, _ := newTestReportService(t)
	reqCtx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sess := stationSession()
	listenCtxs := make([]context.Context, 0, len(models.AllCategories()))

	// Ожидания
	// Начальный срез остается на контексте запроса
	repoMock.EXPECT().
		InitialReports(reqCtx, sess.StationDocID, gomock.Any()).
		Return(nil, nil).
		Times(len(models.AllCategories()))
	feedMock.EXPECT().
		Listen(gomock.Any(), sess.StationDocID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, stationID string, category models.ReportCategory, cb feed.Callbacks) (func(), error) {
			listenCtxs = append(listenCtxs, ctx)
			return func() {}, nil
		}).
		Times(len(models.AllCategories()))

	require.NoError(t, service.StartFeed(reqCtx, sess))

	// Действие
	// Запрос завершился, его контекст отменен
	cancel()

	// Проверки
	// Контексты подписок не наследуют отмену запроса
	require.Len(t, listenCtxs, len(models.AllCategories()))
	for _, listenCtx := range listenCtxs {
		assert.NoError(t, listenCtx.Err())
	}
	reports, err := service.ListReports(sess.Token, models.FilterAllReports)
	require.NoError(t, err)
	assert.Empty(t, reports)
}

// Два параллельных запуска для одного токена: проигравший обязан снять
// собственные подписки, а не перезаписать ленту победителя.
func TestStartFeed_ConcurrentDuplicate(t *testing.T) {
	// Подготовка
	service, repoMock, _, _, feedMock, _ := newTestReportService(t)
	ctx := context.Background()
	sess := stationSession()

	var mu sync.Mutex
	disposed := make(map[int]bool)
	var listenSeq int32
	var firstCall int32
	firstEntered := make(chan struct{})
	release := make(chan struct{})

	// Ожидания
	// Оба запуска загружают срез и подписываются; первый вызов среза
	// блокируется, пока второй запуск не зарегистрирует свою ленту
	repoMock.EXPECT().
		InitialReports(ctx, sess.StationDocID, gomock.Any()).
		DoAndReturn(func(ctx context.Context, stationID string, category models.ReportCategory) ([]*models.Report, error) {
			if atomic.CompareAndSwapInt32(&firstCall, 0, 1) {
				close(firstEntered)
				<-release
			}
			return nil, nil
		}).
		Times(2 * len(models.AllCategories()))
	feedMock.EXPECT().
		Listen(gomock.Any(), sess.StationDocID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, stationID string, category models.ReportCategory, cb feed.Callbacks) (func(), error) {
			id := int(atomic.AddInt32(&listenSeq, 1))
			return func() {
				mu.Lock()
				disposed[id] = true
				mu.Unlock()
			}, nil
		}).
		Times(2 * len(models.AllCategories()))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		assert.NoError(t, service.StartFeed(ctx, sess))
	}()
	<-firstEntered

	// Действие
	// Второй запуск завершается первым и выигрывает гонку
	require.NoError(t, service.StartFeed(ctx, sess))
	close(release)
	wg.Wait()

	// Проверки
	// Подписки победителя (открытые первыми) живы, подписки проигравшего сняты
	mu.Lock()
	for id := 1; id <= len(models.AllCategories()); id++ {
		assert.False(t, disposed[id])
	}
	assert.Len(t, disposed, len(models.AllCategories()))
	mu.Unlock()

	_, err := service.ListReports(sess.Token, models.FilterAllReports)
	require.NoError(t, err)

	// StopFeed снимает оставшиеся подписки победителя
	service.StopFeed(sess.Token)
	mu.Lock()
	assert.Len(t, disposed, 2*len(models.AllCategories()))
	mu.Unlock()
}

// Жнец снимает ленты сессий, истекших по TTL без явного выхода,
// и не трогает ленты с живой сессией.
func TestReapExpiredFeeds_DropsExpiredSessions(t *testing.T) {
	// Подготовка
	service, repoMock, _, _, feedMock, sessionsMock := newTestReportService(t)
	ctx := context.Background()
	live := stationSession()
	expired := &models.Session{
		Token:        "expired-token",
		AccountType:  models.AccountTypeFireStation,
		StationDocID: "station-2",
	}
	disposed := make(map[string]int)

	// Ожидания
	repoMock.EXPECT().
		InitialReports(ctx, gomock.Any(), gomock.Any()).
		Return(nil, nil).
		Times(2 * len(models.AllCategories()))
	feedMock.EXPECT().
		Listen(gomock.Any(), live.StationDocID, gomock.Any(), gomock.Any()).
		Return(func() { disposed[live.Token]++ }, nil).
		Times(len(models.AllCategories()))
	feedMock.EXPECT().
		Listen(gomock.Any(), expired.StationDocID, gomock.Any(), gomock.Any()).
		Return(func() { disposed[expired.Token]++ }, nil).
		Times(len(models.AllCategories()))

	require.NoError(t, service.StartFeed(ctx, live))
	require.NoError(t, service.StartFeed(ctx, expired))

	// Токен живой ленты разрешается в хранилище, истекший — нет
	sessionsMock.EXPECT().Get(ctx, live.Token).Return(live, nil).Times(1)
	sessionsMock.EXPECT().Get(ctx, expired.Token).Return(nil, session.ErrNotFound).Times(1)

	// Действие
	service.reapExpiredFeeds(ctx)

	// Проверки
	assert.Equal(t, len(models.AllCategories()), disposed[expired.Token])
	assert.Zero(t, disposed[live.Token])
	_, err := service.ListReports(live.Token, models.FilterAllReports)
	require.NoError(t, err)
	_, err = service.ListReports(expired.Token, models.FilterAllReports)
	assert.ErrorIs(t, err, ErrFeedNotStarted)
}

// Сбой хранилища сессий не повод гасить живую ленту
func TestReapExpiredFeeds_KeepsFeedOnStoreError(t *testing.T) {
	// Подготовка
	service, repoMock, _, _, feedMock, sessionsMock := newTestReportService(t)
	ctx := context.Background()
	sess := stationSession()

	// Ожидания
	repoMock.EXPECT().
		InitialReports(ctx, sess.StationDocID, gomock.Any()).
		Return(nil, nil).
		Times(len(models.AllCategories()))
	feedMock.EXPECT().
		Listen(gomock.Any(), sess.StationDocID, gomock.Any(), gomock.Any()).
		Return(func() {}, nil).
		Times(len(models.AllCategories()))

	require.NoError(t, service.StartFeed(ctx, sess))

	sessionsMock.EXPECT().
		Get(ctx, sess.Token).
		Return(nil, fmt.Errorf("redis недоступен")).
		Times(1)

	// Действие
	service.reapExpiredFeeds(ctx)

	// Проверки
	_, err := service.ListReports(sess.Token, models.FilterAllReports)
	require.NoError(t, err)
}

func TestListReports_FilterByCategory(t *testing.T) {
	// Подготовка
	service, repoMock, usersMock, _, feedMock, _ := newTestReportService(t)
	ctx := context.Background()
	sess := stationSession()
	fireReport := &models.Report{ID: "fire-1", FireStationID: sess.StationDocID, UserDocID: "user-1"}
	smsReport := &models.Report{ID: "sms-1", FireStationID: sess.StationDocID, UserDocID: "user-2"}

	// Ожидания
	repoMock.EXPECT().
		InitialReports(ctx, sess.StationDocID, models.CategoryFire).
		Return([]*models.Report{fireReport}, nil).
		Times(1)
	repoMock.EXPECT().
		InitialReports(ctx, sess.StationDocID, models.CategorySms).
		Return([]*models.Report{smsReport}, nil).
		Times(1)
	repoMock.EXPECT().
		InitialReports(ctx, sess.StationDocID, models.CategoryOtherEmergency).
		Return(nil, nil).
		Times(1)
	repoMock.EXPECT().
		InitialReports(ctx, sess.StationDocID, models.CategoryEMS).
		Return(nil, nil).
		Times(1)
	usersMock.EXPECT().GetProfile(ctx, gomock.Any()).Return(nil, nil).Times(2)
	feedMock.EXPECT().
		Listen(gomock.Any(), sess.StationDocID, gomock.Any(), gomock.Any()).
		Return(func() {}, nil).
		Times(len(models.AllCategories()))

	require.NoError(t, service.StartFeed(ctx, sess))

	// Действие
	reports, err := service.ListReports(sess.Token, "Fire Report")

	// Проверки
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, "fire-1", reports[0].ID)

	// Пустая метка эквивалентна "All Reports"
	reports, err = service.ListReports(sess.Token, "")
	require.NoError(t, err)
	assert.Len(t, reports, 2)
}

func TestListReports_FeedNotStarted(t *testing.T) {
	// Подготовка
	service, _, _, _, _, _ := newTestReportService(t)

	// Действие
	reports, err := service.ListReports("unknown-token", models.FilterAllReports)

	// Проверки
	require.ErrorIs(t, err, ErrFeedNotStarted)
	assert.Nil(t, reports)
}

func TestSubmitReport_Success(t *testing.T) {
	// Подготовка
	service, repoMock, _, _, _, _ := newTestReportService(t)
	ctx := context.Background()
	report := &models.Report{
		FireStationID: "station-1",
		UserDocID:     "user-1",
	}

	// Ожидания
	repoMock.EXPECT().
		Save(ctx, gomock.Any(), models.CategoryFire).
		// Сервис проставляет id, статус и метку времени перед сохранением
		Do(func(ctx context.Context, r *models.Report, category models.ReportCategory) {
			assert.NotEmpty(t, r.ID)
			assert.Equal(t, models.ReportStatusPending, r.Status)
			assert.NotZero(t, r.CreatedAt)
		}).
		Return(nil).
		Times(1)

	// Действие
	err := service.SubmitReport(ctx, report, models.CategoryFire)

	// Проверки
	require.NoError(t, err)
}

func TestAcceptReport_Success(t *testing.T) {
	// Подготовка
	service, repoMock, _, _, _, _ := newTestReportService(t)
	ctx := context.Background()
	sess := stationSession()
	report := &models.Report{
		ID:            "report-1",
		FireStationID: sess.StationDocID,
		Status:        models.ReportStatusPending,
	}

	// Ожидания
	repoMock.EXPECT().Get(ctx, "report-1", models.CategoryFire).Return(report, nil).Times(1)
	repoMock.EXPECT().
		Update(ctx, gomock.Any(), models.CategoryFire).
		Do(func(ctx context.Context, r *models.Report, category models.ReportCategory) {
			assert.Equal(t, models.ReportStatusOngoing, r.Status)
		}).
		Return(nil).
		Times(1)

	// Действие
	err := service.AcceptReport(ctx, sess, "report-1", models.CategoryFire)

	// Проверки
	require.NoError(t, err)
}

func TestAcceptReport_NotFound(t *testing.T) {
	// Подготовка
	service, repoMock, _, _, _, _ := newTestReportService(t)
	ctx := context.Background()
	sess := stationSession()

	// Ожидания
	// Промах по хранилищу — (nil, nil), различимое состояние
	repoMock.EXPECT().Get(ctx, "ghost", models.CategoryFire).Return(nil, nil).Times(1)

	// Действие
	err := service.AcceptReport(ctx, sess, "ghost", models.CategoryFire)

	// Проверки
	require.ErrorIs(t, err, ErrReportNotFound)
}

func TestAcceptReport_ForeignStation(t *testing.T) {
	// Подготовка
	service, repoMock, _, _, _, _ := newTestReportService(t)
	ctx := context.Background()
	sess := stationSession()
	report := &models.Report{
		ID:            "report-1",
		FireStationID: "station-2", // чужая станция
	}

	// Ожидания
	repoMock.EXPECT().Get(ctx, "report-1", models.CategoryFire).Return(report, nil).Times(1)

	// Действие
	err := service.AcceptReport(ctx, sess, "report-1", models.CategoryFire)

	// Проверки
	require.ErrorIs(t, err, ErrReportForbidden)
}

func TestAssignUnit_Success(t *testing.T) {
	// Подготовка
	service, repoMock, _, unitsMock, _, _ := newTestReportService(t)
	ctx := context.Background()
	sess := stationSession()
	unitID := uuid.New()
	unit := &models.Unit{ID: unitID, UnitName: "Расчет 3"}
	report := &models.Report{
		ID:            "report-1",
		FireStationID: sess.StationDocID,
		Status:        models.ReportStatusPending,
	}

	// Ожидания
	repoMock.EXPECT().Get(ctx, "report-1", models.CategoryFire).Return(report, nil).Times(1)
	unitsMock.EXPECT().GetByID(ctx, unitID).Return(unit, nil).Times(1)
	repoMock.EXPECT().
		Update(ctx, gomock.Any(), models.CategoryFire).
		// Имя подразделения денормализуется, статус переходит в Ongoing
		Do(func(ctx context.Context, r *models.Report, category models.ReportCategory) {
			assert.Equal(t, unitID.String(), r.AssignedUnitID)
			assert.Equal(t, "Расчет 3", r.AssignedUnitName)
			assert.Equal(t, models.ReportStatusOngoing, r.Status)
		}).
		Return(nil).
		Times(1)

	// Действие
	err := service.AssignUnit(ctx, sess, "report-1", models.CategoryFire, unitID)

	// Проверки
	require.NoError(t, err)
}

func TestAssignUnit_UnitNotFound(t *testing.T) {
	// Подготовка
	service, repoMock, _, unitsMock, _, _ := newTestReportService(t)
	ctx := context.Background()
	sess := stationSession()
	unitID := uuid.New()
	report := &models.Report{ID: "report-1", FireStationID: sess.StationDocID}

	// Ожидания
	repoMock.EXPECT().Get(ctx, "report-1", models.CategoryFire).Return(report, nil).Times(1)
	unitsMock.EXPECT().GetByID(ctx, unitID).Return(nil, fmt.Errorf("не найдено")).Times(1)

	// Действие
	err := service.AssignUnit(ctx, sess, "report-1", models.CategoryFire, unitID)

	// Проверки
	require.Error(t, err)
	assert.ErrorContains(t, err, "not found for assignment")
}

func TestRemoveReport_Success(t *testing.T) {
	// Подготовка
	service, repoMock, _, _, _, _ := newTestReportService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().Delete(ctx, "report-1", models.CategorySms).Return(nil).Times(1)

	// Действие
	err := service.RemoveReport(ctx, "report-1", models.CategorySms)

	// Проверки
	require.NoError(t, err)
}

func TestSendMessage_Success(t *testing.T) {
	// Подготовка
	service, repoMock, _, _, _, _ := newTestReportService(t)
	ctx := context.Background()
	msg := &models.ChatMessage{
		ReportID: "report-1",
		Sender:   "station",
		Text:     "Расчет выехал",
	}

	// Ожидания
	repoMock.EXPECT().
		AppendMessage(ctx, gomock.Any()).
		Do(func(ctx context.Context, m *models.ChatMessage) {
			assert.NotEmpty(t, m.ID)
			assert.NotZero(t, m.SentAt)
		}).
		Return(nil).
		Times(1)

	// Действие
	err := service.SendMessage(ctx, msg)

	// Проверки
	require.NoError(t, err)
}

func TestSendMessage_Failure(t *testing.T) {
	// Подготовка
	service, repoMock, _, _, _, _ := newTestReportService(t)
	ctx := context.Background()
	msg := &models.ChatMessage{ReportID: "report-1", Sender: "station", Text: "Прием"}

	// Ожидания
	// Сбой отдается вызывающему коду без повтора
	repoMock.EXPECT().AppendMessage(ctx, gomock.Any()).Return(fmt.Errorf("недоступно")).Times(1)

	// Действие
	err := service.SendMessage(ctx, msg)

	// Проверки
	require.Error(t, err)
	assert.ErrorContains(t, err, "could not send message")
}

// Проверка обработчиков событий подписки: added/changed/removed доставляются
// согласователю, и представление отражает их немедленно.
func TestFeedEvents_UpdateView(t *testing.T) {
	// Подготовка
	service, repoMock, _, _, feedMock, _ := newTestReportService(t)
	ctx := context.Background()
	sess := stationSession()
	callbacks := make(map[models.ReportCategory]feed.Callbacks)

	// Ожидания
	repoMock.EXPECT().
		InitialReports(ctx, sess.StationDocID, gomock.Any()).
		Return(nil, nil).
		Times(len(models.AllCategories()))
	feedMock.EXPECT().
		Listen(gomock.Any(), sess.StationDocID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, stationID string, category models.ReportCategory, cb feed.Callbacks) (func(), error) {
			callbacks[category] = cb
			return func() {}, nil
		}).
		Times(len(models.AllCategories()))

	require.NoError(t, service.StartFeed(ctx, sess))

	// Действие: событие added, затем changed, затем removed
	callbacks[models.CategoryFire].Added(&models.Report{
		ID:            "report-1",
		FireStationID: sess.StationDocID,
		Status:        models.ReportStatusPending,
	})

	reports, err := service.ListReports(sess.Token, models.FilterAllReports)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, models.ReportStatusPending, reports[0].Status)

	callbacks[models.CategoryFire].Changed(&models.Report{
		ID:            "report-1",
		FireStationID: sess.StationDocID,
		Status:        models.ReportStatusOngoing,
	})

	reports, err = service.ListReports(sess.Token, models.FilterAllReports)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, models.ReportStatusOngoing, reports[0].Status)

	callbacks[models.CategoryFire].Removed("report-1")

	// Проверки
	reports, err = service.ListReports(sess.Token, models.FilterAllReports)
	require.NoError(t, err)
	assert.Empty(t, reports)
}
