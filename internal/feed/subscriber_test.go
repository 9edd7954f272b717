package feed

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/shenikar/fire_incident_console/internal/feed/mocks"
	"github.com/shenikar/fire_incident_console/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestSubscriber — вспомогательная функция для создания подписчика с моком
func newTestSubscriber(t *testing.T) (*Subscriber, *mocks.MockProfileResolver) {
	ctrl := gomock.NewController(t)
	resolverMock := mocks.NewMockProfileResolver(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	return NewSubscriber(nil, resolverMock, logger), resolverMock
}

func eventPayload(t *testing.T, kind, id string, report *models.Report) []byte {
	t.Helper()
	payload, err := json.Marshal(models.ReportEvent{Event: kind, ID: id, Report: report})
	require.NoError(t, err)
	return payload
}

func TestHandleMessage_AddedResolvesProfile(t *testing.T) {
	sub, resolverMock := newTestSubscriber(t)
	ctx := context.Background()

	report := &models.Report{FireStationID: "S1", UserDocID: "u1"}
	profileURL := "https://cdn.example/u1.png"
	resolverMock.EXPECT().
		GetProfile(gomock.Any(), "u1").
		Return(&models.UserProfile{Name: "Juan Dela Cruz", Profile: &profileURL, IsActive: true, LastSeen: 42}, nil).
		Times(1)

	var got *models.Report
	sub.handleMessage(ctx, "S1", models.CategoryFire, eventPayload(t, models.EventAdded, "r1", report), Callbacks{
		Added: func(r *models.Report) { got = r },
	})

	require.NotNil(t, got)
	assert.Equal(t, "r1", got.ID)
	assert.Equal(t, "Juan Dela Cruz", got.Name)
	assert.True(t, got.IsActive)
	assert.EqualValues(t, 42, got.LastSeen)
}

func TestHandleMessage_ProfileLookupFailureDegradesToPlaceholder(t *testing.T) {
	sub, resolverMock := newTestSubscriber(t)
	ctx := context.Background()

	report := &models.Report{FireStationID: "S1", UserDocID: "u1"}
	resolverMock.EXPECT().
		GetProfile(gomock.Any(), "u1").
		Return(nil, errors.New("firestore unavailable")).
		Times(1)

	var got *models.Report
	sub.handleMessage(ctx, "S1", models.CategoryFire, eventPayload(t, models.EventAdded, "r1", report), Callbacks{
		Added: func(r *models.Report) { got = r },
	})

	// Сбой поиска профиля не прерывает событие отчета
	require.NotNil(t, got)
	assert.Equal(t, "Unknown User", got.Name)
	assert.Nil(t, got.Profile)
	assert.False(t, got.IsActive)
	assert.EqualValues(t, 0, got.LastSeen)
}

func TestHandleMessage_MissingProfileDegradesToPlaceholder(t *testing.T) {
	sub, resolverMock := newTestSubscriber(t)
	ctx := context.Background()

	report := &models.Report{FireStationID: "S1", UserDocID: "ghost"}
	resolverMock.EXPECT().
		GetProfile(gomock.Any(), "ghost").
		Return(nil, nil).
		Times(1)

	var got *models.Report
	sub.handleMessage(ctx, "S1", models.CategoryFire, eventPayload(t, models.EventChanged, "r1", report), Callbacks{
		Changed: func(r *models.Report) { got = r },
	})

	require.NotNil(t, got)
	assert.Equal(t, "Unknown User", got.Name)
}

func TestHandleMessage_OtherStationDropped(t *testing.T) {
	sub, resolverMock := newTestSubscriber(t)
	ctx := context.Background()

	report := &models.Report{FireStationID: "S2", UserDocID: "u1"}
	// Чужая станция отбрасывается до поиска профиля
	resolverMock.EXPECT().GetProfile(gomock.Any(), gomock.Any()).Times(0)

	called := false
	sub.handleMessage(ctx, "S1", models.CategoryFire, eventPayload(t, models.EventAdded, "r1", report), Callbacks{
		Added: func(*models.Report) { called = true },
	})

	assert.False(t, called)
}

func TestHandleMessage_RemovedDispatchesBareID(t *testing.T) {
	sub, resolverMock := newTestSubscriber(t)
	ctx := context.Background()

	resolverMock.EXPECT().GetProfile(gomock.Any(), gomock.Any()).Times(0)

	var removedID string
	sub.handleMessage(ctx, "S1", models.CategoryFire, eventPayload(t, models.EventRemoved, "r1", nil), Callbacks{
		Removed: func(id string) { removedID = id },
	})

	assert.Equal(t, "r1", removedID)
}

func TestHandleMessage_LateResultAfterDisposalDiscarded(t *testing.T) {
	sub, resolverMock := newTestSubscriber(t)
	ctx, cancel := context.WithCancel(context.Background())

	report := &models.Report{FireStationID: "S1", UserDocID: "u1"}
	resolverMock.EXPECT().
		GetProfile(gomock.Any(), "u1").
		DoAndReturn(func(context.Context, string) (*models.UserProfile, error) {
			// Подписка снимается, пока поиск профиля еще выполняется
			cancel()
			return &models.UserProfile{Name: "Late"}, nil
		}).Times(1)

	called := false
	sub.handleMessage(ctx, "S1", models.CategoryFire, eventPayload(t, models.EventAdded, "r1", report), Callbacks{
		Added: func(*models.Report) { called = true },
	})

	assert.False(t, called)
}

func TestHandleMessage_MalformedPayloadIgnored(t *testing.T) {
	sub, resolverMock := newTestSubscriber(t)
	ctx := context.Background()

	resolverMock.EXPECT().GetProfile(gomock.Any(), gomock.Any()).Times(0)

	called := false
	sub.handleMessage(ctx, "S1", models.CategoryFire, []byte(`{"event":`), Callbacks{
		Added: func(*models.Report) { called = true },
	})

	assert.False(t, called)
}

func TestResolveProfile_EmptyDocID(t *testing.T) {
	_, resolverMock := newTestSubscriber(t)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	resolverMock.EXPECT().GetProfile(gomock.Any(), gomock.Any()).Times(0)

	profile := ResolveProfile(context.Background(), resolverMock, logger, "")
	assert.Equal(t, models.PlaceholderProfile(), profile)
}
