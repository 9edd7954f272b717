package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/fire_incident_console/internal/models"
	"github.com/shenikar/fire_incident_console/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

// newTestAuthService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestAuthService(t *testing.T) (*authService, *mocks.MockStationRepository, *mocks.MockUserRepository, *mocks.MockSessionStore) {
	ctrl := gomock.NewController(t)
	stationsMock := mocks.NewMockStationRepository(ctrl)
	usersMock := mocks.NewMockUserRepository(ctrl)
	sessionsMock := mocks.NewMockSessionStore(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	service := NewAuthService(stationsMock, usersMock, sessionsMock, logger)
	return service.(*authService), stationsMock, usersMock, sessionsMock
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestLogin_Admin_Success(t *testing.T) {
	// Подготовка
	service, _, usersMock, sessionsMock := newTestAuthService(t)
	ctx := context.Background()
	adminID := uuid.New()
	admin := &models.Admin{
		ID:            adminID,
		Email:         "admin@console.test",
		PasswordHash:  hashPassword(t, "secret"),
		EmailVerified: true,
	}

	// Ожидания
	// 1. Сначала проверяется реестр администраторов
	usersMock.EXPECT().
		GetAdminByEmail(ctx, admin.Email).
		Return(admin, nil).
		Times(1)

	// 2. Создается сессия администратора
	sessionsMock.EXPECT().
		Create(ctx, gomock.Any()).
		Do(func(ctx context.Context, sess *models.Session) {
			assert.Equal(t, models.AccountTypeAdmin, sess.AccountType)
			assert.Equal(t, adminID.String(), sess.UserDocID)
		}).
		Return("token-123", nil).
		Times(1)

	// Действие
	sess, token, err := service.Login(ctx, admin.Email, "secret")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "token-123", token)
	assert.Equal(t, models.AccountTypeAdmin, sess.AccountType)
}

func TestLogin_Station_Success(t *testing.T) {
	// Подготовка
	service, stationsMock, usersMock, sessionsMock := newTestAuthService(t)
	ctx := context.Background()
	stationID := uuid.New()
	station := &models.FireStation{
		ID:            stationID,
		StationName:   "Центральная станция",
		Email:         "central@console.test",
		PasswordHash:  hashPassword(t, "secret"),
		EmailVerified: true,
	}

	// Ожидания
	// 1. Промах по реестру администраторов
	usersMock.EXPECT().
		GetAdminByEmail(ctx, station.Email).
		Return(nil, nil).
		Times(1)

	// 2. Попадание в реестр станций
	stationsMock.EXPECT().
		GetByEmail(ctx, station.Email).
		Return(station, nil).
		Times(1)

	// 3. Создается сессия станции
	sessionsMock.EXPECT().
		Create(ctx, gomock.Any()).
		Do(func(ctx context.Context, sess *models.Session) {
			assert.Equal(t, models.AccountTypeFireStation, sess.AccountType)
			assert.Equal(t, stationID.String(), sess.StationDocID)
			assert.Equal(t, station.StationName, sess.StationName)
		}).
		Return("token-456", nil).
		Times(1)

	// Действие
	sess, token, err := service.Login(ctx, station.Email, "secret")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "token-456", token)
	assert.Equal(t, models.AccountTypeFireStation, sess.AccountType)
}

func TestLogin_WrongPassword(t *testing.T) {
	// Подготовка
	service, stationsMock, usersMock, _ := newTestAuthService(t)
	ctx := context.Background()
	station := &models.FireStation{
		ID:            uuid.New(),
		Email:         "central@console.test",
		PasswordHash:  hashPassword(t, "secret"),
		EmailVerified: true,
	}

	// Ожидания
	usersMock.EXPECT().GetAdminByEmail(ctx, station.Email).Return(nil, nil).Times(1)
	stationsMock.EXPECT().GetByEmail(ctx, station.Email).Return(station, nil).Times(1)

	// Действие
	sess, token, err := service.Login(ctx, station.Email, "wrong")

	// Проверки
	require.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Nil(t, sess)
	assert.Empty(t, token)
}

func TestLogin_EmailNotVerified(t *testing.T) {
	// Подготовка
	service, stationsMock, usersMock, _ := newTestAuthService(t)
	ctx := context.Background()
	station := &models.FireStation{
		ID:            uuid.New(),
		Email:         "pending@console.test",
		PasswordHash:  hashPassword(t, "secret"),
		EmailVerified: false,
	}

	// Ожидания
	usersMock.EXPECT().GetAdminByEmail(ctx, station.Email).Return(nil, nil).Times(1)
	stationsMock.EXPECT().GetByEmail(ctx, station.Email).Return(station, nil).Times(1)

	// Действие
	// Пароль верный, но email не подтвержден — различимое состояние
	sess, _, err := service.Login(ctx, station.Email, "secret")

	// Проверки
	require.ErrorIs(t, err, ErrEmailNotVerified)
	assert.Nil(t, sess)
}

func TestLogin_AccountNotFound(t *testing.T) {
	// Подготовка
	service, stationsMock, usersMock, _ := newTestAuthService(t)
	ctx := context.Background()
	email := "nobody@console.test"

	// Ожидания
	// Промах по обоим реестрам
	usersMock.EXPECT().GetAdminByEmail(ctx, email).Return(nil, nil).Times(1)
	stationsMock.EXPECT().GetByEmail(ctx, email).Return(nil, nil).Times(1)

	// Действие
	sess, _, err := service.Login(ctx, email, "secret")

	// Проверки
	require.ErrorIs(t, err, ErrAccountNotFound)
	assert.Nil(t, sess)
}

func TestLogin_RegistryError(t *testing.T) {
	// Подготовка
	service, _, usersMock, _ := newTestAuthService(t)
	ctx := context.Background()
	email := "admin@console.test"
	repoError := fmt.Errorf("бд недоступна")

	// Ожидания
	usersMock.EXPECT().GetAdminByEmail(ctx, email).Return(nil, repoError).Times(1)

	// Действие
	sess, _, err := service.Login(ctx, email, "secret")

	// Проверки
	require.Error(t, err)
	assert.Nil(t, sess)
	assert.ErrorContains(t, err, "could not resolve account")
}

func TestLogout_Success(t *testing.T) {
	// Подготовка
	service, _, _, sessionsMock := newTestAuthService(t)
	ctx := context.Background()

	// Ожидания
	sessionsMock.EXPECT().Destroy(ctx, "token-123").Return(nil).Times(1)

	// Действие
	err := service.Logout(ctx, "token-123")

	// Проверки
	require.NoError(t, err)
}

func TestSendResetLink_Success(t *testing.T) {
	// Подготовка
	service, _, _, sessionsMock := newTestAuthService(t)
	ctx := context.Background()
	email := "central@console.test"

	// Ожидания
	sessionsMock.EXPECT().CreateResetToken(ctx, email).Return("reset-token", nil).Times(1)

	// Действие
	token, err := service.SendResetLink(ctx, email)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "reset-token", token)
}

func TestResetPassword_Station_Success(t *testing.T) {
	// Подготовка
	service, stationsMock, usersMock, sessionsMock := newTestAuthService(t)
	ctx := context.Background()
	email := "central@console.test"
	station := &models.FireStation{
		ID:    uuid.New(),
		Email: email,
	}

	// Ожидания
	// 1. Токен гасится и возвращает email аккаунта
	sessionsMock.EXPECT().ConsumeResetToken(ctx, "reset-token").Return(email, nil).Times(1)

	// 2. Аккаунт не администратор
	usersMock.EXPECT().GetAdminByEmail(ctx, email).Return(nil, nil).Times(1)

	// 3. Пароль устанавливается станции
	stationsMock.EXPECT().GetByEmail(ctx, email).Return(station, nil).Times(1)
	stationsMock.EXPECT().
		SetPassword(ctx, email, gomock.Any()).
		Do(func(ctx context.Context, email, hash string) {
			// Репозиторию передается bcrypt-хэш, а не сырой пароль
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("newpass")))
		}).
		Return(nil).
		Times(1)

	// Действие
	err := service.ResetPassword(ctx, "reset-token", "newpass")

	// Проверки
	require.NoError(t, err)
}

func TestResetPassword_Admin_Success(t *testing.T) {
	// Подготовка
	service, _, usersMock, sessionsMock := newTestAuthService(t)
	ctx := context.Background()
	email := "admin@console.test"
	admin := &models.Admin{ID: uuid.New(), Email: email}

	// Ожидания
	sessionsMock.EXPECT().ConsumeResetToken(ctx, "reset-token").Return(email, nil).Times(1)
	usersMock.EXPECT().GetAdminByEmail(ctx, email).Return(admin, nil).Times(1)
	usersMock.EXPECT().SetAdminPassword(ctx, email, gomock.Any()).Return(nil).Times(1)

	// Действие
	err := service.ResetPassword(ctx, "reset-token", "newpass")

	// Проверки
	require.NoError(t, err)
}

func TestResetPassword_InvalidToken(t *testing.T) {
	// Подготовка
	service, _, _, sessionsMock := newTestAuthService(t)
	ctx := context.Background()

	// Ожидания
	sessionsMock.EXPECT().
		ConsumeResetToken(ctx, "expired-token").
		Return("", fmt.Errorf("токен не найден")).
		Times(1)

	// Действие
	err := service.ResetPassword(ctx, "expired-token", "newpass")

	// Проверки
	require.ErrorIs(t, err, ErrResetTokenInvalid)
}

func TestResetPassword_UnknownAccount(t *testing.T) {
	// Подготовка
	service, stationsMock, usersMock, sessionsMock := newTestAuthService(t)
	ctx := context.Background()
	email := "ghost@console.test"

	// Ожидания
	sessionsMock.EXPECT().ConsumeResetToken(ctx, "reset-token").Return(email, nil).Times(1)
	usersMock.EXPECT().GetAdminByEmail(ctx, email).Return(nil, nil).Times(1)
	stationsMock.EXPECT().GetByEmail(ctx, email).Return(nil, nil).Times(1)

	// Действие
	err := service.ResetPassword(ctx, "reset-token", "newpass")

	// Проверки
	require.ErrorIs(t, err, ErrAccountNotFound)
}
