package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shenikar/fire_incident_console/internal/models"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// Ошибки аутентификации. Хендлер различает их, чтобы показать пользователю
// осмысленное сообщение вместо общего отказа.
var (
	// ErrEmailNotVerified - вход с неподтвержденным email
	ErrEmailNotVerified = errors.New("email not verified")
	// ErrInvalidCredentials - неверный email или пароль
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrAccountNotFound - аккаунт не найден ни в реестре администраторов,
	// ни в реестре станций
	ErrAccountNotFound = errors.New("account not found")
	// ErrResetTokenInvalid - токен сброса пароля не существует или истек
	ErrResetTokenInvalid = errors.New("reset token invalid or expired")
)

// AuthService определяет контракт аутентификации и жизненного цикла сессии
type AuthService interface {
	Login(ctx context.Context, email, password string) (*models.Session, string, error)
	Logout(ctx context.Context, token string) error
	SendResetLink(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, token, newPassword string) error
}

type authService struct {
	stations StationRepository
	users    UserRepository
	sessions SessionStore
	logger   *logrus.Logger
}

// NewAuthService создает сервис аутентификации
func NewAuthService(stations StationRepository, users UserRepository, sessions SessionStore, logger *logrus.Logger) AuthService {
	return &authService{
		stations: stations,
		users:    users,
		sessions: sessions,
		logger:   logger,
	}
}

// Login проверяет учетные данные, разрешает роль аккаунта и создает сессию.
// Роль определяется по реестрам: сначала администраторы, затем станции.
func (s *authService) Login(ctx context.Context, email, password string) (*models.Session, string, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "auth",
		"method":  "Login",
		"email":   email,
	})
	log.Info("Attempting to sign in")

	admin, err := s.users.GetAdminByEmail(ctx, email)
	if err != nil {
		log.WithError(err).Error("Failed to query admin registry")
		return nil, "", fmt.Errorf("service: could not resolve account: %w", err)
	}
	if admin != nil {
		if err := s.checkCredentials(admin.PasswordHash, password, admin.EmailVerified); err != nil {
			log.WithError(err).Warn("Admin sign in rejected")
			return nil, "", err
		}

		sess := &models.Session{
			AccountType: models.AccountTypeAdmin,
			UserDocID:   admin.ID.String(),
			Email:       admin.Email,
		}
		token, err := s.sessions.Create(ctx, sess)
		if err != nil {
			log.WithError(err).Error("Failed to create admin session")
			return nil, "", fmt.Errorf("service: could not create session: %w", err)
		}
		log.Info("Admin signed in successfully")
		return sess, token, nil
	}

	station, err := s.stations.GetByEmail(ctx, email)
	if err != nil {
		log.WithError(err).Error("Failed to query station registry")
		return nil, "", fmt.Errorf("service: could not resolve account: %w", err)
	}
	if station == nil {
		// Аккаунт не найден ни в одном реестре - отдельное состояние,
		// а не молчаливый отказ в доступе
		log.Warn("Account found in neither admin nor station registry")
		return nil, "", ErrAccountNotFound
	}

	if err := s.checkCredentials(station.PasswordHash, password, station.EmailVerified); err != nil {
		log.WithError(err).Warn("Station sign in rejected")
		return nil, "", err
	}

	sess := &models.Session{
		AccountType:  models.AccountTypeFireStation,
		StationDocID: station.ID.String(),
		StationName:  station.StationName,
		Email:        station.Email,
	}
	token, err := s.sessions.Create(ctx, sess)
	if err != nil {
		log.WithError(err).Error("Failed to create station session")
		return nil, "", fmt.Errorf("service: could not create session: %w", err)
	}

	log.WithField("station_id", station.ID).Info("Station signed in successfully")
	return sess, token, nil
}

// checkCredentials сверяет пароль и флаг подтверждения email
func (s *authService) checkCredentials(passwordHash, password string, emailVerified bool) error {
	if err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	if !emailVerified {
		return ErrEmailNotVerified
	}
	return nil
}

// Logout уничтожает сессию и все ее атрибуты
func (s *authService) Logout(ctx context.Context, token string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "auth",
		"method":  "Logout",
	})

	if err := s.sessions.Destroy(ctx, token); err != nil {
		log.WithError(err).Error("Failed to destroy session")
		return fmt.Errorf("service: could not destroy session: %w", err)
	}
	log.Info("Session destroyed")
	return nil
}

// SendResetLink выпускает токен сброса пароля. Токен выпускается даже для
// неизвестного email, чтобы не раскрывать существование аккаунта.
func (s *authService) SendResetLink(ctx context.Context, email string) (string, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "auth",
		"method":  "SendResetLink",
		"email":   email,
	})

	token, err := s.sessions.CreateResetToken(ctx, email)
	if err != nil {
		log.WithError(err).Error("Failed to create reset token")
		return "", fmt.Errorf("service: could not create reset token: %w", err)
	}

	log.Info("Password reset token issued")
	return token, nil
}

// ResetPassword гасит токен сброса и устанавливает новый пароль аккаунту
func (s *authService) ResetPassword(ctx context.Context, token, newPassword string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "auth",
		"method":  "ResetPassword",
	})

	email, err := s.sessions.ConsumeResetToken(ctx, token)
	if err != nil {
		log.WithError(err).Warn("Reset token rejected")
		return ErrResetTokenInvalid
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("service: could not hash password: %w", err)
	}

	admin, err := s.users.GetAdminByEmail(ctx, email)
	if err != nil {
		log.WithError(err).Error("Failed to query admin registry")
		return fmt.Errorf("service: could not resolve account: %w", err)
	}
	if admin != nil {
		if err := s.users.SetAdminPassword(ctx, email, string(hash)); err != nil {
			log.WithError(err).Error("Failed to set admin password")
			return fmt.Errorf("service: could not set password: %w", err)
		}
		log.Info("Admin password reset")
		return nil
	}

	station, err := s.stations.GetByEmail(ctx, email)
	if err != nil {
		log.WithError(err).Error("Failed to query station registry")
		return fmt.Errorf("service: could not resolve account: %w", err)
	}
	if station == nil {
		log.Warn("Reset token for unknown account")
		return ErrAccountNotFound
	}

	if err := s.stations.SetPassword(ctx, email, string(hash)); err != nil {
		log.WithError(err).Error("Failed to set station password")
		return fmt.Errorf("service: could not set password: %w", err)
	}
	log.Info("Station password reset")
	return nil
}
