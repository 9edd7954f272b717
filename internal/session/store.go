package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/fire_incident_console/internal/models"
)

// ErrNotFound возвращается, когда сессия отсутствует или истекла
var ErrNotFound = errors.New("session not found")

const (
	sessionKeyPrefix    = "session:"
	resetTokenKeyPrefix = "reset_token:"
)

// Store хранит сессии и токены сброса пароля в Redis с TTL.
// Жизненный цикл сессии: создание при входе, уничтожение при выходе.
type Store struct {
	rdb        *redis.Client
	sessionTTL time.Duration
	resetTTL   time.Duration
}

// NewStore создает хранилище сессий
func NewStore(rdb *redis.Client, sessionTTL, resetTTL time.Duration) *Store {
	return &Store{
		rdb:        rdb,
		sessionTTL: sessionTTL,
		resetTTL:   resetTTL,
	}
}

// Create сохраняет сессию и возвращает непрозрачный токен
func (s *Store) Create(ctx context.Context, sess *models.Session) (string, error) {
	token := uuid.NewString()
	sess.Token = token
	sess.CreatedAt = time.Now()

	val, err := json.Marshal(sess)
	if err != nil {
		return "", fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := s.rdb.Set(ctx, sessionKeyPrefix+token, val, s.sessionTTL).Err(); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}
	return token, nil
}

// Get возвращает сессию по токену или ErrNotFound
func (s *Store) Get(ctx context.Context, token string) (*models.Session, error) {
	val, err := s.rdb.Get(ctx, sessionKeyPrefix+token).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	sess := &models.Session{}
	if err := json.Unmarshal(val, sess); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return sess, nil
}

// Destroy удаляет сессию. Отсутствующий токен не является ошибкой.
func (s *Store) Destroy(ctx context.Context, token string) error {
	if err := s.rdb.Del(ctx, sessionKeyPrefix+token).Err(); err != nil {
		return fmt.Errorf("failed to destroy session: %w", err)
	}
	return nil
}

// CreateResetToken выпускает одноразовый токен сброса пароля для email
func (s *Store) CreateResetToken(ctx context.Context, email string) (string, error) {
	token := uuid.NewString()
	if err := s.rdb.Set(ctx, resetTokenKeyPrefix+token, email, s.resetTTL).Err(); err != nil {
		return "", fmt.Errorf("failed to store reset token: %w", err)
	}
	return token, nil
}

// ConsumeResetToken возвращает email токена и немедленно гасит токен
func (s *Store) ConsumeResetToken(ctx context.Context, token string) (string, error) {
	email, err := s.rdb.GetDel(ctx, resetTokenKeyPrefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to consume reset token: %w", err)
	}
	return email, nil
}
