package term

import (
	"context"
	"encoding/json"
	"fmt"

	"yogasund/models"
	"yogasund/utils"

	"github.com/go-redis/redis/v8"
)

// SessionStore persists wizard state between steps. The Redis store is the
// production implementation.
type SessionStore interface {
	Save(ctx context.Context, session *models.TermBookingSession) error
	Load(ctx context.Context, sessionID string) (*models.TermBookingSession, error)
	Delete(ctx context.Context, sessionID string) error
}

// RedisSessionStore keeps wizard sessions in Redis. Every save refreshes the
// TTL, so the wizard expires only after a period of inactivity.
type RedisSessionStore struct {
	Client *redis.Client
}

func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{Client: client}
}

func (s *RedisSessionStore) Save(ctx context.Context, session *models.TermBookingSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal term booking session: %w", err)
	}
	if err := s.Client.Set(ctx, utils.TermSessionPrefix+session.SessionID, data, utils.TermSessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to store term booking session: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) Load(ctx context.Context, sessionID string) (*models.TermBookingSession, error) {
	data, err := s.Client.Get(ctx, utils.TermSessionPrefix+sessionID).Result()
	if err != nil {
		return nil, ErrSessionNotFound
	}
	var session models.TermBookingSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse term booking session: %w", err)
	}
	return &session, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.Client.Del(ctx, utils.TermSessionPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("failed to delete term booking session: %w", err)
	}
	return nil
}
