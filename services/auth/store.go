package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"yogasund/models"
	"yogasund/utils"

	"github.com/go-redis/redis/v8"
)

// RedisSessionStore keeps member sessions in Redis, keyed by the sha256 hash
// of the portal token. The entry TTL tracks the braincore token expiry so
// stale sessions age out on their own.
type RedisSessionStore struct {
	client *redis.Client
}

func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

func sessionKey(tokenHash string) string {
	return utils.MemberSessionPrefix + tokenHash
}

func (s *RedisSessionStore) Save(ctx context.Context, tokenHash string, session models.MemberSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal member session: %w", err)
	}
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("refusing to store an already expired session")
	}
	if err := s.client.Set(ctx, sessionKey(tokenHash), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save member session: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) Get(ctx context.Context, tokenHash string) (*models.MemberSession, error) {
	data, err := s.client.Get(ctx, sessionKey(tokenHash)).Result()
	if err != nil {
		return nil, err
	}
	var session models.MemberSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal member session: %w", err)
	}
	return &session, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, tokenHash string) error {
	return s.client.Del(ctx, sessionKey(tokenHash)).Err()
}
