// Package session keeps the server-side half of a login in redis. A JWT is
// only accepted while its session key still exists, so deleting the key is a
// real logout rather than waiting out the token expiry.
package session

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	redisv9 "github.com/redis/go-redis/v9"
)

type Store struct {
	client *redisv9.Client
	ttl    time.Duration
}

func NewStore(client *redisv9.Client, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &Store{client: client, ttl: ttl}
}

// Create binds a fresh session id to the user and returns it.
func (s *Store) Create(ctx context.Context, userID uint) (string, error) {
	sessionID := uuid.NewString()
	key := s.key(sessionID)
	if err := s.client.Set(ctx, key, strconv.FormatUint(uint64(userID), 10), s.ttl).Err(); err != nil {
		return "", fmt.Errorf("redis set session failed: %w", err)
	}
	return sessionID, nil
}

func (s *Store) Exists(ctx context.Context, sessionID string) (bool, error) {
	count, err := s.client.Exists(ctx, s.key(sessionID)).Result()
	if err != nil {
		return false, fmt.Errorf("redis check session failed: %w", err)
	}
	return count > 0, nil
}

// Delete is idempotent; revoking an already-revoked session is not an error.
func (s *Store) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, s.key(sessionID)).Err(); err != nil {
		return fmt.Errorf("redis delete session failed: %w", err)
	}
	return nil
}

func (s *Store) key(sessionID string) string {
	return fmt.Sprintf("session:%s", sessionID)
}
