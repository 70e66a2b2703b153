// Package adapters はセッション状態ストアの実装を提供します。
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"marketer_backend/internal/feature/session/domain/entity"
	"marketer_backend/internal/feature/session/usecase"
)

// DefaultSessionTTL はセッションの有効期限です。期限切れはRedisのTTLに任せます。
const DefaultSessionTTL = 24 * time.Hour

// SessionRedis implements usecase.StateRepository using Redis.
type SessionRedis struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// SessionRedisがStateRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.StateRepository = (*SessionRedis)(nil)

// NewSessionRedis creates a new SessionRedis instance.
// If ttl is 0, it defaults to DefaultSessionTTL.
func NewSessionRedis(client *redis.Client, prefix string, ttl time.Duration) *SessionRedis {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionRedis{client: client, prefix: prefix, ttl: ttl}
}

// sessionKey returns the Redis key for a session.
func (r *SessionRedis) sessionKey(id string) string {
	return fmt.Sprintf("%s:%s", r.prefix, id)
}

// Save persists the whole session state as JSON, refreshing the TTL.
func (r *SessionRedis) Save(ctx context.Context, id string, st *entity.State) error {
	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("failed to marshal session state: %w", err)
	}
	return r.client.Set(ctx, r.sessionKey(id), data, r.ttl).Err()
}

// Find retrieves a session state by its ID.
func (r *SessionRedis) Find(ctx context.Context, id string) (*entity.State, error) {
	data, err := r.client.Get(ctx, r.sessionKey(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, usecase.ErrSessionNotFound
		}
		return nil, err
	}

	var st entity.State
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session state: %w", err)
	}
	return &st, nil
}

// Delete removes a session state.
func (r *SessionRedis) Delete(ctx context.Context, id string) error {
	return r.client.Del(ctx, r.sessionKey(id)).Err()
}
