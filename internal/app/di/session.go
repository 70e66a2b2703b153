// Package di はアプリケーションの依存関係を組み立てます。
package di

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"marketer_backend/internal/feature/session/adapters"
	"marketer_backend/internal/feature/session/usecase"
)

// NewStateRepository creates a StateRepository implementation.
// If Redis is available, it returns a Redis-backed implementation.
// Otherwise, it falls back to the in-memory SQLite store.
func NewStateRepository(rdb *redis.Client, db *gorm.DB) usecase.StateRepository {
	if rdb != nil {
		return adapters.NewSessionRedis(rdb, "session", adapters.DefaultSessionTTL)
	}
	return adapters.NewSessionGorm(db)
}
