// Package db はセッションストアのフォールバック用データベース接続を提供します。
package db

import (
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"marketer_backend/internal/feature/session/adapters"
)

// OpenDB はインメモリSQLiteデータベースを開き、セッションテーブルを移行します。
// プロセス終了と同時に消えるため、「セッションは再起動をまたいで残らない」性質を保ちます。
// Redisが利用できない環境でのフォールバックとしてのみ使用します。
func OpenDB() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to open in-memory sqlite: %v", err)
	}

	if err := db.AutoMigrate(&adapters.SessionModel{}); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}
