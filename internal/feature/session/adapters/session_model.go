package adapters

import "time"

// SessionModel はフォールバックDB（インメモリSQLite）のセッションテーブルです。
// 状態はJSONシリアライズして1カラムに保持します。
type SessionModel struct {
	ID        string    `gorm:"primaryKey;size:64"`
	State     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM.
func (SessionModel) TableName() string {
	return "sessions"
}
