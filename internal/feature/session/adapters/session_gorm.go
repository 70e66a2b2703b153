package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"marketer_backend/internal/feature/session/domain/entity"
	"marketer_backend/internal/feature/session/usecase"
)

// SessionGorm implements usecase.StateRepository using GORM.
// Redisが利用できない環境向けのフォールバックです。
type SessionGorm struct {
	db *gorm.DB
}

// SessionGormがStateRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.StateRepository = (*SessionGorm)(nil)

// NewSessionGorm creates a new SessionGorm instance.
func NewSessionGorm(db *gorm.DB) *SessionGorm {
	return &SessionGorm{db: db}
}

// Save persists the session state, inserting or updating by primary key.
func (g *SessionGorm) Save(ctx context.Context, id string, st *entity.State) error {
	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("failed to marshal session state: %w", err)
	}
	model := SessionModel{ID: id, State: string(data)}
	return g.db.WithContext(ctx).Save(&model).Error
}

// Find retrieves a session state by its ID.
func (g *SessionGorm) Find(ctx context.Context, id string) (*entity.State, error) {
	var model SessionModel
	if err := g.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrSessionNotFound
		}
		return nil, err
	}

	var st entity.State
	if err := json.Unmarshal([]byte(model.State), &st); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session state: %w", err)
	}
	return &st, nil
}

// Delete removes a session state.
func (g *SessionGorm) Delete(ctx context.Context, id string) error {
	return g.db.WithContext(ctx).Delete(&SessionModel{}, "id = ?", id).Error
}
