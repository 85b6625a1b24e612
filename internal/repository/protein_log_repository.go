package repository

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"fitweek/internal/model"
)

type ProteinLogRepository struct {
	db *gorm.DB
}

func NewProteinLogRepository(db *gorm.DB) *ProteinLogRepository {
	return &ProteinLogRepository{db: db}
}

func (r *ProteinLogRepository) Create(entry *model.ProteinLog) error {
	if err := r.db.Create(entry).Error; err != nil {
		return fmt.Errorf("create protein log failed: %w", err)
	}
	return nil
}

// ListByUserSince returns the user's entries with logged_at >= since, newest
// first. The table is append-only, so this is the only read shape needed.
func (r *ProteinLogRepository) ListByUserSince(userID uint, since time.Time) ([]model.ProteinLog, error) {
	var entries []model.ProteinLog
	if err := r.db.
		Where("user_id = ? AND logged_at >= ?", userID, since).
		Order("logged_at DESC").
		Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("query protein logs failed: %w", err)
	}
	return entries, nil
}
