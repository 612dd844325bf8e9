// Package stats provides database operations for per-user reading statistics
// held by the progress backend.
package stats

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mrlokans/quranreader/internal/entities"
)

// Repository handles all statistics database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new stats repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Get returns the user's statistics, or nil when none have been recorded.
func (r *Repository) Get(userID string) (*entities.StatsRecord, error) {
	var record entities.StatsRecord
	err := r.db.Where("user_id = ?", userID).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// Apply merges the non-nil fields of req into the user's statistics,
// creating the row on first use.
func (r *Repository) Apply(req entities.UpdateStatsRequest) (*entities.StatsRecord, error) {
	var record entities.StatsRecord
	now := time.Now()

	err := r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("user_id = ?", req.UserID).First(&record)
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			record = entities.StatsRecord{
				ID:        uuid.NewString(),
				UserID:    req.UserID,
				CreatedAt: now,
			}
		} else if result.Error != nil {
			return result.Error
		}

		if req.TotalSurahsRead != nil {
			record.TotalSurahsRead = *req.TotalSurahsRead
		}
		if req.TotalVersesRead != nil {
			record.TotalVersesRead = *req.TotalVersesRead
		}
		if req.ReadingStreak != nil {
			record.ReadingStreak = *req.ReadingStreak
		}
		if req.LastActivity != nil {
			record.LastActivity = req.LastActivity
		}
		record.UpdatedAt = now

		return tx.Save(&record).Error
	})
	if err != nil {
		return nil, err
	}
	return &record, nil
}
