// Package progress provides database operations for reading progress rows
// held by the progress backend.
//
// # Usage
//
//	repo := progress.NewRepository(db)
//	record, err := repo.Upsert(req)
//	records, err := repo.ListByUser("u1")
package progress

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mrlokans/quranreader/internal/entities"
)

// Repository handles all reading progress database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new progress repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Upsert writes the position for the request's (user, chapter, edition).
// An existing row keeps its ID and CreatedAt; everything else is replaced.
func (r *Repository) Upsert(req entities.SaveProgressRequest) (*entities.ProgressRecord, error) {
	var record entities.ProgressRecord
	now := time.Now()

	err := r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("user_id = ? AND chapter_number = ? AND edition_id = ?",
			req.UserID, req.ChapterNumber, req.EditionID).First(&record)

		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			record = entities.ProgressRecord{
				ID:            uuid.NewString(),
				UserID:        req.UserID,
				ChapterNumber: req.ChapterNumber,
				EditionID:     req.EditionID,
				CurrentPage:   req.CurrentPage,
				TotalPages:    req.TotalPages,
				LastRead:      now,
				CreatedAt:     now,
				UpdatedAt:     now,
			}
			return tx.Create(&record).Error
		} else if result.Error != nil {
			return result.Error
		}

		record.CurrentPage = req.CurrentPage
		record.TotalPages = req.TotalPages
		record.LastRead = now
		record.UpdatedAt = now
		return tx.Save(&record).Error
	})
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// ListByUser returns every progress row of the user ordered by chapter and edition.
func (r *Repository) ListByUser(userID string) ([]entities.ProgressRecord, error) {
	var records []entities.ProgressRecord
	err := r.db.Where("user_id = ?", userID).
		Order("chapter_number, edition_id").
		Find(&records).Error
	return records, err
}

// Delete removes the row for the triple and reports whether one existed.
func (r *Repository) Delete(userID string, chapter int, edition entities.Edition) (bool, error) {
	result := r.db.Where("user_id = ? AND chapter_number = ? AND edition_id = ?",
		userID, chapter, edition).Delete(&entities.ProgressRecord{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
