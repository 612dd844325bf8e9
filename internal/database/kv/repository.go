// Package kv provides database operations for the device-local key/value store.
//
// # Usage
//
//	repo := kv.NewRepository(db)
//	err := repo.Set("quran_progress_u1_2_en.asad", payload)
//	keys, err := repo.KeysWithPrefix("quran_progress_u1_")
package kv

import (
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mrlokans/quranreader/internal/entities"
)

// ErrNotFound is returned by Get when no entry exists for the key.
var ErrNotFound = errors.New("entry not found")

const likeEscape = `\`

// Repository handles all local key/value database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new key/value repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Get returns the raw value stored under key.
func (r *Repository) Get(key string) (string, error) {
	var entry entities.LocalEntry
	err := r.db.Where("key = ?", key).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return entry.Value, nil
}

// Set creates or replaces the value stored under key.
func (r *Repository) Set(key, value string) error {
	entry := entities.LocalEntry{Key: key, Value: value}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
}

// Delete removes the entry stored under key. Deleting a missing key is not an error.
func (r *Repository) Delete(key string) error {
	return r.db.Where("key = ?", key).Delete(&entities.LocalEntry{}).Error
}

// DeleteAll removes every entry.
func (r *Repository) DeleteAll() error {
	return r.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&entities.LocalEntry{}).Error
}

// KeysWithPrefix returns all keys beginning with prefix, in key order.
func (r *Repository) KeysWithPrefix(prefix string) ([]string, error) {
	var keys []string
	err := r.db.Model(&entities.LocalEntry{}).
		Where("key LIKE ? ESCAPE ?", escapeLike(prefix)+"%", likeEscape).
		Order("key").
		Pluck("key", &keys).Error
	if err != nil {
		return nil, err
	}

	// LIKE is case-insensitive for ASCII in sqlite
	matched := keys[:0]
	for _, k := range keys {
		if strings.HasPrefix(k, prefix) {
			matched = append(matched, k)
		}
	}
	return matched, nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(
		likeEscape, likeEscape+likeEscape,
		"%", likeEscape+"%",
		"_", likeEscape+"_",
	).Replace(s)
}
