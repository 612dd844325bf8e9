package entities

import (
	"time"
)

// ProgressRecord is the reader's position in one chapter for one edition.
// There is at most one logical record per (UserID, ChapterNumber, EditionID).
type ProgressRecord struct {
	ID            string    `gorm:"primaryKey;size:64" json:"id"`
	UserID        string    `gorm:"size:255;uniqueIndex:idx_progress_triple" json:"userId"`
	ChapterNumber int       `gorm:"uniqueIndex:idx_progress_triple" json:"chapterNumber"`
	EditionID     Edition   `gorm:"size:50;uniqueIndex:idx_progress_triple" json:"editionId"`
	CurrentPage   int       `json:"currentPage"`
	TotalPages    int       `json:"totalPages"`
	LastRead      time.Time `json:"lastRead"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (ProgressRecord) TableName() string {
	return "reading_progress"
}

// SameTriple reports whether both records describe the same chapter and edition.
func (p ProgressRecord) SameTriple(chapter int, edition Edition) bool {
	return p.ChapterNumber == chapter && p.EditionID == edition
}

// SaveProgressRequest is the write payload for a progress record.
type SaveProgressRequest struct {
	UserID        string  `json:"userId" binding:"required"`
	ChapterNumber int     `json:"chapterNumber" binding:"required,min=1,max=114"`
	EditionID     Edition `json:"editionId" binding:"required,oneof=quran-uthmani ur.jalandhry en.asad"`
	CurrentPage   int     `json:"currentPage" binding:"required,min=1"`
	TotalPages    int     `json:"totalPages" binding:"required,min=1"`
}

// SyncState tells whether an in-memory record was confirmed by the remote store.
type SyncState string

const (
	SyncStateSynced    SyncState = "synced"
	SyncStateLocalOnly SyncState = "local_only"
)
