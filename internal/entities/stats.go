package entities

import (
	"time"
)

// StatsRecord holds the aggregate reading statistics of one user.
type StatsRecord struct {
	ID              string     `gorm:"primaryKey;size:64" json:"id"`
	UserID          string     `gorm:"uniqueIndex;size:255" json:"userId"`
	TotalSurahsRead int        `json:"totalSurahsRead"`
	TotalVersesRead int        `json:"totalVersesRead"`
	ReadingStreak   int        `json:"readingStreak"`
	LastActivity    *time.Time `json:"lastActivity"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

func (StatsRecord) TableName() string {
	return "user_stats"
}

// UpdateStatsRequest is a partial update; nil fields are left untouched.
type UpdateStatsRequest struct {
	UserID          string     `json:"userId" binding:"required"`
	TotalSurahsRead *int       `json:"totalSurahsRead,omitempty"`
	TotalVersesRead *int       `json:"totalVersesRead,omitempty"`
	ReadingStreak   *int       `json:"readingStreak,omitempty"`
	LastActivity    *time.Time `json:"lastActivity,omitempty"`
}
