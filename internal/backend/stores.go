package backend

import "github.com/mrlokans/quranreader/internal/entities"

// ProgressStore persists progress rows keyed by (user, chapter, edition).
type ProgressStore interface {
	Upsert(req entities.SaveProgressRequest) (*entities.ProgressRecord, error)
	ListByUser(userID string) ([]entities.ProgressRecord, error)
	Delete(userID string, chapter int, edition entities.Edition) (bool, error)
}

// StatsStore persists per-user statistics.
type StatsStore interface {
	Get(userID string) (*entities.StatsRecord, error)
	Apply(req entities.UpdateStatsRequest) (*entities.StatsRecord, error)
}
