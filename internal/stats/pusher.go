package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/mrlokans/quranreader/internal/entities"
)

// RecordSource lists a user's progress records.
type RecordSource interface {
	All(userID string) []entities.ProgressRecord
}

// Updater stores statistics remotely.
type Updater interface {
	UpdateStats(ctx context.Context, req entities.UpdateStatsRequest) (*entities.StatsRecord, error)
}

// Pusher aggregates a user's records and sends the result to the remote
// store.
type Pusher struct {
	source  RecordSource
	updater Updater
	now     func() time.Time
}

func NewPusher(source RecordSource, updater Updater) *Pusher {
	return &Pusher{source: source, updater: updater, now: time.Now}
}

// SetClock replaces the time source used for streaks.
func (p *Pusher) SetClock(now func() time.Time) {
	p.now = now
}

// Summary returns the aggregated statistics without pushing them.
func (p *Pusher) Summary(userID string) entities.StatsRecord {
	return Aggregate(userID, p.source.All(userID), p.now())
}

// Push sends the user's current statistics and returns what the remote
// store recorded.
func (p *Pusher) Push(ctx context.Context, userID string) (*entities.StatsRecord, error) {
	summary := p.Summary(userID)
	saved, err := p.updater.UpdateStats(ctx, UpdateRequest(summary))
	if err != nil {
		return nil, fmt.Errorf("push stats for %s: %w", userID, err)
	}
	return saved, nil
}
