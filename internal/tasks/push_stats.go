package tasks

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mikestefanello/backlite"

	"github.com/mrlokans/quranreader/internal/entities"
)

// StatsPusher sends a user's aggregated statistics to the remote store.
type StatsPusher interface {
	Push(ctx context.Context, userID string) (*entities.StatsRecord, error)
}

// pushStatsLimits is applied by PushStatsTask.Config. NewPushStatsQueue
// replaces it before the queue is registered.
var pushStatsLimits = DefaultConfig()

// PushStatsTask recomputes one user's statistics from local progress and
// stores them remotely.
type PushStatsTask struct {
	UserID string `json:"user_id"`
}

// Config returns the queue configuration for stats pushes.
func (t PushStatsTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "push_stats",
		MaxAttempts: pushStatsLimits.MaxRetries,
		Backoff:     pushStatsLimits.RetryDelay,
		Timeout:     pushStatsLimits.TaskTimeout,
		Retention: &backlite.Retention{
			Duration:   pushStatsLimits.RetentionDuration,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

// PushStatsProcessor creates a processor function for PushStatsTask.
func PushStatsProcessor(pusher StatsPusher) backlite.QueueProcessor[PushStatsTask] {
	return func(ctx context.Context, task PushStatsTask) error {
		if pusher == nil {
			return fmt.Errorf("stats pusher not configured")
		}
		if task.UserID == "" {
			return fmt.Errorf("push stats: empty user ID")
		}

		saved, err := pusher.Push(ctx, task.UserID)
		if err != nil {
			return err
		}

		log.Printf("[TASK] Pushed stats for %s: %d surahs, %d verses, streak %d",
			task.UserID, saved.TotalSurahsRead, saved.TotalVersesRead, saved.ReadingStreak)
		return nil
	}
}

// NewPushStatsQueue creates a backlite queue for stats pushes using the
// attempt, backoff and timeout limits of cfg.
func NewPushStatsQueue(pusher StatsPusher, cfg Config) backlite.Queue {
	pushStatsLimits = cfg
	return backlite.NewQueue(PushStatsProcessor(pusher))
}

// EnqueuePushStats schedules a stats push for each user, waiting delay before
// the first attempt.
func (c *Client) EnqueuePushStats(delay time.Duration, userIDs ...string) ([]string, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}

	tasks := make([]backlite.Task, 0, len(userIDs))
	for _, id := range userIDs {
		tasks = append(tasks, PushStatsTask{UserID: id})
	}

	op := c.client.Add(tasks...)
	if delay > 0 {
		op = op.Wait(delay)
	}
	ids, err := op.Save()
	if err != nil {
		return nil, fmt.Errorf("enqueue stats push: %w", err)
	}
	return ids, nil
}

// PushStatsHook returns a progress hook that enqueues a stats push for the
// user whose progress changed. Failures are logged.
func PushStatsHook(c *Client) func(userID string) {
	return func(userID string) {
		if _, err := c.EnqueuePushStats(0, userID); err != nil {
			log.Printf("[TASK ERROR] Failed to enqueue stats push for %s: %v", userID, err)
		}
	}
}
