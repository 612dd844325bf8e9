package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/mrlokans/quranreader/internal/config"
	"github.com/mrlokans/quranreader/internal/tasks"
)

// UserLister lists the readers that have local progress.
type UserLister interface {
	Users() []string
}

// Dispatch hands a batch of users to whatever pushes their statistics.
type Dispatch func(ctx context.Context, userIDs []string) error

// QueueDispatch enqueues one stats push task per user.
func QueueDispatch(client *tasks.Client) Dispatch {
	return func(_ context.Context, userIDs []string) error {
		_, err := client.EnqueuePushStats(0, userIDs...)
		return err
	}
}

// DirectDispatch pushes every user's statistics inline. Failures do not stop
// the remaining users; they are joined into the returned error.
func DirectDispatch(pusher tasks.StatsPusher) Dispatch {
	return func(ctx context.Context, userIDs []string) error {
		var errs []error
		for _, id := range userIDs {
			if _, err := pusher.Push(ctx, id); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	}
}

// SyncStatus describes the last scheduled run.
type SyncStatus struct {
	LastRun   *time.Time `json:"lastRun,omitempty"`
	Users     int        `json:"users"`
	LastError string     `json:"lastError,omitempty"`
}

// StatsSyncScheduler periodically pushes the statistics of every local
// reader to the remote store.
type StatsSyncScheduler struct {
	cfg      config.StatsSync
	users    UserLister
	dispatch Dispatch

	cron       *cron.Cron
	entryID    cron.EntryID
	mu         sync.RWMutex
	isRunning  bool
	cancelFunc context.CancelFunc

	statusMu sync.RWMutex
	status   SyncStatus
}

func NewStatsSyncScheduler(cfg config.StatsSync, users UserLister, dispatch Dispatch) *StatsSyncScheduler {
	return &StatsSyncScheduler{
		cfg:      cfg,
		users:    users,
		dispatch: dispatch,
		cron:     cron.New(cron.WithParser(parser)),
	}
}

// Start schedules the sync when it is enabled. The scheduler stops by itself
// when ctx is cancelled.
func (s *StatsSyncScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}
	if !s.cfg.Enabled {
		log.Printf("Stats sync scheduler: disabled")
		return nil
	}
	if err := ValidateSchedule(s.cfg.Schedule); err != nil {
		return fmt.Errorf("invalid cron schedule '%s': %w", s.cfg.Schedule, err)
	}

	runCtx, cancel := context.WithCancel(ctx)
	entryID, err := s.cron.AddFunc(s.cfg.Schedule, func() {
		s.runSync(runCtx)
	})
	if err != nil {
		cancel()
		return fmt.Errorf("failed to schedule stats sync: %w", err)
	}
	s.entryID = entryID
	s.cancelFunc = cancel

	s.cron.Start()
	s.isRunning = true

	nextRun, _ := NextRun(s.cfg.Schedule, time.Now())
	log.Printf("Stats sync scheduler: started with schedule '%s' (%s). Next run: %v",
		s.cfg.Schedule, Describe(s.cfg.Schedule), nextRun)

	go func() {
		<-runCtx.Done()
		s.Stop()
	}()

	return nil
}

// Stop waits for a running sync and stops the schedule.
func (s *StatsSyncScheduler) Stop() {
	s.mu.Lock()
	if !s.isRunning {
		s.mu.Unlock()
		return
	}
	s.isRunning = false
	cancel := s.cancelFunc
	s.cancelFunc = nil
	entryID := s.entryID
	s.mu.Unlock()

	<-s.cron.Stop().Done()
	s.cron.Remove(entryID)
	if cancel != nil {
		cancel()
	}

	log.Printf("Stats sync scheduler: stopped")
}

// RunNow performs a sync immediately and returns its error.
func (s *StatsSyncScheduler) RunNow(ctx context.Context) error {
	return s.runSync(ctx)
}

func (s *StatsSyncScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// GetNextRunTime returns when the next sync will occur, or nil when stopped.
func (s *StatsSyncScheduler) GetNextRunTime() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning {
		return nil
	}
	entry := s.cron.Entry(s.entryID)
	if !entry.Valid() {
		return nil
	}
	next := entry.Next
	return &next
}

// Status returns the outcome of the most recent run.
func (s *StatsSyncScheduler) Status() SyncStatus {
	s.statusMu.RLock()
	defer s.statusMu.RUnlock()
	return s.status
}

func (s *StatsSyncScheduler) runSync(ctx context.Context) error {
	users := s.users.Users()
	started := time.Now()

	var err error
	if len(users) == 0 {
		log.Printf("Stats sync: no readers with local progress")
	} else {
		log.Printf("Stats sync: pushing stats for %d readers", len(users))
		err = s.dispatch(ctx, users)
	}

	status := SyncStatus{LastRun: &started, Users: len(users)}
	if err != nil {
		status.LastError = err.Error()
		log.Printf("Stats sync: failed: %v", err)
	} else if len(users) > 0 {
		log.Printf("Stats sync: dispatched %d readers in %v", len(users), time.Since(started).Round(time.Millisecond))
	}

	s.statusMu.Lock()
	s.status = status
	s.statusMu.Unlock()

	return err
}
