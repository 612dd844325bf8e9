package progress

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mrlokans/quranreader/internal/entities"
	"github.com/mrlokans/quranreader/internal/stats"
)

// Remote is the authoritative progress store.
type Remote interface {
	GetProgress(ctx context.Context, userID string) ([]entities.ProgressRecord, error)
	SaveProgress(ctx context.Context, req entities.SaveProgressRequest) (*entities.ProgressRecord, error)
	DeleteProgress(ctx context.Context, userID string, chapter int, edition entities.Edition) error
}

// TrackedRecord is a progress record in the session set together with
// whether the remote store has confirmed it.
type TrackedRecord struct {
	entities.ProgressRecord
	State entities.SyncState `json:"syncState"`
}

// DeleteFallback decides what a failed remote delete does locally.
type DeleteFallback int

const (
	// DeleteFallbackWipeUser clears every local record of the user.
	DeleteFallbackWipeUser DeleteFallback = iota
	// DeleteFallbackRemoveTriple clears only the requested record.
	DeleteFallbackRemoveTriple
)

// DefaultDeleteFallback is the policy applied by new repositories.
const DefaultDeleteFallback = DeleteFallbackWipeUser

// ParseDeleteFallback reads a policy name as used in configuration:
// "wipe_user" (or empty) and "remove_record".
func ParseDeleteFallback(name string) (DeleteFallback, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "wipe_user":
		return DeleteFallbackWipeUser, nil
	case "remove_record":
		return DeleteFallbackRemoveTriple, nil
	}
	return DefaultDeleteFallback, fmt.Errorf("unknown delete fallback %q", name)
}

// LocalIDPrefix marks IDs of records the remote store never confirmed.
const LocalIDPrefix = "local_"

// Repository reads and writes reading progress against the remote store and
// falls back to the local store when the remote one is unavailable. It never
// returns remote or storage errors to callers.
//
// Each user has an in-memory session set holding at most one record per
// (chapter, edition). The set is only modified after the remote call has
// returned, so concurrent saves for the same triple resolve in completion
// order.
type Repository struct {
	remote Remote
	local  *LocalStore

	now            func() time.Time
	newID          func() string
	deleteFallback DeleteFallback

	mu       sync.RWMutex
	sessions map[string][]TrackedRecord
}

// NewRepository creates a repository over the remote and local tiers.
func NewRepository(remote Remote, local *LocalStore) *Repository {
	return &Repository{
		remote:         remote,
		local:          local,
		now:            time.Now,
		newID:          func() string { return LocalIDPrefix + uuid.NewString() },
		deleteFallback: DefaultDeleteFallback,
		sessions:       make(map[string][]TrackedRecord),
	}
}

// SetClock replaces the time source used to stamp local records.
func (r *Repository) SetClock(now func() time.Time) {
	r.now = now
}

// SetIDGenerator replaces the ID source for local records.
func (r *Repository) SetIDGenerator(newID func() string) {
	r.newID = newID
}

// SetDeleteFallback changes what a failed remote delete does locally.
func (r *Repository) SetDeleteFallback(policy DeleteFallback) {
	r.deleteFallback = policy
}

// Local returns the local tier.
func (r *Repository) Local() *LocalStore {
	return r.local
}

// LoadProgress refreshes the user's session set. Remote records replace it
// when the fetch succeeds; otherwise the locally stored records do.
func (r *Repository) LoadProgress(ctx context.Context, userID string) []TrackedRecord {
	records, err := r.remote.GetProgress(ctx, userID)
	state := entities.SyncStateSynced
	if err != nil {
		log.Printf("Progress repository: remote fetch for %s failed, using local records: %v", userID, err)
		records = r.local.All(userID)
		state = entities.SyncStateLocalOnly
	}

	tracked := make([]TrackedRecord, 0, len(records))
	for _, record := range records {
		tracked = mergeRecord(tracked, TrackedRecord{ProgressRecord: record, State: state})
	}

	r.mu.Lock()
	r.sessions[userID] = tracked
	r.mu.Unlock()

	return cloneTracked(tracked)
}

// GetProgress refreshes the session set and returns the record for the
// chapter and edition, if any.
func (r *Repository) GetProgress(ctx context.Context, userID string, chapter int, edition entities.Edition) (*entities.ProgressRecord, bool) {
	r.LoadProgress(ctx, userID)
	tracked, ok := r.Find(userID, chapter, edition)
	if !ok {
		return nil, false
	}
	return &tracked.ProgressRecord, true
}

// SaveProgress records the reader's position. When the remote write fails a
// local record stamped with the current time stands in for the remote one.
// Either way the record is mirrored locally and merged into the session set.
func (r *Repository) SaveProgress(ctx context.Context, req entities.SaveProgressRequest) TrackedRecord {
	saved, err := r.remote.SaveProgress(ctx, req)

	var tracked TrackedRecord
	if err == nil && saved != nil {
		tracked = TrackedRecord{ProgressRecord: *saved, State: entities.SyncStateSynced}
	} else {
		log.Printf("Progress repository: remote save for %s surah %d (%s) failed, keeping it locally: %v",
			req.UserID, req.ChapterNumber, req.EditionID, err)
		now := r.now()
		tracked = TrackedRecord{
			ProgressRecord: entities.ProgressRecord{
				ID:            r.newID(),
				UserID:        req.UserID,
				ChapterNumber: req.ChapterNumber,
				EditionID:     req.EditionID,
				CurrentPage:   req.CurrentPage,
				TotalPages:    req.TotalPages,
				LastRead:      now,
				CreatedAt:     now,
				UpdatedAt:     now,
			},
			State: entities.SyncStateLocalOnly,
		}
	}

	r.local.SaveFor(req.UserID, tracked.ProgressRecord)

	r.mu.Lock()
	r.sessions[req.UserID] = mergeRecord(r.sessions[req.UserID], tracked)
	r.mu.Unlock()

	return tracked
}

// DeleteProgress removes the record for the chapter and edition. A successful
// remote delete only drops it from the session set. A failed one applies the
// repository's DeleteFallback.
func (r *Repository) DeleteProgress(ctx context.Context, userID string, chapter int, edition entities.Edition) {
	err := r.remote.DeleteProgress(ctx, userID, chapter, edition)
	if err == nil {
		r.mu.Lock()
		r.sessions[userID] = removeTriple(r.sessions[userID], chapter, edition)
		r.mu.Unlock()
		return
	}

	switch r.deleteFallback {
	case DeleteFallbackRemoveTriple:
		log.Printf("Progress repository: remote delete for %s surah %d (%s) failed, removing local record: %v",
			userID, chapter, edition, err)
		r.local.Remove(userID, chapter, edition)
		r.mu.Lock()
		r.sessions[userID] = removeTriple(r.sessions[userID], chapter, edition)
		r.mu.Unlock()
	default:
		log.Printf("Progress repository: remote delete for %s failed, clearing all local records: %v", userID, err)
		r.local.Clear(userID)
		r.mu.Lock()
		r.sessions[userID] = nil
		r.mu.Unlock()
	}
}

// Session returns a copy of the user's session set in insertion order.
func (r *Repository) Session(userID string) []TrackedRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneTracked(r.sessions[userID])
}

// Records returns the plain records of the user's session set.
func (r *Repository) Records(userID string) []entities.ProgressRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]entities.ProgressRecord, 0, len(r.sessions[userID]))
	for _, tracked := range r.sessions[userID] {
		records = append(records, tracked.ProgressRecord)
	}
	return records
}

// Find looks the triple up in the session set without contacting either store.
func (r *Repository) Find(userID string, chapter int, edition entities.Edition) (TrackedRecord, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, tracked := range r.sessions[userID] {
		if tracked.SameTriple(chapter, edition) {
			return tracked, true
		}
	}
	return TrackedRecord{}, false
}

// ProgressPercentage is the rounded share of the chapter already read, or 0
// when the session set has no record for it.
func (r *Repository) ProgressPercentage(userID string, chapter int, edition entities.Edition) int {
	tracked, ok := r.Find(userID, chapter, edition)
	if !ok {
		return 0
	}
	return stats.ProgressPercentage(tracked.CurrentPage, tracked.TotalPages)
}

// mergeRecord drops any entry for the incoming record's triple and appends it.
func mergeRecord(set []TrackedRecord, incoming TrackedRecord) []TrackedRecord {
	set = removeTriple(set, incoming.ChapterNumber, incoming.EditionID)
	return append(set, incoming)
}

func removeTriple(set []TrackedRecord, chapter int, edition entities.Edition) []TrackedRecord {
	kept := make([]TrackedRecord, 0, len(set))
	for _, tracked := range set {
		if !tracked.SameTriple(chapter, edition) {
			kept = append(kept, tracked)
		}
	}
	return kept
}

func cloneTracked(set []TrackedRecord) []TrackedRecord {
	out := make([]TrackedRecord, len(set))
	copy(out, set)
	return out
}
