package progress

import (
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/mrlokans/quranreader/internal/entities"
	"github.com/mrlokans/quranreader/internal/storage"
)

// LocalStore is the device-local tier of progress records.
//
// It keeps an index of each user's keys so listing a user's records does not
// rescan the whole store. A user's index is built by one prefix scan the first
// time the user is touched and maintained on every write afterwards, so the
// LocalStore must be the only writer of progress keys in its adapter.
type LocalStore struct {
	adapter storage.Adapter

	mu    sync.Mutex
	index map[string]map[string]struct{}
}

// NewLocalStore creates a local tier over adapter.
func NewLocalStore(adapter storage.Adapter) *LocalStore {
	return &LocalStore{
		adapter: adapter,
		index:   make(map[string]map[string]struct{}),
	}
}

// keysLocked returns the key set of userID, scanning the adapter on first use.
// Caller must hold s.mu.
func (s *LocalStore) keysLocked(userID string) map[string]struct{} {
	if keys, ok := s.index[userID]; ok {
		return keys
	}

	keys := make(map[string]struct{})
	for _, key := range s.adapter.KeysWithPrefix(UserPrefix(userID)) {
		if owner, ok := s.keyOwner(key); ok && owner == userID {
			keys[key] = struct{}{}
		}
	}
	s.index[userID] = keys
	return keys
}

// keyOwner returns the user a stored key belongs to. A readable record names
// its own chapter and edition, so the owner is whatever precedes that suffix;
// this holds for editions that are empty or contain '_'. Unreadable entries
// fall back to ParseKey.
func (s *LocalStore) keyOwner(key string) (string, bool) {
	var record entities.ProgressRecord
	if !s.adapter.Get(key, &record) {
		owner, _, _, ok := ParseKey(key)
		return owner, ok
	}

	rest, found := strings.CutPrefix(key, KeyPrefix)
	if !found {
		return "", false
	}
	owner, found := strings.CutSuffix(rest, "_"+strconv.Itoa(record.ChapterNumber)+"_"+string(record.EditionID))
	if !found || owner == "" {
		return "", false
	}
	return owner, true
}

// Save writes record under its own user, chapter and edition.
func (s *LocalStore) Save(record entities.ProgressRecord) {
	s.SaveFor(record.UserID, record)
}

// SaveFor writes record under userID, whatever user the record names.
func (s *LocalStore) SaveFor(userID string, record entities.ProgressRecord) {
	key := MakeKey(userID, record.ChapterNumber, record.EditionID)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.adapter.Set(key, record)
	s.keysLocked(userID)[key] = struct{}{}
}

// Get returns the stored record for the triple.
func (s *LocalStore) Get(userID string, chapter int, edition entities.Edition) (*entities.ProgressRecord, bool) {
	var record entities.ProgressRecord
	if !s.adapter.Get(MakeKey(userID, chapter, edition), &record) {
		return nil, false
	}
	return &record, true
}

// All returns the user's stored records ordered by chapter, then edition.
// Entries that cannot be read are skipped.
func (s *LocalStore) All(userID string) []entities.ProgressRecord {
	s.mu.Lock()
	keys := make([]string, 0, len(s.keysLocked(userID)))
	for key := range s.keysLocked(userID) {
		keys = append(keys, key)
	}
	s.mu.Unlock()

	records := make([]entities.ProgressRecord, 0, len(keys))
	for _, key := range keys {
		var record entities.ProgressRecord
		if s.adapter.Get(key, &record) {
			records = append(records, record)
		}
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].ChapterNumber != records[j].ChapterNumber {
			return records[i].ChapterNumber < records[j].ChapterNumber
		}
		return records[i].EditionID < records[j].EditionID
	})
	return records
}

// Remove deletes the stored record for the triple.
func (s *LocalStore) Remove(userID string, chapter int, edition entities.Edition) {
	key := MakeKey(userID, chapter, edition)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.adapter.Remove(key)
	delete(s.keysLocked(userID), key)
}

// Clear deletes every stored record of the user.
func (s *LocalStore) Clear(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key := range s.keysLocked(userID) {
		s.adapter.Remove(key)
	}
	s.index[userID] = make(map[string]struct{})
}

// Users lists every user that has at least one stored record.
func (s *LocalStore) Users() []string {
	seen := make(map[string]struct{})
	for _, key := range s.adapter.KeysWithPrefix(KeyPrefix) {
		if userID, ok := s.keyOwner(key); ok {
			seen[userID] = struct{}{}
		}
	}

	users := make([]string, 0, len(seen))
	for userID := range seen {
		users = append(users, userID)
	}
	sort.Strings(users)
	return users
}
