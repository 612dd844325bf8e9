package storage

import (
	"encoding/json"
	"errors"
	"log"

	"github.com/mrlokans/quranreader/internal/database/kv"
)

// Backend is the raw string store behind a DatabaseAdapter.
type Backend interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
	DeleteAll() error
	KeysWithPrefix(prefix string) ([]string, error)
}

// DatabaseAdapter persists values through a Backend, normally the
// local_storage table.
type DatabaseAdapter struct {
	backend Backend
}

// NewDatabaseAdapter creates an adapter over backend.
func NewDatabaseAdapter(backend Backend) *DatabaseAdapter {
	return &DatabaseAdapter{backend: backend}
}

func (a *DatabaseAdapter) Set(key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		log.Printf("Local storage: failed to encode %s: %v", key, err)
		return
	}
	if err := a.backend.Set(key, string(data)); err != nil {
		log.Printf("Local storage: failed to save %s: %v", key, err)
	}
}

func (a *DatabaseAdapter) Get(key string, dest any) bool {
	raw, err := a.backend.Get(key)
	if errors.Is(err, kv.ErrNotFound) {
		return false
	}
	if err != nil {
		log.Printf("Local storage: failed to read %s: %v", key, err)
		return false
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		log.Printf("Local storage: ignoring malformed value at %s: %v", key, err)
		return false
	}
	return true
}

func (a *DatabaseAdapter) Remove(key string) {
	if err := a.backend.Delete(key); err != nil {
		log.Printf("Local storage: failed to remove %s: %v", key, err)
	}
}

func (a *DatabaseAdapter) Clear() {
	if err := a.backend.DeleteAll(); err != nil {
		log.Printf("Local storage: failed to clear: %v", err)
	}
}

func (a *DatabaseAdapter) KeysWithPrefix(prefix string) []string {
	keys, err := a.backend.KeysWithPrefix(prefix)
	if err != nil {
		log.Printf("Local storage: failed to list keys with prefix %q: %v", prefix, err)
		return nil
	}
	return keys
}
