package storage

import (
	"encoding/json"
	"log"
	"sort"
	"strings"
	"sync"
)

// MemoryAdapter keeps values in process memory. It serialises like the
// database adapter so both behave the same for callers.
type MemoryAdapter struct {
	mu     sync.RWMutex
	values map[string][]byte
}

func NewMemoryAdapter() *MemoryAdapter {
	return &MemoryAdapter{values: make(map[string][]byte)}
}

func (m *MemoryAdapter) Set(key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		log.Printf("Local storage: failed to encode %s: %v", key, err)
		return
	}
	m.mu.Lock()
	m.values[key] = data
	m.mu.Unlock()
}

// SetRaw stores text verbatim, bypassing encoding.
func (m *MemoryAdapter) SetRaw(key, text string) {
	m.mu.Lock()
	m.values[key] = []byte(text)
	m.mu.Unlock()
}

func (m *MemoryAdapter) Get(key string, dest any) bool {
	m.mu.RLock()
	data, ok := m.values[key]
	m.mu.RUnlock()
	if !ok {
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		log.Printf("Local storage: ignoring malformed value at %s: %v", key, err)
		return false
	}
	return true
}

func (m *MemoryAdapter) Remove(key string) {
	m.mu.Lock()
	delete(m.values, key)
	m.mu.Unlock()
}

func (m *MemoryAdapter) Clear() {
	m.mu.Lock()
	m.values = make(map[string][]byte)
	m.mu.Unlock()
}

func (m *MemoryAdapter) KeysWithPrefix(prefix string) []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var keys []string
	for k := range m.values {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of stored entries.
func (m *MemoryAdapter) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.values)
}
