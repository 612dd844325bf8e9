// Package storage is the device-local key/value store used as the fallback
// tier for reading progress.
//
// Values are serialised to JSON on the way in and decoded on the way out.
// The adapters never report errors to callers: failures are logged and turn
// into a no-op or a "not present" result.
package storage

// Adapter is a string-keyed store of JSON-encodable values.
type Adapter interface {
	// Set stores value under key, replacing any previous value.
	Set(key string, value any)
	// Get decodes the value stored under key into dest. It returns false when
	// the key is absent, the stored text is not valid JSON for dest, or the
	// underlying store failed.
	Get(key string, dest any) bool
	Remove(key string)
	Clear()
	// KeysWithPrefix lists every key that starts with prefix.
	KeysWithPrefix(prefix string) []string
}
