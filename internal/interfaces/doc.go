// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## Storage Interfaces
//
//   - storage.Adapter: JSON values by string key (internal/storage/storage.go)
//   - storage.Backend: raw strings behind the database adapter (internal/storage/database.go)
//
// ## Progress Interfaces
//
//   - progress.Remote: the authoritative progress store (internal/progress/repository.go)
//   - reader.ProgressStore: what the reader view needs from the repository (internal/reader/reader.go)
//   - http.ProgressStore: what the controllers need from it (internal/http/stores.go)
//
// ## External Service Interfaces
//
//   - reader.TextSource: verse text per edition (internal/reader/reader.go)
//   - http.ChapterSource: chapter metadata (internal/http/stores.go)
//   - stats.Updater: remote statistics (internal/stats/pusher.go)
//
// ## Background Work
//
//   - tasks.StatsPusher: pushes one reader's statistics (internal/tasks/push_stats.go)
//   - scheduler.UserLister: readers with local progress (internal/scheduler/stats_sync.go)
//
// # Adding a New Storage Adapter
//
// Any key/value store can hold the local tier. Implement storage.Adapter,
// absorbing failures rather than returning them:
//
//	type RedisAdapter struct { client *redis.Client }
//
//	func (a *RedisAdapter) Set(key string, value any)
//	func (a *RedisAdapter) Get(key string, dest any) bool
//	func (a *RedisAdapter) Remove(key string)
//	func (a *RedisAdapter) Clear()
//	func (a *RedisAdapter) KeysWithPrefix(prefix string) []string
//
//	var _ storage.Adapter = (*RedisAdapter)(nil)
//
// Then pass it to progress.NewLocalStore in entrypoint.go.
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces. This catches missing methods at compile time rather than runtime:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// See checks.go for the full list.
package interfaces
