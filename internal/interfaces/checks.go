package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/quranreader/internal/backend"
	"github.com/mrlokans/quranreader/internal/database"
	"github.com/mrlokans/quranreader/internal/database/kv"
	dbprogress "github.com/mrlokans/quranreader/internal/database/progress"
	dbstats "github.com/mrlokans/quranreader/internal/database/stats"
	"github.com/mrlokans/quranreader/internal/http"
	"github.com/mrlokans/quranreader/internal/progress"
	"github.com/mrlokans/quranreader/internal/progressapi"
	"github.com/mrlokans/quranreader/internal/quran"
	"github.com/mrlokans/quranreader/internal/reader"
	"github.com/mrlokans/quranreader/internal/scheduler"
	"github.com/mrlokans/quranreader/internal/stats"
	"github.com/mrlokans/quranreader/internal/storage"
	"github.com/mrlokans/quranreader/internal/tasks"
	"github.com/mrlokans/quranreader/internal/transfer"
)

// =============================================================================
// Local Storage
// =============================================================================

var _ storage.Backend = (*kv.Repository)(nil)

var _ storage.Adapter = (*storage.DatabaseAdapter)(nil)
var _ storage.Adapter = (*storage.MemoryAdapter)(nil)

// =============================================================================
// Progress Tiers
// =============================================================================

var _ progress.Remote = (*progressapi.Client)(nil)

var _ reader.ProgressStore = (*progress.Repository)(nil)
var _ http.ProgressStore = (*progress.Repository)(nil)

var _ stats.RecordSource = (*progress.LocalStore)(nil)
var _ scheduler.UserLister = (*progress.LocalStore)(nil)

var _ http.Transferer = (*transfer.Exporter)(nil)

// =============================================================================
// External Services
// =============================================================================

var _ reader.TextSource = (*quran.Client)(nil)
var _ http.ChapterSource = (*quran.Client)(nil)

var _ stats.Updater = (*progressapi.Client)(nil)

var _ http.ReaderService = (*reader.Service)(nil)

// =============================================================================
// Statistics
// =============================================================================

var _ tasks.StatsPusher = (*stats.Pusher)(nil)
var _ http.StatsPusher = (*stats.Pusher)(nil)
var _ http.StatsEnqueuer = (*tasks.Client)(nil)
var _ http.TaskStatusSource = (*tasks.Client)(nil)

// =============================================================================
// Backend
// =============================================================================

var _ backend.ProgressStore = (*dbprogress.Repository)(nil)
var _ backend.StatsStore = (*dbstats.Repository)(nil)
var _ http.Pinger = (*database.Database)(nil)
