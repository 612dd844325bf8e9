package http

import (
	"github.com/mrlokans/quranreader/internal/entities"
	"github.com/mrlokans/quranreader/internal/readersession"
)

// RouterConfig contains the dependencies of the reader router. Optional
// collaborators are left nil to disable their routes.
type RouterConfig struct {
	// Core dependencies
	Chapters ChapterSource
	Reader   ReaderService
	Progress ProgressStore
	Transfer Transferer
	Pusher   StatsPusher

	// Optional: background stats pushes and task status
	Enqueuer StatsEnqueuer
	Tasks    TaskStatusSource

	// Optional: health check of the local database
	Database Pinger

	// Reader identity. Without a session manager every request acts as
	// StaticReaderID unless it names a reader in the X-Reader-ID header.
	Sessions       *readersession.Manager
	StaticReaderID string
	DefaultEdition entities.Edition

	// Application info
	Version string
}
