package http

import (
	"context"
	"time"

	"github.com/mrlokans/quranreader/internal/entities"
	"github.com/mrlokans/quranreader/internal/progress"
	"github.com/mrlokans/quranreader/internal/reader"
	"github.com/mrlokans/quranreader/internal/transfer"
)

// This file collects the collaborator interfaces of the reader controllers.
// Each controller depends only on the methods it calls.

// ChapterSource lists chapter metadata from the text provider.
type ChapterSource interface {
	GetSurahList(ctx context.Context) ([]entities.Chapter, error)
	GetSurahInfo(ctx context.Context, number int) (*entities.Chapter, error)
}

// ReaderService assembles reader pages and records page changes.
type ReaderService interface {
	Open(ctx context.Context, userID string, chapter int, edition entities.Edition, page int) (*reader.View, error)
	ChangePage(ctx context.Context, userID string, chapter int, edition entities.Edition, page int) (progress.TrackedRecord, error)
}

// ProgressStore is the two-tier progress repository.
type ProgressStore interface {
	LoadProgress(ctx context.Context, userID string) []progress.TrackedRecord
	GetProgress(ctx context.Context, userID string, chapter int, edition entities.Edition) (*entities.ProgressRecord, bool)
	SaveProgress(ctx context.Context, req entities.SaveProgressRequest) progress.TrackedRecord
	DeleteProgress(ctx context.Context, userID string, chapter int, edition entities.Edition)
}

// Transferer exports and imports the local progress document.
type Transferer interface {
	Export(userID string) (string, error)
	Import(text string) transfer.Result
}

// StatsPusher sends aggregated statistics to the remote store.
type StatsPusher interface {
	Push(ctx context.Context, userID string) (*entities.StatsRecord, error)
}

// StatsEnqueuer schedules stats pushes in the background.
type StatsEnqueuer interface {
	EnqueuePushStats(delay time.Duration, userIDs ...string) ([]string, error)
}
