package backend

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/quranreader/internal/entities"
	"github.com/mrlokans/quranreader/internal/progress"
	"github.com/mrlokans/quranreader/internal/progressapi"
	"github.com/mrlokans/quranreader/internal/stats"
	"github.com/mrlokans/quranreader/internal/storage"
)

// startBackend runs the backend behind a real listener and returns a client for it.
func startBackend(t *testing.T) (*progressapi.Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(setupBackend(t, ""))
	t.Cleanup(server.Close)
	return progressapi.NewClient(server.URL+DefaultPrefix, time.Second), server
}

func TestClientAgainstBackend(t *testing.T) {
	client, _ := startBackend(t)
	ctx := context.Background()

	saved, err := client.SaveProgress(ctx, progressBody("u 1", 2, 3, 29))
	require.NoError(t, err)
	assert.Equal(t, "u 1", saved.UserID)

	records, err := client.GetProgress(ctx, "u 1")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, saved.ID, records[0].ID)

	require.NoError(t, client.DeleteProgress(ctx, "u 1", 2, entities.EditionEnglishAsad))

	err = client.DeleteProgress(ctx, "u 1", 2, entities.EditionEnglishAsad)
	var statusErr *progressapi.StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)

	missing, err := client.GetStats(ctx, "u 1")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestRepositoryAgainstBackend(t *testing.T) {
	client, server := startBackend(t)
	ctx := context.Background()

	local := progress.NewLocalStore(storage.NewMemoryAdapter())
	repo := progress.NewRepository(client, local)

	tracked := repo.SaveProgress(ctx, progressBody("u1", 2, 3, 29))
	assert.Equal(t, entities.SyncStateSynced, tracked.State)

	got, ok := repo.GetProgress(ctx, "u1", 2, entities.EditionEnglishAsad)
	require.True(t, ok)
	assert.Equal(t, tracked.ID, got.ID)

	pushed, err := stats.NewPusher(local, client).Push(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, pushed.TotalSurahsRead)
	assert.Equal(t, 30, pushed.TotalVersesRead)

	server.Close()

	offline := repo.SaveProgress(ctx, progressBody("u1", 3, 1, 20))
	assert.Equal(t, entities.SyncStateLocalOnly, offline.State)

	loaded := repo.LoadProgress(ctx, "u1")
	require.Len(t, loaded, 2)
	for _, record := range loaded {
		assert.Equal(t, entities.SyncStateLocalOnly, record.State)
	}
}
