package progress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/quranreader/internal/entities"
	"github.com/mrlokans/quranreader/internal/storage"
)

func record(user string, chapter int, edition entities.Edition, page int) entities.ProgressRecord {
	ts := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	return entities.ProgressRecord{
		ID:            "r-" + user,
		UserID:        user,
		ChapterNumber: chapter,
		EditionID:     edition,
		CurrentPage:   page,
		TotalPages:    29,
		LastRead:      ts,
		CreatedAt:     ts,
		UpdatedAt:     ts,
	}
}

func TestLocalStore_SaveGet(t *testing.T) {
	store := NewLocalStore(storage.NewMemoryAdapter())

	store.Save(record("u1", 2, entities.EditionEnglishAsad, 3))

	got, ok := store.Get("u1", 2, entities.EditionEnglishAsad)
	require.True(t, ok)
	assert.Equal(t, 3, got.CurrentPage)

	_, ok = store.Get("u1", 2, entities.EditionUrduJalandhry)
	assert.False(t, ok)
}

func TestLocalStore_AllSortedAndScoped(t *testing.T) {
	store := NewLocalStore(storage.NewMemoryAdapter())

	store.Save(record("u", 5, entities.EditionEnglishAsad, 1))
	store.Save(record("u", 1, entities.EditionUrduJalandhry, 1))
	store.Save(record("u", 1, entities.EditionEnglishAsad, 1))
	store.Save(record("u_1", 3, entities.EditionEnglishAsad, 1))

	all := store.All("u")
	require.Len(t, all, 3)
	assert.Equal(t, 1, all[0].ChapterNumber)
	assert.Equal(t, entities.EditionEnglishAsad, all[0].EditionID)
	assert.Equal(t, entities.EditionUrduJalandhry, all[1].EditionID)
	assert.Equal(t, 5, all[2].ChapterNumber)

	assert.Len(t, store.All("u_1"), 1)
	assert.Equal(t, []string{"u", "u_1"}, store.Users())
}

func TestLocalStore_IndexBootstrapsFromExistingKeys(t *testing.T) {
	adapter := storage.NewMemoryAdapter()
	adapter.Set(MakeKey("u1", 1, entities.EditionEnglishAsad), record("u1", 1, entities.EditionEnglishAsad, 1))
	adapter.Set(MakeKey("u1", 2, entities.EditionEnglishAsad), record("u1", 2, entities.EditionEnglishAsad, 1))
	adapter.Set("unrelated", 1)

	store := NewLocalStore(adapter)
	assert.Len(t, store.All("u1"), 2)
}

func TestLocalStore_IndexBootstrapsOddEditions(t *testing.T) {
	adapter := storage.NewMemoryAdapter()
	first := NewLocalStore(adapter)

	first.Save(record("u1", 3, "", 1))
	first.Save(record("u1", 4, "x_y", 2))
	first.SaveFor("u1", record("other", 6, "a_b_c", 3))
	first.Save(record("u1_5", 2, "x_y", 4))

	restarted := NewLocalStore(adapter)
	all := restarted.All("u1")
	require.Len(t, all, 3)
	assert.Equal(t, entities.Edition(""), all[0].EditionID)
	assert.Equal(t, entities.Edition("x_y"), all[1].EditionID)
	assert.Equal(t, entities.Edition("a_b_c"), all[2].EditionID)

	other := restarted.All("u1_5")
	require.Len(t, other, 1)
	assert.Equal(t, 4, other[0].CurrentPage)

	assert.Equal(t, []string{"u1", "u1_5"}, restarted.Users())

	restarted.Clear("u1")
	assert.Empty(t, NewLocalStore(adapter).All("u1"))
	assert.Len(t, NewLocalStore(adapter).All("u1_5"), 1)
}

func TestLocalStore_SkipsMalformedEntries(t *testing.T) {
	adapter := storage.NewMemoryAdapter()
	adapter.SetRaw(MakeKey("u1", 1, entities.EditionEnglishAsad), "{broken")

	store := NewLocalStore(adapter)
	store.Save(record("u1", 2, entities.EditionEnglishAsad, 1))

	all := store.All("u1")
	require.Len(t, all, 1)
	assert.Equal(t, 2, all[0].ChapterNumber)
}

func TestLocalStore_RemoveAndClear(t *testing.T) {
	adapter := storage.NewMemoryAdapter()
	store := NewLocalStore(adapter)

	store.Save(record("u1", 1, entities.EditionEnglishAsad, 1))
	store.Save(record("u1", 2, entities.EditionEnglishAsad, 1))
	store.Save(record("u2", 1, entities.EditionEnglishAsad, 1))

	store.Remove("u1", 1, entities.EditionEnglishAsad)
	assert.Len(t, store.All("u1"), 1)

	store.Clear("u1")
	assert.Empty(t, store.All("u1"))
	assert.Len(t, store.All("u2"), 1)
	assert.Equal(t, 1, adapter.Len())
}

func TestLocalStore_SaveForOverridesUser(t *testing.T) {
	store := NewLocalStore(storage.NewMemoryAdapter())

	store.SaveFor("u2", record("u1", 7, entities.EditionUthmani, 2))

	_, ok := store.Get("u1", 7, entities.EditionUthmani)
	assert.False(t, ok)
	got, ok := store.Get("u2", 7, entities.EditionUthmani)
	require.True(t, ok)
	assert.Equal(t, 2, got.CurrentPage)
}
