package progress

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/quranreader/internal/entities"
)

func setupTestDB(t *testing.T) *Repository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "progress.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.ProgressRecord{}))

	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})
	return NewRepository(db)
}

func request(user string, chapter, page, total int) entities.SaveProgressRequest {
	return entities.SaveProgressRequest{
		UserID:        user,
		ChapterNumber: chapter,
		EditionID:     entities.EditionEnglishAsad,
		CurrentPage:   page,
		TotalPages:    total,
	}
}

func TestRepository_UpsertCreates(t *testing.T) {
	repo := setupTestDB(t)

	record, err := repo.Upsert(request("u1", 2, 3, 29))
	require.NoError(t, err)

	assert.NotEmpty(t, record.ID)
	assert.Equal(t, "u1", record.UserID)
	assert.Equal(t, 3, record.CurrentPage)
	assert.Equal(t, 29, record.TotalPages)
	assert.False(t, record.LastRead.IsZero())
}

func TestRepository_UpsertReplacesSameTriple(t *testing.T) {
	repo := setupTestDB(t)

	first, err := repo.Upsert(request("u1", 2, 3, 29))
	require.NoError(t, err)
	second, err := repo.Upsert(request("u1", 2, 7, 29))
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 7, second.CurrentPage)

	records, err := repo.ListByUser("u1")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 7, records[0].CurrentPage)
}

func TestRepository_ListByUser(t *testing.T) {
	repo := setupTestDB(t)

	_, err := repo.Upsert(request("u1", 5, 1, 2))
	require.NoError(t, err)
	_, err = repo.Upsert(request("u1", 1, 1, 1))
	require.NoError(t, err)
	_, err = repo.Upsert(request("u2", 1, 1, 1))
	require.NoError(t, err)

	records, err := repo.ListByUser("u1")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, 1, records[0].ChapterNumber)
	assert.Equal(t, 5, records[1].ChapterNumber)

	records, err = repo.ListByUser("nobody")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestRepository_Delete(t *testing.T) {
	repo := setupTestDB(t)

	_, err := repo.Upsert(request("u1", 5, 1, 2))
	require.NoError(t, err)

	deleted, err := repo.Delete("u1", 5, entities.EditionEnglishAsad)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete("u1", 5, entities.EditionEnglishAsad)
	require.NoError(t, err)
	assert.False(t, deleted)
}
