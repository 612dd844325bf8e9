package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/quranreader/internal/entities"
)

func TestNewDatabase(t *testing.T) {
	db, err := NewQuietDatabase(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer db.Close()

	assert.NoError(t, db.Ping())

	for _, model := range []any{
		&entities.LocalEntry{},
		&entities.ProgressRecord{},
		&entities.StatsRecord{},
	} {
		assert.True(t, db.DB.Migrator().HasTable(model))
	}
}

func TestNewDatabase_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	db, err := NewQuietDatabase(path)
	require.NoError(t, err)
	require.NoError(t, db.DB.Create(&entities.LocalEntry{Key: "k", Value: "v"}).Error)
	require.NoError(t, db.Close())

	db, err = NewQuietDatabase(path)
	require.NoError(t, err)
	defer db.Close()

	var entry entities.LocalEntry
	require.NoError(t, db.DB.First(&entry, "key = ?", "k").Error)
	assert.Equal(t, "v", entry.Value)
}
