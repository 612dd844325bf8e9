package cli

import (
	"fmt"

	"github.com/mrlokans/quranreader/internal/database"
	"github.com/mrlokans/quranreader/internal/database/kv"
	"github.com/mrlokans/quranreader/internal/progress"
	"github.com/mrlokans/quranreader/internal/storage"
)

// openLocalStore opens the reader database at path and returns its local
// progress tier. The returned func closes the database.
func openLocalStore(path string) (*progress.LocalStore, func(), error) {
	db, err := database.NewQuietDatabase(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}

	adapter := storage.NewDatabaseAdapter(kv.NewRepository(db.DB))
	return progress.NewLocalStore(adapter), func() { db.Close() }, nil
}
