package entrypoint

import (
	"fmt"
	"log"

	"github.com/mrlokans/quranreader/internal/backend"
	"github.com/mrlokans/quranreader/internal/config"
	"github.com/mrlokans/quranreader/internal/database"
	dbprogress "github.com/mrlokans/quranreader/internal/database/progress"
	dbstats "github.com/mrlokans/quranreader/internal/database/stats"
)

// RunBackend starts the progress and statistics backend.
func RunBackend(cfg *config.Config, version string) {
	log.Printf("Starting progress backend v%s", version)

	db, err := database.NewDatabase(cfg.Backend.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	router := backend.NewRouter(backend.RouterConfig{
		Progress: dbprogress.NewRepository(db.DB),
		Stats:    dbstats.NewRepository(db.DB),
		Database: db,
		Prefix:   cfg.Backend.Prefix,
		Version:  version,
	})

	Serve(fmt.Sprintf("%s:%d", cfg.Backend.Host, cfg.Backend.Port), router, cfg, nil)
}
