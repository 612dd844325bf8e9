// Package database provides the data access layer for the application.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup and migrations
//	├── kv/              # Device-local key/value entries
//	├── progress/        # Reading progress rows (backend side)
//	└── stats/           # Aggregate statistics rows (backend side)
//
// # Using Sub-packages
//
// Each sub-package provides a Repository type with domain-specific operations:
//
//	db, err := database.NewDatabase("./quranreader.db")
//
//	kvRepo := kv.NewRepository(db.DB)
//	progressRepo := progress.NewRepository(db.DB)
//
//	err = kvRepo.Set("quran_progress_u1_1_en.asad", `{"currentPage":2}`)
//	records, err := progressRepo.ListByUser("u1")
//
// # Interface Implementations
//
//   - kv.Repository: implements storage.Backend
//   - progress.Repository: implements backend.ProgressStore
//   - stats.Repository: implements backend.StatsStore
//
// # Adding a New Domain
//
//  1. Create a new sub-package: internal/database/<domain>/
//  2. Define a Repository struct with a *gorm.DB field
//  3. Add NewRepository(db *gorm.DB) constructor
//  4. Add compile-time interface check in internal/interfaces/checks.go
package database
