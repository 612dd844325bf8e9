package config

// Default paths for databases
const (
	// DefaultDatabasePath is the reader's local progress store
	DefaultDatabasePath = "./quranreader.db"

	// DefaultBackendDatabasePath is the progress backend's store
	DefaultBackendDatabasePath = "./quranreader-backend.db"
)
