package config

import (
	"errors"
	"io/fs"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Global
		Database
		Quran
		ProgressAPI
		Backend
		Session
		Tasks
		StatsSync
	}

	HTTP struct {
		Port int32
		Host string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Database struct {
		Path string
	}
	Quran struct {
		APIURL  string
		Timeout time.Duration
	}
	ProgressAPI struct {
		URL     string
		Timeout time.Duration
		// DeleteFallback is "wipe_user" or "remove_record"
		DeleteFallback string
	}
	Backend struct {
		Port         int32
		Host         string
		DatabasePath string
		Prefix       string // Route group for the progress endpoints
	}
	Session struct {
		Lifetime       time.Duration
		SecureCookies  bool // Set to false for local dev without HTTPS
		CookieName     string
		DefaultEdition string
	}
	Tasks struct {
		Enabled           bool
		Workers           int
		MaxRetries        int
		RetryDelay        time.Duration
		TaskTimeout       time.Duration
		ReleaseAfter      time.Duration
		CleanupInterval   time.Duration
		RetentionDuration time.Duration
	}
	StatsSync struct {
		Enabled  bool
		Schedule string // Cron format: "*/30 * * * *" = every 30 minutes
	}
)

// loadDotEnv reads .env from the working directory when it exists.
func loadDotEnv() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("Config: failed to load .env: %v", err)
	}
}

func NewConfig() *Config {
	loadDotEnv()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8188)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", DefaultDatabasePath)

	v.SetDefault("quran_api_url", "https://api.alquran.cloud/v1")
	v.SetDefault("quran_api_timeout", "10s")

	v.SetDefault("progress_api_url", "http://localhost:3001/api")
	v.SetDefault("progress_api_timeout", "10s")
	v.SetDefault("progress_delete_fallback", "wipe_user")

	// Backend defaults
	v.SetDefault("backend_port", 3001)
	v.SetDefault("backend_host", "0.0.0.0")
	v.SetDefault("backend_database_path", DefaultBackendDatabasePath)
	v.SetDefault("backend_prefix", "/api")

	// Session defaults
	v.SetDefault("session_lifetime", "8760h") // One year
	v.SetDefault("session_secure_cookies", false)
	v.SetDefault("session_cookie_name", "reader_session")
	v.SetDefault("session_default_edition", "en.asad")

	// Task queue defaults
	v.SetDefault("tasks_enabled", true)
	v.SetDefault("task_workers", 2)
	v.SetDefault("task_max_retries", 3)
	v.SetDefault("task_retry_delay", "1m")
	v.SetDefault("task_timeout", "1m")
	v.SetDefault("task_release_after", "15m")
	v.SetDefault("task_cleanup_interval", "1h")
	v.SetDefault("task_retention_duration", "24h")

	v.SetDefault("stats_sync_enabled", false)
	v.SetDefault("stats_sync_schedule", "*/30 * * * *")

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Quran: Quran{
			APIURL:  v.GetString("QURAN_API_URL"),
			Timeout: v.GetDuration("QURAN_API_TIMEOUT"),
		},
		ProgressAPI: ProgressAPI{
			URL:            v.GetString("PROGRESS_API_URL"),
			Timeout:        v.GetDuration("PROGRESS_API_TIMEOUT"),
			DeleteFallback: v.GetString("PROGRESS_DELETE_FALLBACK"),
		},
		Backend: Backend{
			Port:         v.GetInt32("BACKEND_PORT"),
			Host:         v.GetString("BACKEND_HOST"),
			DatabasePath: v.GetString("BACKEND_DATABASE_PATH"),
			Prefix:       v.GetString("BACKEND_PREFIX"),
		},
		Session: Session{
			Lifetime:       v.GetDuration("SESSION_LIFETIME"),
			SecureCookies:  v.GetBool("SESSION_SECURE_COOKIES"),
			CookieName:     v.GetString("SESSION_COOKIE_NAME"),
			DefaultEdition: v.GetString("SESSION_DEFAULT_EDITION"),
		},
		Tasks: Tasks{
			Enabled:           v.GetBool("TASKS_ENABLED"),
			Workers:           v.GetInt("TASK_WORKERS"),
			MaxRetries:        v.GetInt("TASK_MAX_RETRIES"),
			RetryDelay:        v.GetDuration("TASK_RETRY_DELAY"),
			TaskTimeout:       v.GetDuration("TASK_TIMEOUT"),
			ReleaseAfter:      v.GetDuration("TASK_RELEASE_AFTER"),
			CleanupInterval:   v.GetDuration("TASK_CLEANUP_INTERVAL"),
			RetentionDuration: v.GetDuration("TASK_RETENTION_DURATION"),
		},
		StatsSync: StatsSync{
			Enabled:  v.GetBool("STATS_SYNC_ENABLED"),
			Schedule: v.GetString("STATS_SYNC_SCHEDULE"),
		},
	}
}
