package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// chdirTemp moves into an empty directory so no .env file is picked up.
func chdirTemp(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { os.Chdir(wd) })
}

func TestNewConfig_Defaults(t *testing.T) {
	chdirTemp(t)

	cfg := NewConfig()

	assert.Equal(t, int32(8188), cfg.HTTP.Port)
	assert.Equal(t, DefaultDatabasePath, cfg.Database.Path)
	assert.Equal(t, "https://api.alquran.cloud/v1", cfg.Quran.APIURL)
	assert.Equal(t, 10*time.Second, cfg.Quran.Timeout)
	assert.Equal(t, "http://localhost:3001/api", cfg.ProgressAPI.URL)
	assert.Equal(t, 10*time.Second, cfg.ProgressAPI.Timeout)
	assert.Equal(t, "wipe_user", cfg.ProgressAPI.DeleteFallback)
	assert.Equal(t, int32(3001), cfg.Backend.Port)
	assert.Equal(t, "/api", cfg.Backend.Prefix)
	assert.Equal(t, "en.asad", cfg.Session.DefaultEdition)
	assert.Equal(t, 2, cfg.Tasks.Workers)
	assert.Equal(t, "*/30 * * * *", cfg.StatsSync.Schedule)
}

func TestNewConfig_Environment(t *testing.T) {
	chdirTemp(t)
	t.Setenv("PROGRESS_API_URL", "http://progress.test/api")
	t.Setenv("PROGRESS_API_TIMEOUT", "3s")
	t.Setenv("PORT", "9000")
	t.Setenv("STATS_SYNC_ENABLED", "true")

	cfg := NewConfig()

	assert.Equal(t, "http://progress.test/api", cfg.ProgressAPI.URL)
	assert.Equal(t, 3*time.Second, cfg.ProgressAPI.Timeout)
	assert.Equal(t, int32(9000), cfg.HTTP.Port)
	assert.True(t, cfg.StatsSync.Enabled)
}

func TestNewConfig_DotEnv(t *testing.T) {
	chdirTemp(t)
	t.Setenv("QURAN_API_URL", "")
	os.Unsetenv("QURAN_API_URL")
	if err := os.WriteFile(".env", []byte("QURAN_API_URL=http://quran.test/v1\n"), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	t.Cleanup(func() { os.Unsetenv("QURAN_API_URL") })

	cfg := NewConfig()

	assert.Equal(t, "http://quran.test/v1", cfg.Quran.APIURL)
}
