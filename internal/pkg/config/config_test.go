package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	assert.Equal(t, "3001", cfg.Server.Port)
	assert.Equal(t, int64(100*1024*1024), cfg.Upload.MaxFileSize)
	assert.Equal(t, int64(16*1024*1024), cfg.Upload.MemoryLimit)
	assert.Equal(t, 24, cfg.Upload.CleanupAge)
	assert.Equal(t, "media_api", cfg.Media.Driver)
	assert.Equal(t, "memory", cfg.Accounts.Driver)
	assert.False(t, cfg.Database.AutoMig)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("UPLOAD_MAX_FILE_SIZE", "1024")
	t.Setenv("MEDIA_STORAGE_DRIVER", "s3")
	t.Setenv("ACCOUNT_STORE_DRIVER", "redis")
	t.Setenv("RUN_AUTO_MIGRATION", "true")

	cfg := LoadConfig()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, int64(1024), cfg.Upload.MaxFileSize)
	assert.Equal(t, "s3", cfg.Media.Driver)
	assert.Equal(t, "redis", cfg.Accounts.Driver)
	assert.True(t, cfg.Database.AutoMig)
}

func TestLoadConfigIgnoresUnparsableNumbers(t *testing.T) {
	t.Setenv("UPLOAD_MAX_FILE_SIZE", "lots")
	t.Setenv("CLEANUP_MAX_AGE_HOURS", "soon")

	cfg := LoadConfig()

	assert.Equal(t, int64(100*1024*1024), cfg.Upload.MaxFileSize)
	assert.Equal(t, 24, cfg.Upload.CleanupAge)
}

func TestOrigins(t *testing.T) {
	cors := CORSConfig{AllowedOrigins: "http://localhost:3000,https://makecut.example.com"}
	assert.Equal(t, []string{"http://localhost:3000", "https://makecut.example.com"}, cors.Origins())
}

func TestEnsureDirs(t *testing.T) {
	base := t.TempDir()
	cfg := &Config{Upload: UploadConfig{
		TempDir:    filepath.Join(base, "tmp"),
		UploadsDir: filepath.Join(base, "uploads"),
	}}

	require.NoError(t, cfg.EnsureDirs())
	assert.DirExists(t, filepath.Join(base, "tmp"))
	assert.DirExists(t, filepath.Join(base, "uploads"))
}
