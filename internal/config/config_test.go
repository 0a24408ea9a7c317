package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv removes keys for the duration of the test; t.Setenv restores them afterwards.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoad_Defaults(t *testing.T) {
	unsetEnv(t, "PORT", "DB_DRIVER", "DATABASE_URL", "STORAGE_BACKEND", "STEAM_TIMEOUT", "STEAM_BASE_URL", "JWT_SECRET", "UPLOAD_DIR", "SESSION_STORE")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5001", cfg.Port)
	assert.Equal(t, DriverPostgres, cfg.DBDriver)
	assert.Equal(t, StorageDisk, cfg.StorageBackend)
	assert.Equal(t, SessionStoreCookie, cfg.SessionStore)
	assert.Equal(t, "uploads", cfg.UploadDir)
	assert.Equal(t, 15*time.Second, cfg.SteamTimeout)
	assert.Equal(t, "https://store.steampowered.com", cfg.SteamBaseURL)
	assert.NotEmpty(t, cfg.JWTSecret)
	assert.Equal(t, ":5001", cfg.Addr())
}

func TestLoad_FromEnvironment(t *testing.T) {
	unsetEnv(t, "STORAGE_BACKEND", "UPLOAD_DIR", "JWT_SECRET", "SESSION_STORE")
	t.Setenv("PORT", "9000")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DATABASE_URL", "file:journal.db")
	t.Setenv("STEAM_TIMEOUT", "2s")
	t.Setenv("GIN_MODE", "release")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, "file:journal.db", cfg.DatabaseURL)
	assert.Equal(t, 2*time.Second, cfg.SteamTimeout)
	assert.True(t, cfg.IsProduction())
}

func TestLoad_InvalidDuration(t *testing.T) {
	unsetEnv(t, "DB_DRIVER", "STORAGE_BACKEND", "SESSION_STORE")
	t.Setenv("STEAM_TIMEOUT", "soon")

	_, err := Load()
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := func() Config {
		return Config{
			DBDriver:       DriverPostgres,
			StorageBackend: StorageDisk,
			UploadDir:      "uploads",
			JWTSecret:      "secret",
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"valid disk", func(c *Config) {}, false},
		{"mysql driver", func(c *Config) { c.DBDriver = DriverMySQL }, false},
		{"unknown driver", func(c *Config) { c.DBDriver = "oracle" }, true},
		{"unknown backend", func(c *Config) { c.StorageBackend = "ftp" }, true},
		{"s3 without bucket", func(c *Config) { c.StorageBackend = StorageS3 }, true},
		{"s3 with bucket", func(c *Config) { c.StorageBackend = StorageS3; c.S3Bucket = "notes" }, false},
		{"disk without dir", func(c *Config) { c.UploadDir = "" }, true},
		{"redis sessions", func(c *Config) { c.SessionStore = SessionStoreRedis; c.RedisAddr = "redis:6379" }, false},
		{"redis without addr", func(c *Config) { c.SessionStore = SessionStoreRedis; c.RedisAddr = "" }, true},
		{"unknown session store", func(c *Config) { c.SessionStore = "memcached" }, true},
		{"empty secret", func(c *Config) { c.JWTSecret = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
