package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	originalEnv := make(map[string]string)
	envVars := []string{
		"SERVER_PORT",
		"DB_HOST",
		"DB_PORT",
		"DB_USER",
		"DB_PASSWORD",
		"DB_NAME",
		"DB_SSL_MODE",
		"DB_MAX_CONNS",
		"DB_MIN_CONNS",
		"MEDIA_DIR",
		"MEDIA_BASE_URL",
		"SESSION_TTL",
		"CONFIG_FILE",
	}

	for _, env := range envVars {
		originalEnv[env] = os.Getenv(env)
	}

	defer func() {
		for env, val := range originalEnv {
			if val == "" {
				os.Unsetenv(env)
			} else {
				os.Setenv(env, val)
			}
		}
	}()

	for _, env := range envVars {
		os.Unsetenv(env)
	}

	t.Run("default values", func(t *testing.T) {
		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if cfg.ServerPort != "8080" {
			t.Errorf("ServerPort = %v, want 8080", cfg.ServerPort)
		}
		if cfg.DBHost != "localhost" {
			t.Errorf("DBHost = %v, want localhost", cfg.DBHost)
		}
		if cfg.DBPort != 5432 {
			t.Errorf("DBPort = %v, want 5432", cfg.DBPort)
		}
		if cfg.DBUser != "postgres" {
			t.Errorf("DBUser = %v, want postgres", cfg.DBUser)
		}
		if cfg.DBName != "dumurianews" {
			t.Errorf("DBName = %v, want dumurianews", cfg.DBName)
		}
		if cfg.DBSSLMode != "disable" {
			t.Errorf("DBSSLMode = %v, want disable", cfg.DBSSLMode)
		}
		if cfg.DBMaxConns != 25 {
			t.Errorf("DBMaxConns = %v, want 25", cfg.DBMaxConns)
		}
		if cfg.DBMinConns != 5 {
			t.Errorf("DBMinConns = %v, want 5", cfg.DBMinConns)
		}
		if cfg.MediaDir != "./media" {
			t.Errorf("MediaDir = %v, want ./media", cfg.MediaDir)
		}
		if cfg.MediaBaseURL != "/media" {
			t.Errorf("MediaBaseURL = %v, want /media", cfg.MediaBaseURL)
		}
		if cfg.SessionTTL != 24*time.Hour {
			t.Errorf("SessionTTL = %v, want 24h", cfg.SessionTTL)
		}
	})

	t.Run("custom values from environment", func(t *testing.T) {
		os.Setenv("SERVER_PORT", "9090")
		os.Setenv("DB_HOST", "db.example.com")
		os.Setenv("DB_PORT", "5433")
		os.Setenv("DB_USER", "testuser")
		os.Setenv("DB_PASSWORD", "testpass")
		os.Setenv("DB_NAME", "testdb")
		os.Setenv("DB_SSL_MODE", "require")
		os.Setenv("DB_MAX_CONNS", "50")
		os.Setenv("DB_MIN_CONNS", "10")
		os.Setenv("MEDIA_DIR", "/var/lib/news/media")
		os.Setenv("MEDIA_BASE_URL", "/static/media")
		os.Setenv("SESSION_TTL", "2h")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if cfg.ServerPort != "9090" {
			t.Errorf("ServerPort = %v, want 9090", cfg.ServerPort)
		}
		if cfg.DBHost != "db.example.com" {
			t.Errorf("DBHost = %v, want db.example.com", cfg.DBHost)
		}
		if cfg.DBPort != 5433 {
			t.Errorf("DBPort = %v, want 5433", cfg.DBPort)
		}
		if cfg.DBUser != "testuser" {
			t.Errorf("DBUser = %v, want testuser", cfg.DBUser)
		}
		if cfg.DBPassword != "testpass" {
			t.Errorf("DBPassword = %v, want testpass", cfg.DBPassword)
		}
		if cfg.DBName != "testdb" {
			t.Errorf("DBName = %v, want testdb", cfg.DBName)
		}
		if cfg.DBSSLMode != "require" {
			t.Errorf("DBSSLMode = %v, want require", cfg.DBSSLMode)
		}
		if cfg.DBMaxConns != 50 {
			t.Errorf("DBMaxConns = %v, want 50", cfg.DBMaxConns)
		}
		if cfg.DBMinConns != 10 {
			t.Errorf("DBMinConns = %v, want 10", cfg.DBMinConns)
		}
		if cfg.MediaDir != "/var/lib/news/media" {
			t.Errorf("MediaDir = %v, want /var/lib/news/media", cfg.MediaDir)
		}
		if cfg.MediaBaseURL != "/static/media" {
			t.Errorf("MediaBaseURL = %v, want /static/media", cfg.MediaBaseURL)
		}
		if cfg.SessionTTL != 2*time.Hour {
			t.Errorf("SessionTTL = %v, want 2h", cfg.SessionTTL)
		}
	})

	t.Run("duration fields have correct defaults", func(t *testing.T) {
		for _, env := range envVars {
			os.Unsetenv(env)
		}

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if cfg.DBMaxConnLifetime != time.Hour {
			t.Errorf("DBMaxConnLifetime = %v, want 1h", cfg.DBMaxConnLifetime)
		}
		if cfg.DBMaxConnIdleTime != 30*time.Minute {
			t.Errorf("DBMaxConnIdleTime = %v, want 30m", cfg.DBMaxConnIdleTime)
		}
		if cfg.DBHealthCheckPeriod != time.Minute {
			t.Errorf("DBHealthCheckPeriod = %v, want 1m", cfg.DBHealthCheckPeriod)
		}
	})

	t.Run("config file overrides environment", func(t *testing.T) {
		for _, env := range envVars {
			os.Unsetenv(env)
		}
		os.Setenv("SERVER_PORT", "9090")

		path := filepath.Join(t.TempDir(), "config.yaml")
		content := "serverPort: \"7070\"\ndbName: filedb\nsessionTTL: 1h\n"
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write config file: %v", err)
		}
		os.Setenv("CONFIG_FILE", path)

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if cfg.ServerPort != "7070" {
			t.Errorf("ServerPort = %v, want 7070", cfg.ServerPort)
		}
		if cfg.DBName != "filedb" {
			t.Errorf("DBName = %v, want filedb", cfg.DBName)
		}
		if cfg.SessionTTL != time.Hour {
			t.Errorf("SessionTTL = %v, want 1h", cfg.SessionTTL)
		}
		// Untouched fields keep their env/default values
		if cfg.DBHost != "localhost" {
			t.Errorf("DBHost = %v, want localhost", cfg.DBHost)
		}
	})

	t.Run("session TTL below minimum is rejected", func(t *testing.T) {
		for _, env := range envVars {
			os.Unsetenv(env)
		}
		os.Setenv("SESSION_TTL", "5s")

		if _, err := Load(); err == nil {
			t.Error("Load() expected error for too-short SESSION_TTL")
		}
	})
}
