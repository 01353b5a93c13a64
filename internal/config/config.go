package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

const configFileEnv = "CONFIG_FILE"

// Config holds all configuration for the application.
type Config struct {
	// Server configuration
	ServerPort   string        `yaml:"serverPort"`
	ReadTimeout  time.Duration `yaml:"readTimeout"`
	WriteTimeout time.Duration `yaml:"writeTimeout"`
	IdleTimeout  time.Duration `yaml:"idleTimeout"`

	// Database configuration
	DBHost              string        `yaml:"dbHost"`
	DBPort              int           `yaml:"dbPort"`
	DBUser              string        `yaml:"dbUser"`
	DBPassword          string        `yaml:"dbPassword"`
	DBName              string        `yaml:"dbName"`
	DBSSLMode           string        `yaml:"dbSSLMode"`
	DBMaxConns          int32         `yaml:"dbMaxConns"`
	DBMinConns          int32         `yaml:"dbMinConns"`
	DBMaxConnLifetime   time.Duration `yaml:"dbMaxConnLifetime"`
	DBMaxConnIdleTime   time.Duration `yaml:"dbMaxConnIdleTime"`
	DBHealthCheckPeriod time.Duration `yaml:"dbHealthCheckPeriod"`

	// Media storage configuration
	MediaDir     string `yaml:"mediaDir"`
	MediaBaseURL string `yaml:"mediaBaseURL"`

	// Session configuration
	SessionTTL time.Duration `yaml:"sessionTTL"`

	// Logging configuration
	LogLevel string `yaml:"logLevel"`
}

// Load loads configuration from environment variables. When CONFIG_FILE
// points at a YAML file, values from the file take precedence over the
// environment.
func Load() (*Config, error) {
	cfg := &Config{
		ServerPort:          getEnv("SERVER_PORT", "8080"),
		ReadTimeout:         getEnvDuration("HTTP_READ_TIMEOUT", 15*time.Second),
		WriteTimeout:        getEnvDuration("HTTP_WRITE_TIMEOUT", 30*time.Second),
		IdleTimeout:         getEnvDuration("HTTP_IDLE_TIMEOUT", 120*time.Second),
		DBHost:              getEnv("DB_HOST", "localhost"),
		DBPort:              getEnvInt("DB_PORT", 5432),
		DBUser:              getEnv("DB_USER", "postgres"),
		DBPassword:          getEnv("DB_PASSWORD", "postgres"),
		DBName:              getEnv("DB_NAME", "dumurianews"),
		DBSSLMode:           getEnv("DB_SSL_MODE", "disable"),
		DBMaxConns:          int32(getEnvInt("DB_MAX_CONNS", 25)),
		DBMinConns:          int32(getEnvInt("DB_MIN_CONNS", 5)),
		DBMaxConnLifetime:   getEnvDuration("DB_MAX_CONN_LIFETIME", time.Hour),
		DBMaxConnIdleTime:   getEnvDuration("DB_MAX_CONN_IDLE_TIME", 30*time.Minute),
		DBHealthCheckPeriod: getEnvDuration("DB_HEALTH_CHECK_PERIOD", time.Minute),
		MediaDir:            getEnv("MEDIA_DIR", "./media"),
		MediaBaseURL:        getEnv("MEDIA_BASE_URL", "/media"),
		SessionTTL:          getEnvDuration("SESSION_TTL", 24*time.Hour),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
	}

	if path := os.Getenv(configFileEnv); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadFile overlays values from a YAML config file.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

// validate validates the configuration.
func (c *Config) validate() error {
	if c.ServerPort == "" {
		return fmt.Errorf("SERVER_PORT is required")
	}
	if c.DBHost == "" {
		return fmt.Errorf("DB_HOST is required")
	}
	if c.DBUser == "" {
		return fmt.Errorf("DB_USER is required")
	}
	if c.DBName == "" {
		return fmt.Errorf("DB_NAME is required")
	}
	if c.MediaDir == "" {
		return fmt.Errorf("MEDIA_DIR is required")
	}
	if c.SessionTTL < time.Minute {
		return fmt.Errorf("SESSION_TTL must be at least one minute")
	}
	return nil
}

// getEnv gets an environment variable with a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an environment variable as int with a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvDuration gets an environment variable as duration with a default value.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
