package config

import (
	"os"
	"strconv"
	"strings"
)

// State backends for the persisted console state
const (
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

type Config struct {
	Port        string
	Environment string
	CORSOrigins string

	// Persisted console state
	StateBackend string
	StateKey     string
	RedisURL     string
	DatabaseURL  string
	TablePrefix  string

	// Logging
	LogDir        string
	LogMaxSizeMB  int
	LogMaxBackups int

	// SeedMockData loads the embedded fixture when no state is stored
	SeedMockData bool
}

func Load() *Config {
	env := getEnv("ENVIRONMENT", "dev")

	return &Config{
		Port:          getEnv("PORT", "8080"),
		Environment:   env,
		CORSOrigins:   getEnv("CORS_ORIGINS", "http://localhost:3000"),
		StateBackend:  strings.ToLower(getEnv("STATE_BACKEND", BackendMemory)),
		StateKey:      getEnv("STATE_KEY", "publishing-storage"),
		RedisURL:      getEnv("REDIS_URL", "redis://localhost:6379/0"),
		DatabaseURL:   getEnv("DATABASE_URL", ""),
		TablePrefix:   getTablePrefix(env),
		LogDir:        getEnv("LOG_DIR", ""),
		LogMaxSizeMB:  getEnvInt("LOG_MAX_SIZE_MB", 50),
		LogMaxBackups: getEnvInt("LOG_MAX_BACKUPS", 5),
		SeedMockData:  getEnv("SEED_MOCK_DATA", "true") == "true",
	}
}

// Origins splits CORSOrigins on commas
func (c *Config) Origins() []string {
	var origins []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// getTablePrefix returns the table prefix based on environment
func getTablePrefix(env string) string {
	// Allow manual override via TABLE_PREFIX env var
	if prefix := os.Getenv("TABLE_PREFIX"); prefix != "" {
		return prefix
	}

	switch env {
	case "prod":
		return "prod_"
	case "test":
		return "test_"
	default:
		return "dev_"
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return defaultValue
	}
	return n
}
