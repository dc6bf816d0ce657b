package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	ServerAddr     string
	StorageBackend string // memory, redis or postgres
	RedisAddr      string
}

// Load reads the configuration from environment variables, falling back to
// defaults that run the service entirely in memory. A .env file is loaded
// first when present.
func Load() *Config {
	_ = godotenv.Load()

	serverAddr := os.Getenv("SERVER_ADDR")
	if serverAddr == "" {
		serverAddr = ":8080"
	}

	backend := os.Getenv("STORAGE_BACKEND")
	if backend == "" {
		backend = "memory"
	}

	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}

	return &Config{
		ServerAddr:     serverAddr,
		StorageBackend: backend,
		RedisAddr:      redisAddr,
	}
}
