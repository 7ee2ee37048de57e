// internal/infrastructure/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application. Connection
// strings and secrets come from the environment at process start;
// nothing is hard-coded in source.
type Config struct {
	// App
	AppVersion string

	// Server
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// Relational shards. Exactly two targets exist; Shard0/Shard1
	// order must match the identity router's shard ids.
	Shard0PostgresDSN string
	Shard1PostgresDSN string

	// MongoDB (FAQ / contact messages)
	MongoURI string
	MongoDB  string

	// Auth
	SessionTTL time.Duration
	BcryptCost int
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	config := &Config{
		AppVersion:   getEnv("APP_VERSION", "1.0.0"),
		Port:         getEnv("PORT", "8080"),
		ReadTimeout:  time.Duration(getEnvAsInt("READ_TIMEOUT", 30)) * time.Second,
		WriteTimeout: time.Duration(getEnvAsInt("WRITE_TIMEOUT", 30)) * time.Second,

		Shard0PostgresDSN: getEnv("SHARD0_POSTGRES_DSN", ""),
		Shard1PostgresDSN: getEnv("SHARD1_POSTGRES_DSN", ""),

		MongoURI: getEnv("MONGODB_DSN", "mongodb://localhost:27017"),
		MongoDB:  getEnv("MONGO_DB", "travels"),

		SessionTTL: time.Duration(getEnvAsInt("SESSION_TTL", 3600)) * time.Second,
		BcryptCost: getEnvAsInt("BCRYPT_COST", 10),
	}

	if config.Shard0PostgresDSN == "" || config.Shard1PostgresDSN == "" {
		return nil, fmt.Errorf("SHARD0_POSTGRES_DSN and SHARD1_POSTGRES_DSN must be set")
	}

	return config, nil
}

// Helper functions to get environment variables
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
