// config/config.go - Environment-driven configuration
package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the process needs from the environment. It is
// loaded once in main and handed to the components that need it.
type Config struct {
	Port        string
	AppEnv      string
	DatabaseURL string
	JWTSecret   string
	CORSOrigins string

	// Rate limiting (requests per minute per client IP)
	RateLimitPerMinute int
	RateLimitBurst     int
}

// Load reads .env (if present) and assembles the configuration.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	cfg := &Config{
		Port:               getEnv("PORT", "3000"),
		AppEnv:             getEnv("APP_ENV", "development"),
		DatabaseURL:        DatabaseURLFromEnv(),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		CORSOrigins:        getEnv("CORS_ORIGINS", "http://localhost:3000"),
		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 300),
		RateLimitBurst:     getEnvInt("RATE_LIMIT_BURST", 50),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// DatabaseURLFromEnv resolves the Postgres DSN: DATABASE_URL wins, otherwise
// the DSN is assembled from the individual DB_* parameters.
func DatabaseURLFromEnv() string {
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		return dsn
	}

	host := getEnv("DB_HOST", "localhost")
	port := getEnv("DB_PORT", "5432")
	user := getEnv("DB_USER", "postgres")
	password := getEnv("DB_PASSWORD", "")
	dbname := getEnv("DB_NAME", "devotional")
	sslmode := getEnv("DB_SSLMODE", "disable")

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, dbname, sslmode)
}

func (c *Config) validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET environment variable must be set. Generate one with: openssl rand -base64 64")
	}
	if len(c.JWTSecret) < 32 {
		return fmt.Errorf("JWT_SECRET must be at least 32 characters long")
	}

	if c.AppEnv == "production" && c.CORSOrigins == "http://localhost:3000" {
		log.Println("WARNING: CORS_ORIGINS not properly configured for production")
	}

	return nil
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
	var n int
	if _, err := fmt.Sscanf(value, "%d", &n); err != nil || n <= 0 {
		return defaultValue
	}
	return n
}
