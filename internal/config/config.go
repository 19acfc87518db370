package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config is built once in main and passed to components explicitly.
type Config struct {
	AppEnv         string
	Port           string
	AllowedOrigins string

	DBHost    string
	DBUser    string
	DBPass    string
	DBName    string
	DBPort    string
	DBSSLMode string

	JWTSecret string
	TokenTTL  time.Duration

	UploadDir        string
	CVMaxBytes       int64
	HeadshotMaxBytes int64

	RedisURL         string
	ContactRateLimit time.Duration
	LoginRateLimit   time.Duration

	MeiliSearchHost string
	MeiliMasterKey  string
}

func Load() (*Config, error) {
	// Don't fail if .env doesn't exist (might be prod env vars)
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:         getEnv("APP_ENV", "development"),
		Port:           getEnv("PORT", "5001"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "http://localhost:3000"),

		DBHost:    getEnv("DB_HOST", "localhost"),
		DBUser:    getEnv("DB_USER", "postgres"),
		DBPass:    os.Getenv("DB_PASS"),
		DBName:    getEnv("DB_NAME", "portfolio"),
		DBPort:    getEnv("DB_PORT", "5432"),
		DBSSLMode: getEnv("DB_SSLMODE", "disable"),

		JWTSecret: os.Getenv("JWT_SECRET"),

		UploadDir:        getEnv("UPLOAD_DIR", "uploads"),
		CVMaxBytes:       5 * 1024 * 1024,
		HeadshotMaxBytes: 2 * 1024 * 1024,

		RedisURL: os.Getenv("REDIS_URL"),

		MeiliSearchHost: os.Getenv("MEILISEARCH_HOST"),
		MeiliMasterKey:  os.Getenv("MEILI_MASTER_KEY"),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set")
	}

	var err error
	cfg.TokenTTL, err = time.ParseDuration(getEnv("TOKEN_TTL", "5h"))
	if err != nil {
		return nil, fmt.Errorf("invalid TOKEN_TTL: %w", err)
	}
	cfg.ContactRateLimit, err = time.ParseDuration(getEnv("RATE_LIMIT_CONTACT", "1m"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_CONTACT: %w", err)
	}
	cfg.LoginRateLimit, err = time.ParseDuration(getEnv("RATE_LIMIT_LOGIN", "5s"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_LOGIN: %w", err)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
