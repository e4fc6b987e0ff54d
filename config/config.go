package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type DBConfig struct {
	User     string
	Password string
	Host     string
	Port     string
	Name     string
}

func (c DBConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s", c.User, c.Password, c.Host, c.Port, c.Name)
}

type R2Config struct {
	AccountID       string
	AccessKeyID     string
	AccessKeySecret string
	BucketName      string
}

type Config struct {
	Env                string
	Port               string
	JWTSecret          string
	SentryDSN          string
	AsyncBrokerAddress string
	DB                 DBConfig
	R2                 R2Config
	// how long learned color preferences are served from memory
	PreferenceCacheTTL time.Duration
	WorkerConcurrency  int
}

// Load reads the environment, after an optional .env file in the working directory.
func Load() (*Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			return nil, fmt.Errorf("loading .env: %w", err)
		}
	}

	ttl, err := time.ParseDuration(getEnv("PREFERENCE_CACHE_TTL", "10m"))
	if err != nil {
		return nil, fmt.Errorf("PREFERENCE_CACHE_TTL: %w", err)
	}
	concurrency, err := strconv.Atoi(getEnv("WORKER_CONCURRENCY", "10"))
	if err != nil {
		return nil, fmt.Errorf("WORKER_CONCURRENCY: %w", err)
	}

	cfg := &Config{
		Env:                getEnv("ENV", "local"),
		Port:               getEnv("PORT", "8083"),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		SentryDSN:          os.Getenv("SENTRY_DSN"),
		AsyncBrokerAddress: getEnv("ASYNC_BROKER_ADDRESS", "localhost:6379"),
		DB: DBConfig{
			User:     os.Getenv("DB_USERNAME"),
			Password: os.Getenv("DB_PASSWORD"),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     os.Getenv("DB_NAME"),
		},
		R2: R2Config{
			AccountID:       os.Getenv("R2_ACCOUNT_ID"),
			AccessKeyID:     os.Getenv("R2_ACCESS_KEY_ID"),
			AccessKeySecret: os.Getenv("R2_ACCESS_KEY_SECRET"),
			BucketName:      os.Getenv("R2_BUCKET_NAME"),
		},
		PreferenceCacheTTL: ttl,
		WorkerConcurrency:  concurrency,
	}
	if cfg.JWTSecret == "" && cfg.Env != "local" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is not set")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if len(value) == 0 {
		return fallback
	}
	return value
}
