package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Config carries every environment-sourced setting. It is built once in
// run() and passed by reference; business logic never reads the
// environment directly.
type Config struct {
	DatabaseURL   string
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	AccessSecret  string
	RefreshSecret string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration

	BcryptCost  int
	WorkerCount int
	ListenAddr  string
}

const (
	defaultAccessTTLSeconds  = 900
	defaultRefreshTTLSeconds = 604800
)

// Load reads a .env file when present, then the process environment.
// Missing signing secrets or DATABASE_URL are startup failures, not
// per-request errors.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		AccessSecret:  os.Getenv("JWT_ACCESS_SECRET"),
		RefreshSecret: os.Getenv("JWT_REFRESH_SECRET"),
		BcryptCost:    bcrypt.DefaultCost,
		WorkerCount:   1,
		ListenAddr:    ":8080",
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}
	if cfg.RedisAddr == "" {
		return nil, fmt.Errorf("REDIS_ADDR is not set")
	}
	if cfg.AccessSecret == "" {
		return nil, fmt.Errorf("JWT_ACCESS_SECRET is not set")
	}
	if cfg.RefreshSecret == "" {
		return nil, fmt.Errorf("JWT_REFRESH_SECRET is not set")
	}

	redisDB, err := intEnv("REDIS_DB", 0)
	if err != nil {
		return nil, err
	}
	cfg.RedisDB = redisDB

	accessSeconds, err := intEnv("JWT_ACCESS_EXPIRES_IN_SECONDS", defaultAccessTTLSeconds)
	if err != nil {
		return nil, err
	}
	cfg.AccessTTL = time.Duration(accessSeconds) * time.Second

	refreshSeconds, err := intEnv("JWT_REFRESH_EXPIRES_IN_SECONDS", defaultRefreshTTLSeconds)
	if err != nil {
		return nil, err
	}
	cfg.RefreshTTL = time.Duration(refreshSeconds) * time.Second

	cost, err := intEnv("BCRYPT_COST", bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("BCRYPT_COST %d out of range", cost)
	}
	cfg.BcryptCost = cost

	workers, err := intEnv("WORKER_COUNT", 1)
	if err != nil {
		return nil, err
	}
	if workers <= 0 {
		return nil, fmt.Errorf("WORKER_COUNT must be positive")
	}
	cfg.WorkerCount = workers

	if port := os.Getenv("PORT"); port != "" {
		cfg.ListenAddr = ":" + port
	}

	return cfg, nil
}

func intEnv(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %v", key, err)
	}
	return n, nil
}
