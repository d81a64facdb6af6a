package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config carries every runtime setting, loaded from the environment with an
// optional .env overlay for local development.
type Config struct {
	HTTPAddr       string        `envconfig:"HTTP_ADDR" default:":8080"`
	DBURL          string        `envconfig:"DB_URL" validate:"required"`
	RedisURL       string        `envconfig:"REDIS_URL" validate:"required"`
	JWTSecret      string        `envconfig:"JWT_SECRET" validate:"required,min=16"`
	MediaRoot      string        `envconfig:"MEDIA_ROOT" default:"data/media"`
	SearchIndexDir string        `envconfig:"SEARCH_INDEX_DIR" default:"data/search-index"`
	UserCacheTTL   time.Duration `envconfig:"USER_CACHE_TTL" default:"30s"`
	Concurrency    int           `envconfig:"WORKER_CONCURRENCY" default:"10" validate:"gt=0"`
}

// Load reads the environment into a validated Config. A missing .env file is
// fine; explicit environment variables always win.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
