// Package config holds the storefront client configuration.
package config

import (
	"fmt"
	"time"

	pkgconfig "github.com/mirajehossain/ecom-customer/pkg/config"
)

// Storage backend names accepted by SessionBackend.
const (
	BackendFile   = "file"
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// Config is the full client configuration, loaded from the environment.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	APIBaseURL string        `env:"API_BASE_URL" envDefault:"http://localhost:8080/api"`
	APITimeout time.Duration `env:"API_TIMEOUT" envDefault:"30s"`

	PageSize      int `env:"PAGE_SIZE" envDefault:"20"`
	FeaturedLimit int `env:"FEATURED_LIMIT" envDefault:"8"`

	SessionBackend string `env:"SESSION_BACKEND" envDefault:"file"`
	SessionDir     string `env:"SESSION_DIR" envDefault:""`

	RedisAddr     string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string        `env:"REDIS_PASSWORD" envDefault:""`
	RedisDB       int           `env:"REDIS_DB" envDefault:"0"`
	RedisTTL      time.Duration `env:"REDIS_TTL" envDefault:"720h"`
}

// Load reads configuration from the environment and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := pkgconfig.Load(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("API_BASE_URL must not be empty")
	}
	if c.APITimeout <= 0 {
		return fmt.Errorf("API_TIMEOUT must be positive, got %s", c.APITimeout)
	}
	if c.PageSize < 1 || c.PageSize > 100 {
		return fmt.Errorf("PAGE_SIZE must be between 1 and 100, got %d", c.PageSize)
	}
	switch c.SessionBackend {
	case BackendFile, BackendMemory, BackendRedis:
	default:
		return fmt.Errorf("SESSION_BACKEND must be one of file, memory, redis; got %q", c.SessionBackend)
	}
	return nil
}

// IsDevelopment reports whether the client runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
