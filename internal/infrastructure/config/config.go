package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,       default=8080"`
	Env       string `env:"ENV,        default=development"`
	LogLevel  string `env:"LOG_LEVEL,  default=info"`
	LogPretty bool   `env:"LOG_PRETTY, default=false"`
	Timezone  string `env:"TIMEZONE,   default=UTC"`

	Auth     AuthConfig
	Timeline TimelineConfig
	Cache    CacheConfig
	Redis    RedisConfig
	Mongo    MongoConfig
}

type AuthConfig struct {
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=24h"`
	// Clients maps client id to bcrypt hash, e.g. "ui:$2a$10$...,cli:$2a$10$...".
	Clients map[string]string `env:"API_CLIENTS"`
	Admins  []string          `env:"ADMIN_CLIENTS"`
}

type TimelineConfig struct {
	Width  float64 `env:"TIMELINE_WIDTH,  default=670"`
	Height float64 `env:"TIMELINE_HEIGHT, default=150"`
}

type CacheConfig struct {
	TTL  time.Duration `env:"CACHE_TTL,  default=10m"`
	Size int           `env:"CACHE_SIZE, default=10000"`
}

type RedisConfig struct {
	// Empty Addr disables the Redis tier.
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

type MongoConfig struct {
	// Empty URI keeps credentials in API_CLIENTS.
	URI      string `env:"MONGO_URI"`
	Database string `env:"MONGO_DB, default=eldlogs"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if _, err := time.LoadLocation(cfg.Timezone); err != nil {
		return nil, fmt.Errorf("config: TIMEZONE: %w", err)
	}
	return &cfg, nil
}

// Location returns the configured default timezone. Load has already
// validated it.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
