package config

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=5000"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Mongo MongoConfig
	Redis RedisConfig
}

// MongoConfig deliberately gives MONGO_URI no default: an unset connection
// string must be detected and logged distinctly from a failed connection
// attempt, so main checks for the empty value.
type MongoConfig struct {
	URI      string `env:"MONGO_URI"`
	Database string `env:"MONGO_DB, default=farmbook"`
}

// RedisConfig is optional; an empty REDIS_ADDR disables the farm cache.
type RedisConfig struct {
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

// Load reads configuration from the environment using go-envconfig, after
// sourcing a local .env file when one exists.
func Load(ctx context.Context) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
