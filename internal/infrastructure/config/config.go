package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port          string        `env:"PORT,           default=8080"`
	Env           string        `env:"ENV,            default=development"`
	JWTSecret     string        `env:"JWT_SECRET,     required"`
	JWTExpiration time.Duration `env:"JWT_EXPIRATION, default=1h"`
	BcryptCost    int           `env:"BCRYPT_COST,    default=10"`
	LogLevel      string        `env:"LOG_LEVEL,      default=info"`

	Postgres PostgresConfig
	Redis    RedisConfig
}

type PostgresConfig struct {
	URL string `env:"DATABASE_URL, default=postgres://localhost:5432/evidencetrack"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}
