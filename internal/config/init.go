package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	StorageMySQL  = "mysql"
	StorageMemory = "memory"

	OwnershipRedirect = "redirect"
	OwnershipForbid   = "forbid"
)

// MinJWTSecretLength is the shortest HS256 secret accepted at startup.
const MinJWTSecretLength = 16

// Config holds the application settings read from the environment (and .env).
type Config struct {
	Env     string `env:"APP_ENV" envDefault:"development"`
	Port    int    `env:"APP_PORT" envDefault:"8080"`
	Storage string `env:"STORAGE" envDefault:"mysql"`
	DBDSN   string `env:"DB_DSN"`

	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	JWTSecret string        `env:"JWT_SECRET,required"`
	JWTTTL    time.Duration `env:"JWT_TTL" envDefault:"24h"`

	OwnershipPolicy string `env:"OWNERSHIP_POLICY" envDefault:"redirect"`
	LoginRPM        int    `env:"LOGIN_RPM" envDefault:"30"`
	SeedDemo        bool   `env:"SEED_DEMO" envDefault:"false"`
}

// Addr returns the listen address for the HTTP server.
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// UseRedis reports whether a Redis server is configured.
func (c Config) UseRedis() bool {
	return c.RedisAddr != ""
}

// IsProduction reports whether the service runs with APP_ENV=production.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// Init loads .env when present and parses the environment into a Config.
func Init() (*Config, error) {
	// a missing .env is fine, the process environment is used as is
	_ = godotenv.Load()
	return Load()
}

// Load parses and validates the current environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if len(cfg.JWTSecret) < MinJWTSecretLength {
		return nil, fmt.Errorf("JWT_SECRET must be at least %d bytes long, got %d", MinJWTSecretLength, len(cfg.JWTSecret))
	}

	switch cfg.Storage {
	case StorageMySQL:
		if cfg.DBDSN == "" {
			return nil, fmt.Errorf("DB_DSN is not set")
		}
	case StorageMemory:
	default:
		return nil, fmt.Errorf("unknown STORAGE %q (want %q or %q)", cfg.Storage, StorageMySQL, StorageMemory)
	}

	switch cfg.OwnershipPolicy {
	case OwnershipRedirect, OwnershipForbid:
	default:
		return nil, fmt.Errorf("unknown OWNERSHIP_POLICY %q (want %q or %q)", cfg.OwnershipPolicy, OwnershipRedirect, OwnershipForbid)
	}

	if cfg.LoginRPM <= 0 {
		return nil, fmt.Errorf("LOGIN_RPM must be positive, got %d", cfg.LoginRPM)
	}

	return cfg, nil
}
