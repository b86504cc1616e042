package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// App holds runtime configuration for the trivia API. The listing page size
// is deliberately a core constant, not an env knob.
type App struct {
	Name                    string        `env:"APP_NAME" envDefault:"trivia-api"`
	Env                     string        `env:"APP_ENV" envDefault:"development"`
	HTTPAddr                string        `env:"HTTP_ADDR" envDefault:"0.0.0.0:8080"`
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_SECONDS" envDefault:"20s"`

	Postgres Postgres
	Redis    Redis
	CORS     CORS
}

// Postgres captures connection info for the question store.
type Postgres struct {
	Host     string `env:"PG_HOST,notEmpty"`
	Port     int    `env:"PG_PORT" envDefault:"5432"`
	User     string `env:"PG_USER,notEmpty"`
	Password string `env:"PG_PASSWORD,notEmpty"`
	Database string `env:"PG_DATABASE,notEmpty"`
	SSLMode  string `env:"PG_SSL_MODE" envDefault:"disable"`
}

// ConnString renders a pgx-compatible DSN.
func (p Postgres) ConnString() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s pool_max_conns=10",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode)
}

// Redis configures the optional category catalog cache. An empty Addr
// disables caching entirely.
type Redis struct {
	Addr       string        `env:"REDIS_ADDR"`
	DB         int           `env:"REDIS_DB" envDefault:"0"`
	PoolSize   int           `env:"REDIS_POOL_SIZE" envDefault:"10"`
	CatalogTTL time.Duration `env:"REDIS_CATALOG_TTL" envDefault:"5m"`
}

// CORS holds Cross-Origin Resource Sharing headers. The reference
// deployment allows any origin on /api/*.
type CORS struct {
	AllowedOrigin    string `env:"CORS_ALLOWED_ORIGIN" envDefault:"*"`
	AllowedMethods   string `env:"CORS_ALLOWED_METHODS" envDefault:"GET,PATCH,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `env:"CORS_ALLOWED_HEADERS" envDefault:"Content-Type,Authorization,true"`
	AllowCredentials bool   `env:"CORS_ALLOW_CREDENTIALS" envDefault:"true"`
}

// Load parses environment variables into the App config.
func Load() (*App, error) {
	cfg := &App{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
