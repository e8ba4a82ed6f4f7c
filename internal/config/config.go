package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"go.uber.org/fx"
)

var Module = fx.Module("config",
	fx.Provide(NewConfig),
)

// Config holds all application configuration
type Config struct {
	// Server settings
	ServerPort    int    `env:"SERVER_PORT" envDefault:"4700"`
	ServerAddress string `env:"SERVER_ADDRESS" envDefault:"0.0.0.0"`
	Environment   string `env:"ENVIRONMENT" envDefault:"local"`
	Debug         bool   `env:"DEBUG" envDefault:"false"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`

	// Database settings
	Database DatabaseConfig

	// Graph traversal bounds
	Graph GraphConfig

	// OpenTelemetry tracing
	Otel OtelConfig

	// Server timeouts
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"60s"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"120s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Run goose migrations on startup
	AutoMigrate bool `env:"AUTO_MIGRATE" envDefault:"false"`
}

// DatabaseConfig holds PostgreSQL connection settings
type DatabaseConfig struct {
	Host         string        `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port         int           `env:"POSTGRES_PORT" envDefault:"5432"`
	User         string        `env:"POSTGRES_USER" envDefault:"lexigraph"`
	Password     string        `env:"POSTGRES_PASSWORD" envDefault:""`
	Database     string        `env:"POSTGRES_DB" envDefault:"lexigraph"`
	SSLMode      string        `env:"POSTGRES_SSL_MODE" envDefault:"disable"`
	MaxOpenConns int           `env:"DB_MAX_OPEN_CONNS" envDefault:"25"`
	MaxIdleConns int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	MaxIdleTime  time.Duration `env:"DB_MAX_IDLE_TIME" envDefault:"5m"`
	QueryDebug   bool          `env:"DB_QUERY_DEBUG" envDefault:"false"`
}

// DSN returns the PostgreSQL connection string
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Database, d.SSLMode,
	)
}

// GraphConfig holds defaults and hard limits for the traversal endpoints.
//
// Defaults apply when a request omits a bound; limits clamp what a request may
// ask for. The limits are what keep worst-case traversal work finite, so they
// are enforced unconditionally.
type GraphConfig struct {
	// Path finder
	DefaultMaxPaths  int `env:"GRAPH_DEFAULT_MAX_PATHS" envDefault:"10"`
	MaxPathsLimit    int `env:"GRAPH_MAX_PATHS_LIMIT" envDefault:"50"`
	DefaultMinLength int `env:"GRAPH_DEFAULT_MIN_LENGTH" envDefault:"1"`
	DefaultMaxLength int `env:"GRAPH_DEFAULT_MAX_LENGTH" envDefault:"10"`
	MaxLengthLimit   int `env:"GRAPH_MAX_LENGTH_LIMIT" envDefault:"10"`

	// Neighborhood projector
	DefaultMaxLevel int `env:"GRAPH_DEFAULT_MAX_LEVEL" envDefault:"3"`
	MaxLevelLimit   int `env:"GRAPH_MAX_LEVEL_LIMIT" envDefault:"5"`
	DefaultMaxNodes int `env:"GRAPH_DEFAULT_MAX_NODES" envDefault:"100"`
	MaxNodesLimit   int `env:"GRAPH_MAX_NODES_LIMIT" envDefault:"200"`
	// 0 means unbounded fan-out
	DefaultMaxEdgesPerNode int `env:"GRAPH_DEFAULT_MAX_EDGES_PER_NODE" envDefault:"0"`
}

// NewConfig loads configuration from environment variables
func NewConfig(log *slog.Logger) (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	log.Info("configuration loaded",
		slog.String("environment", cfg.Environment),
		slog.Int("port", cfg.ServerPort),
		slog.String("db_host", cfg.Database.Host),
	)

	return cfg, nil
}
