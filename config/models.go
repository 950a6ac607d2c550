package config

import (
	"errors"
	"fmt"
	"time"
)

// Storage backend names.
const (
	StoragePostgres = "postgres"
	StorageSQLite   = "sqlite"
)

// Booking lock backend names.
const (
	LockLocal = "local"
	LockRedis = "redis"
)

// Config holds application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	HTTP     HTTPConfig     `mapstructure:"http"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Postgres PostgresConfig `mapstructure:"postgres"`
	SQLite   SQLiteConfig   `mapstructure:"sqlite"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Booking  BookingConfig  `mapstructure:"booking"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
}

// Validate ensures required fields are present.
func (c Config) Validate() error {
	if c.Server.Port == 0 {
		return errors.New("server.port is required")
	}

	switch c.Storage.Backend {
	case StoragePostgres:
		if c.Postgres.User == "" || c.Postgres.Password == "" || c.Postgres.DBName == "" {
			return errors.New("postgres credentials are required")
		}
		if c.Postgres.Host == "" {
			return errors.New("postgres.host is required")
		}
	case StorageSQLite:
		if c.SQLite.DSN == "" {
			return errors.New("sqlite.dsn is required")
		}
	default:
		return fmt.Errorf("unknown storage.backend: %q", c.Storage.Backend)
	}

	switch c.Booking.LockBackend {
	case LockLocal:
	case LockRedis:
		if c.Redis.Addr == "" {
			return errors.New("redis.addr is required for the redis lock backend")
		}
		if c.Booking.LockTTL <= 0 {
			return errors.New("booking.lock_ttl must be positive")
		}
	default:
		return fmt.Errorf("unknown booking.lock_backend: %q", c.Booking.LockBackend)
	}

	if c.HTTP.RateLimitPerMinute < 0 || c.HTTP.RateBurst < 0 {
		return errors.New("http rate limits must not be negative")
	}

	if c.Booking.ConflictConcurrency <= 0 {
		return errors.New("booking.conflict_concurrency must be positive")
	}
	return nil
}

// ServerAddr returns host:port for HTTP server binding.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// ServerConfig contains HTTP server options.
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// HTTPConfig contains transport settings.
type HTTPConfig struct {
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	// RateLimitPerMinute caps requests per client IP. Zero disables the limiter.
	RateLimitPerMinute int `mapstructure:"rate_limit_per_minute"`
	RateBurst          int `mapstructure:"rate_burst"`
}

// LoggingConfig contains logger preferences.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// StorageConfig selects the persistence backend.
type StorageConfig struct {
	Backend string `mapstructure:"backend"`
}

// PostgresConfig describes database connection parameters.
type PostgresConfig struct {
	Host           string        `mapstructure:"host"`
	Port           int           `mapstructure:"port"`
	User           string        `mapstructure:"user"`
	Password       string        `mapstructure:"password"`
	DBName         string        `mapstructure:"db_name"`
	SSLMode        string        `mapstructure:"ssl_mode"`
	MigrationsDir  string        `mapstructure:"migrations_dir"`
	MigrateTimeout time.Duration `mapstructure:"migrate_timeout"`
	QueryTimeout   time.Duration `mapstructure:"query_timeout"`
	MaxConns       int32         `mapstructure:"max_conns"`
	MinConns       int32         `mapstructure:"min_conns"`
}

// DSN returns a Postgres connection string.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.DBName, p.SSLMode,
	)
}

// SQLiteConfig describes the embedded database.
type SQLiteConfig struct {
	DSN      string `mapstructure:"dsn"`
	LogLevel string `mapstructure:"log_level"`
}

// RedisConfig describes the redis connection used by the distributed booking lock.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// BookingConfig tunes the scheduling engine.
type BookingConfig struct {
	LockBackend         string        `mapstructure:"lock_backend"`
	LockTTL             time.Duration `mapstructure:"lock_ttl"`
	LockRetryInterval   time.Duration `mapstructure:"lock_retry_interval"`
	ConflictConcurrency int           `mapstructure:"conflict_concurrency"`
}

// MetricsConfig toggles the prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}
