// Package config loads application configuration.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envFile = "config/.env"

var keys = []string{
	"logging.level",
	"server.host",
	"server.port",
	"server.shutdown_timeout",
	"http.request_timeout",
	"http.rate_limit_per_minute",
	"http.rate_burst",
	"storage.backend",
	"postgres.host",
	"postgres.port",
	"postgres.user",
	"postgres.password",
	"postgres.db_name",
	"postgres.ssl_mode",
	"postgres.migrations_dir",
	"postgres.migrate_timeout",
	"postgres.query_timeout",
	"postgres.max_conns",
	"postgres.min_conns",
	"sqlite.dsn",
	"sqlite.log_level",
	"redis.addr",
	"redis.password",
	"redis.db",
	"booking.lock_backend",
	"booking.lock_ttl",
	"booking.lock_retry_interval",
	"booking.conflict_concurrency",
	"metrics.enabled",
	"metrics.path",
}

// NewConfig loads configuration from environment using viper with typed defaults and validation.
func NewConfig() (*Config, error) {
	if envMap, err := godotenv.Read(envFile); err == nil {
		for k, v := range envMap {
			if _, exists := os.LookupEnv(k); !exists {
				_ = os.Setenv(k, v)
			}
		}
	}
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	bindEnvs(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.shutdown_timeout", 5*time.Second)

	v.SetDefault("http.request_timeout", 3*time.Second)
	v.SetDefault("http.rate_limit_per_minute", 0)
	v.SetDefault("http.rate_burst", 20)

	v.SetDefault("storage.backend", StoragePostgres)

	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.port", 5432)
	v.SetDefault("postgres.user", "postgres")
	v.SetDefault("postgres.password", "postgres")
	v.SetDefault("postgres.db_name", "calendar_assistant_db")
	v.SetDefault("postgres.ssl_mode", "disable")
	v.SetDefault("postgres.migrations_dir", "db/migrations")
	v.SetDefault("postgres.migrate_timeout", 10*time.Second)
	v.SetDefault("postgres.query_timeout", 2*time.Second)
	v.SetDefault("postgres.max_conns", 10)
	v.SetDefault("postgres.min_conns", 2)

	v.SetDefault("sqlite.dsn", "file:calendar.db?_foreign_keys=on")
	v.SetDefault("sqlite.log_level", "warn")

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)

	v.SetDefault("booking.lock_backend", LockLocal)
	v.SetDefault("booking.lock_ttl", 10*time.Second)
	v.SetDefault("booking.lock_retry_interval", 50*time.Millisecond)
	v.SetDefault("booking.conflict_concurrency", 8)

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
}

func bindEnvs(v *viper.Viper) {
	for _, k := range keys {
		_ = v.BindEnv(k)
	}
}
