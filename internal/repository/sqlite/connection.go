// Package sqlite implements the repository on an embedded SQLite database through gorm.
package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"calendar-assistant/config"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SQLite wraps a gorm handle and configuration.
type SQLite struct {
	log *zap.SugaredLogger
	db  *gorm.DB
	cfg config.SQLiteConfig
}

// New creates an SQLite repository instance.
func New(log *zap.SugaredLogger, cfg *config.Config) *SQLite {
	return &SQLite{
		log: log.Named("repo.sqlite"),
		cfg: cfg.SQLite,
	}
}

// OnStart opens the database and migrates the schema.
func (s *SQLite) OnStart(ctx context.Context) error {
	db, err := gorm.Open(sqlite.Open(s.cfg.DSN), &gorm.Config{
		Logger: logger.New(gormWriter{log: s.log}, logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormLogLevel(s.cfg.LogLevel),
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return fmt.Errorf("open sqlite: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("sqlite handle: %w", err)
	}
	// A single writer keeps SQLite from returning SQLITE_BUSY under concurrent bookings.
	sqlDB.SetMaxOpenConns(1)

	if err := db.WithContext(ctx).AutoMigrate(&employeeModel{}, &meetingModel{}); err != nil {
		_ = sqlDB.Close()
		return fmt.Errorf("migrate: %w", err)
	}

	s.db = db
	s.log.Infow("sqlite ready", "dsn", s.cfg.DSN)
	return nil
}

// OnStop closes the underlying connection.
func (s *SQLite) OnStop(_ context.Context) error {
	if s.db == nil {
		return nil
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

type gormWriter struct {
	log *zap.SugaredLogger
}

func (w gormWriter) Printf(format string, args ...interface{}) {
	w.log.Debugf(format, args...)
}

func gormLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}
