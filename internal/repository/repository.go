// Package repository provides factory for repositories.
package repository

import (
	"context"
	"fmt"

	"calendar-assistant/config"
	"calendar-assistant/internal/repository/postgres"
	"calendar-assistant/internal/repository/sqlite"

	"go.uber.org/zap"
)

// Repository aggregates all persistence interfaces.
type Repository interface {
	LifecycleInterface
	EmployeeInterface
	MeetingInterface
}

// New constructs repository backend by name.
func New(ctx context.Context, name string, log *zap.SugaredLogger, cfg *config.Config) (Repository, error) {
	switch name {
	case config.StoragePostgres:
		return postgres.New(ctx, log, cfg), nil
	case config.StorageSQLite:
		return sqlite.New(log, cfg), nil
	default:
		return nil, fmt.Errorf("unknown repo backend: %s", name)
	}
}
