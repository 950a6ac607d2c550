package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"calendar-assistant/internal/repository"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the database schema and exit",
	RunE:  runMigrate,
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repo, err := repository.New(ctx, cfg.Storage.Backend, log, cfg)
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}
	if err := repo.OnStart(ctx); err != nil {
		return fmt.Errorf("migrate %s: %w", cfg.Storage.Backend, err)
	}
	if err := repo.OnStop(context.Background()); err != nil {
		return fmt.Errorf("close repository: %w", err)
	}

	log.Infow("schema is up to date", "backend", cfg.Storage.Backend)
	return nil
}
