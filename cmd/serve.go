package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"calendar-assistant/config"
	"calendar-assistant/internal/api"
	"calendar-assistant/internal/lock"
	"calendar-assistant/internal/metrics"
	"calendar-assistant/internal/repository"
	"calendar-assistant/internal/transport/http/middleware"
	"calendar-assistant/internal/transport/http/server/handlers-fiber"
	"calendar-assistant/internal/usecase"
	"calendar-assistant/internal/usecase/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
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
		return fmt.Errorf("start repository: %w", err)
	}
	defer func() {
		_ = repo.OnStop(context.Background())
	}()

	locker, closeLocker, err := newLocker(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeLocker()

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
	}

	uc := usecase.New(log, ctx, repo, cfg.HTTP.RequestTimeout,
		domain.WithLocker(locker),
		domain.WithMetrics(m),
		domain.WithConflictConcurrency(cfg.Booking.ConflictConcurrency),
	)

	serv := newServer(cfg, log, uc, m)

	go func() {
		log.Infow("http server listening", "addr", cfg.ServerAddr(), "storage", cfg.Storage.Backend, "lock", cfg.Booking.LockBackend)
		if err := serv.Listen(cfg.ServerAddr()); err != nil {
			log.Errorw("failed to start server", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	done := make(chan struct{})
	go func() {
		_ = serv.Shutdown()
		close(done)
	}()

	select {
	case <-done:
		log.Infow("server stopped")
	case <-shutdownCtx.Done():
		log.Warnw("server shutdown timeout", "timeout", cfg.Server.ShutdownTimeout)
	}
	return nil
}

// newServer builds the fiber app with middleware, probes and API routes.
func newServer(cfg *config.Config, log *zap.SugaredLogger, uc usecase.InterfaceUsecase, m *metrics.Metrics) *fiber.App {
	serv := fiber.New(fiber.Config{
		ReadTimeout:  cfg.HTTP.RequestTimeout,
		WriteTimeout: cfg.HTTP.RequestTimeout,
	})
	serv.Use(recover.New())
	serv.Use(requestid.New())
	serv.Use(middleware.RequestLogger(log, m))
	serv.Use(middleware.RateLimiter(log, cfg.HTTP.RateLimitPerMinute, cfg.HTTP.RateBurst))

	serv.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	if m != nil {
		serv.Get(cfg.Metrics.Path, adaptor.HTTPHandler(m.Handler()))
	}

	h := handlers_fiber.NewHandler(log, uc)
	api.RegisterHandlers(serv, h)
	return serv
}

// newLocker picks the booking lock backend. The returned closer is always safe to call.
func newLocker(ctx context.Context, cfg *config.Config, log *zap.SugaredLogger) (lock.Locker, func(), error) {
	if cfg.Booking.LockBackend != config.LockRedis {
		return lock.NewLocal(), func() {}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, cfg.HTTP.RequestTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("connect redis %s: %w", cfg.Redis.Addr, err)
	}

	closer := func() {
		if err := client.Close(); err != nil {
			log.Warnw("close redis", "error", err)
		}
	}
	return lock.NewRedis(client, log, cfg.Booking.LockTTL, cfg.Booking.LockRetryInterval), closer, nil
}
