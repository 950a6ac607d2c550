package domain

import (
	"context"
	"time"

	"calendar-assistant/internal/lock"
	"calendar-assistant/internal/metrics"
	"calendar-assistant/internal/repository"

	"go.uber.org/zap"
)

const defaultConflictConcurrency = 8

// Usecase struct implements all usecase interfaces.
type Usecase struct {
	ctx     context.Context
	log     *zap.SugaredLogger
	repo    repository.Repository
	timeout time.Duration

	locker              lock.Locker
	metrics             *metrics.Metrics
	conflictConcurrency int
	now                 func() time.Time
}

// Option customizes a Usecase.
type Option func(*Usecase)

// WithLocker sets the lock serializing bookings of one employee.
func WithLocker(l lock.Locker) Option {
	return func(u *Usecase) { u.locker = l }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(u *Usecase) { u.metrics = m }
}

// WithConflictConcurrency bounds parallel lookups of a bulk conflict query.
func WithConflictConcurrency(n int) Option {
	return func(u *Usecase) {
		if n > 0 {
			u.conflictConcurrency = n
		}
	}
}

// WithClock replaces time.Now as the source of "today".
func WithClock(now func() time.Time) Option {
	return func(u *Usecase) { u.now = now }
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	timeout time.Duration,
	opts ...Option,
) *Usecase {
	u := &Usecase{
		ctx:                 ctx,
		log:                 log.Named("usecase"),
		repo:                repo,
		timeout:             timeout,
		locker:              lock.NewLocal(),
		conflictConcurrency: defaultConflictConcurrency,
		now:                 time.Now,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// withTimeout bounds a single usecase call. A nil ctx falls back to the service context.
func (u *Usecase) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = u.ctx
	}
	if u.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, u.timeout)
}
