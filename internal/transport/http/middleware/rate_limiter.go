package middleware

import (
	"net/http"
	"sync"
	"time"

	"calendar-assistant/internal/api"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const limiterIdleTTL = 10 * time.Minute

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// limiterStore keeps one token bucket per client IP and forgets idle clients.
type limiterStore struct {
	mu        sync.Mutex
	limiters  map[string]*clientLimiter
	every     rate.Limit
	burst     int
	lastSweep time.Time
	now       func() time.Time
}

func newLimiterStore(perMinute, burst int) *limiterStore {
	if burst <= 0 {
		burst = 1
	}
	return &limiterStore{
		limiters: make(map[string]*clientLimiter),
		every:    rate.Every(time.Minute / time.Duration(perMinute)),
		burst:    burst,
		now:      time.Now,
	}
}

func (s *limiterStore) allow(ip string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if now.Sub(s.lastSweep) > limiterIdleTTL {
		for key, cl := range s.limiters {
			if now.Sub(cl.lastSeen) > limiterIdleTTL {
				delete(s.limiters, key)
			}
		}
		s.lastSweep = now
	}

	cl, ok := s.limiters[ip]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(s.every, s.burst)}
		s.limiters[ip] = cl
	}
	cl.lastSeen = now
	return cl.limiter.AllowN(now, 1)
}

// RateLimiter rejects clients exceeding perMinute requests with 429.
// A non-positive perMinute disables limiting.
func RateLimiter(log *zap.SugaredLogger, perMinute, burst int) fiber.Handler {
	if perMinute <= 0 {
		return func(c *fiber.Ctx) error { return c.Next() }
	}

	store := newLimiterStore(perMinute, burst)
	log = log.Named("http")

	return func(c *fiber.Ctx) error {
		ip := c.IP()
		if !store.allow(ip) {
			log.Warnw("rate limit exceeded", "ip", ip, "path", c.Path())
			return c.Status(http.StatusTooManyRequests).JSON(api.ErrorResponse{Error: api.ErrorBody{
				Code:    api.RATELIMITED,
				Message: "rate limit exceeded, try again later",
			}})
		}
		return c.Next()
	}
}
