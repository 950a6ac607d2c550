package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRateLimiterRejectsBurstOverflow(t *testing.T) {
	app := fiber.New()
	app.Use(RateLimiter(zap.NewNop().Sugar(), 1, 2))
	app.Get("/", func(c *fiber.Ctx) error { return c.SendStatus(http.StatusOK) })

	statuses := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
		require.NoError(t, err)
		statuses = append(statuses, resp.StatusCode)
		_ = resp.Body.Close()
	}

	require.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, statuses)
}

func TestRateLimiterDisabled(t *testing.T) {
	app := fiber.New()
	app.Use(RateLimiter(zap.NewNop().Sugar(), 0, 0))
	app.Get("/", func(c *fiber.Ctx) error { return c.SendStatus(http.StatusOK) })

	for i := 0; i < 10; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		_ = resp.Body.Close()
	}
}

func TestLimiterStoreForgetsIdleClients(t *testing.T) {
	now := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)
	store := newLimiterStore(60, 1)
	store.now = func() time.Time { return now }

	require.True(t, store.allow("10.0.0.1"))
	require.False(t, store.allow("10.0.0.1"))
	require.Len(t, store.limiters, 1)

	now = now.Add(2 * limiterIdleTTL)
	require.True(t, store.allow("10.0.0.2"))
	require.Len(t, store.limiters, 1)
	require.Contains(t, store.limiters, "10.0.0.2")
}
