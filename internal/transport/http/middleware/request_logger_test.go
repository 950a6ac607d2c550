package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"calendar-assistant/internal/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	m := metrics.New()

	app := fiber.New()
	app.Use(RequestLogger(zap.New(core).Sugar(), m))
	app.Get("/api/employees/:id", func(c *fiber.Ctx) error {
		if c.Params("id") == "0" {
			return c.SendStatus(http.StatusBadRequest)
		}
		return c.SendStatus(http.StatusOK)
	})

	for _, target := range []string{"/api/employees/1", "/api/employees/2", "/api/employees/0"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil))
		require.NoError(t, err)
		_ = resp.Body.Close()
	}

	require.Equal(t, 2, logs.FilterLevelExact(zap.InfoLevel).Len())
	require.Equal(t, 1, logs.FilterLevelExact(zap.WarnLevel).Len())

	entry := logs.All()[0].ContextMap()
	require.Equal(t, "/api/employees/:id", entry["route"])
	require.EqualValues(t, http.StatusOK, entry["status"])

	series, err := testutil.GatherAndCount(m.Registry(), "calendar_http_requests_total")
	require.NoError(t, err)
	require.Equal(t, 2, series)
}
